package models

import "time"

// Statuses for a seller's discount proposal.
const (
	ProposalPending  = "pending"
	ProposalApproved = "approved"
	ProposalRejected = "rejected"
)

// ProposedDiscount is a seller's request to discount one of their products,
// awaiting an admin decision.
type ProposedDiscount struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID  string    `json:"product_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	SellerID   string    `json:"seller_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Percentage int       `json:"percentage" validate:"required,gt=0,lte=100"`
	Status     string    `json:"status" gorm:"type:varchar(20);default:pending"`
	ProposedAt time.Time `json:"proposed_at" gorm:"autoCreateTime"`
	Product    *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// ApprovedDiscount is the effective discount on a product. At most one row
// exists per product; the unique index backs that invariant.
type ApprovedDiscount struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ProductID   string    `json:"product_id" gorm:"type:varchar(36);uniqueIndex" validate:"required,uuid"`
	Percentage  int       `json:"percentage" validate:"required,gt=0,lte=100"`
	ValidatedAt time.Time `json:"validated_at" gorm:"autoCreateTime"`
	Product     *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}
