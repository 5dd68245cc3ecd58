package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product availability statuses. Status is an independent field set by the
// seller or admin; it is never derived from the stock count.
const (
	ProductAvailable   = "available"
	ProductUnavailable = "unavailable"
	ProductOutOfStock  = "out_of_stock"
)

// Product represents a product in the catalog. Price is the current unit
// price; when an approved discount exists the effective price is computed by
// the pricing service, not stored here.
type Product struct {
	ID          string          `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string          `json:"name" gorm:"type:varchar(200)" validate:"required,min=3,max=200"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	CategoryID  string          `json:"category_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	SellerID    string          `json:"seller_id" gorm:"type:varchar(36);index" validate:"required,uuid"`
	Status      string          `json:"status" gorm:"type:varchar(20);default:available" validate:"omitempty,oneof=available unavailable out_of_stock"`
	Category    *Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Seller      *User           `json:"seller,omitempty" gorm:"foreignKey:SellerID"`
	gorm.Model                  // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
