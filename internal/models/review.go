package models

import "time"

// Review is a shopper's rating of a seller. At most one review exists per
// (shopper, seller) pair.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShopperID string    `json:"shopper_id" gorm:"type:varchar(36);index:idx_shopper_seller,unique"`
	SellerID  string    `json:"seller_id" gorm:"type:varchar(36);index:idx_shopper_seller,unique"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment" validate:"omitempty,max=2000"`
	CreatedAt time.Time `json:"created_at"`
}
