package models

import "time"

// Cart is a shopper's mutable collection of items. One cart per shopper,
// created lazily on the first add.
type Cart struct {
	ID        string     `json:"id" gorm:"primaryKey;type:varchar(36)"`
	ShopperID string     `json:"shopper_id" gorm:"type:varchar(36);uniqueIndex"`
	Items     []CartItem `json:"items" gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartItem is one (product, quantity) line of a cart. A cart holds at most
// one line per product; repeated adds accumulate the quantity.
type CartItem struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	CartID    string    `json:"cart_id" gorm:"type:varchar(36);index:idx_cart_product,unique"`
	ProductID string    `json:"product_id" gorm:"type:varchar(36);index:idx_cart_product,unique"`
	Quantity  int       `json:"quantity" validate:"required,gt=0"`
	Product   *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
