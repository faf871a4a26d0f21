package model

import "gorm.io/gorm"

type Cart struct {
	gorm.Model
	UserID             uint       `gorm:"column:user_id;uniqueIndex;not null" json:"user_id"`
	Items              []CartItem `gorm:"foreignKey:CartID" json:"items"`
	TotalPrice         float64    `gorm:"column:total_price;default:0" json:"total_price"`
	TotalAfterDiscount *float64   `gorm:"column:total_after_discount" json:"total_after_discount,omitempty"`
}

func (c Cart) GetID() uint { return c.ID }

// CartItem lines are unique per (cart, product, color); adding the same
// pair again increments the quantity instead.
type CartItem struct {
	gorm.Model
	CartID    uint     `gorm:"column:cart_id;index:idx_cart_product_color,unique;not null" json:"cart_id"`
	ProductID uint     `gorm:"column:product_id;index:idx_cart_product_color,unique;not null" json:"product_id"`
	Color     string   `gorm:"column:color;index:idx_cart_product_color,unique" json:"color,omitempty"`
	Quantity  int      `gorm:"column:quantity;default:1;not null" json:"quantity"`
	Price     float64  `gorm:"column:price;not null" json:"price"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (i CartItem) GetID() uint { return i.ID }
