package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ShippingAddress is snapshotted into the order as a JSON column so later
// address-book edits never rewrite order history.
type ShippingAddress struct {
	Alias      string `json:"alias,omitempty"`
	Details    string `json:"details"`
	Phone      string `json:"phone,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

type Order struct {
	gorm.Model
	UserID          uint                                   `gorm:"column:user_id;index;not null" json:"user_id"`
	User            *User                                  `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items           []OrderItem                            `gorm:"foreignKey:OrderID" json:"items"`
	TaxPrice        float64                                `gorm:"column:tax_price;default:0" json:"tax_price"`
	ShippingPrice   float64                                `gorm:"column:shipping_price;default:0" json:"shipping_price"`
	ShippingAddress datatypes.JSONType[ShippingAddress]    `gorm:"column:shipping_address" json:"shipping_address"`
	TotalPrice      float64                                `gorm:"column:total_price;not null" json:"total_price"`
	PaymentMethod   string                                 `gorm:"column:payment_method;default:cash;not null" json:"payment_method"`
	PaymentRef      string                                 `gorm:"column:payment_ref" json:"payment_ref,omitempty"`
	IsPaid          bool                                   `gorm:"column:is_paid;default:false" json:"is_paid"`
	PaidAt          *time.Time                             `gorm:"column:paid_at" json:"paid_at,omitempty"`
	IsDelivered     bool                                   `gorm:"column:is_delivered;default:false" json:"is_delivered"`
	DeliveredAt     *time.Time                             `gorm:"column:delivered_at" json:"delivered_at,omitempty"`
}

func (o Order) GetID() uint { return o.ID }

type OrderItem struct {
	gorm.Model
	OrderID   uint     `gorm:"column:order_id;index;not null" json:"order_id"`
	ProductID uint     `gorm:"column:product_id;index;not null" json:"product_id"`
	Quantity  int      `gorm:"column:quantity;not null" json:"quantity"`
	Color     string   `gorm:"column:color" json:"color,omitempty"`
	Price     float64  `gorm:"column:price;not null" json:"price"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (i OrderItem) GetID() uint { return i.ID }
