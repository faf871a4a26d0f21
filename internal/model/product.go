package model

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	gorm.Model
	Title              string         `gorm:"column:title;unique;not null" json:"title" binding:"required,min=3,max=100"`
	Slug               string         `gorm:"column:slug" json:"slug"`
	Description        string         `gorm:"column:description;not null" json:"description" binding:"required,min=20,max=2000"`
	Quantity           int            `gorm:"column:quantity;not null" json:"quantity" binding:"required,gte=0"`
	Sold               int            `gorm:"column:sold;default:0" json:"sold"`
	Price              float64        `gorm:"column:price;not null" json:"price" binding:"required,gt=0,max=200000"`
	PriceAfterDiscount *float64       `gorm:"column:price_after_discount" json:"price_after_discount,omitempty"`
	Colors             datatypes.JSON `gorm:"column:colors" json:"colors,omitempty"`
	ImageCover         string         `gorm:"column:image_cover;not null" json:"image_cover" binding:"required"`
	Images             datatypes.JSON `gorm:"column:images" json:"images,omitempty"`
	CategoryID         uint           `gorm:"column:category_id;index;not null" json:"category_id" binding:"required"`
	Category           *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	BrandID            *uint          `gorm:"column:brand_id;index" json:"brand_id,omitempty"`
	Brand              *Brand         `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	Subcategories      []SubCategory  `gorm:"many2many:product_subcategories" json:"subcategories,omitempty"`
	RatingsAverage     float64        `gorm:"column:ratings_average;default:0" json:"ratings_average"`
	RatingsQuantity    int            `gorm:"column:ratings_quantity;default:0" json:"ratings_quantity"`
}

func (p Product) GetID() uint { return p.ID }
