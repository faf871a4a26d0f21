package model

import "gorm.io/gorm"

type SubCategory struct {
	gorm.Model
	Name       string    `gorm:"column:name;unique;not null" json:"name" binding:"required,min=2,max=32"`
	Slug       string    `gorm:"column:slug" json:"slug"`
	CategoryID uint      `gorm:"column:category_id;index;not null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

func (s SubCategory) GetID() uint { return s.ID }
