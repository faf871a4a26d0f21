package model

import "gorm.io/gorm"

type Brand struct {
	gorm.Model
	Name  string `gorm:"column:name;unique;not null" json:"name" binding:"required,min=3,max=32"`
	Slug  string `gorm:"column:slug" json:"slug"`
	Image string `gorm:"column:image" json:"image,omitempty"`
}

func (b Brand) GetID() uint { return b.ID }
