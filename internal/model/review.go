package model

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	Title     string   `gorm:"column:title" json:"title"`
	Rating    int      `gorm:"column:rating;not null" json:"rating" binding:"required,min=1,max=5"`
	UserID    uint     `gorm:"column:user_id;index;not null" json:"user_id"`
	User      *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	ProductID uint     `gorm:"column:product_id;index;not null" json:"product_id"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
}

func (r Review) GetID() uint { return r.ID }
