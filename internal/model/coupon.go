package model

import (
	"time"

	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Name     string    `gorm:"column:name;unique;not null" json:"name" binding:"required"`
	Expire   time.Time `gorm:"column:expire;not null" json:"expire" binding:"required"`
	Discount float64   `gorm:"column:discount;not null" json:"discount" binding:"required,gt=0,lte=100"`
}

func (c Coupon) GetID() uint { return c.ID }
