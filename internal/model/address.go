package model

import "gorm.io/gorm"

type Address struct {
	gorm.Model
	UserID     uint   `gorm:"column:user_id;index;not null" json:"user_id"`
	Alias      string `gorm:"column:alias" json:"alias" binding:"required"`
	Details    string `gorm:"column:details" json:"details" binding:"required"`
	Phone      string `gorm:"column:phone" json:"phone"`
	City       string `gorm:"column:city" json:"city"`
	PostalCode string `gorm:"column:postal_code" json:"postal_code"`
}

func (a Address) GetID() uint { return a.ID }
