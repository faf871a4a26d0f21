package model

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                  string     `gorm:"column:name;not null" json:"name"`
	Slug                  string     `gorm:"column:slug" json:"slug"`
	Email                 string     `gorm:"column:email;unique;not null" json:"email"`
	Phone                 string     `gorm:"column:phone" json:"phone,omitempty"`
	ProfileImage          string     `gorm:"column:profile_image" json:"profile_image,omitempty"`
	Password              string     `gorm:"column:password;not null" json:"-"`
	PasswordChangedAt     *time.Time `gorm:"column:password_changed_at" json:"-"`
	PasswordResetCode     string     `gorm:"column:password_reset_code" json:"-"`
	PasswordResetExpires  *time.Time `gorm:"column:password_reset_expires" json:"-"`
	PasswordResetVerified bool       `gorm:"column:password_reset_verified;default:false" json:"-"`
	Role                  string     `gorm:"column:role;default:user;not null" json:"role"`
	Active                bool       `gorm:"column:active;default:true;not null" json:"active"`

	Wishlist  []Product `gorm:"many2many:user_wishlist" json:"wishlist,omitempty"`
	Addresses []Address `gorm:"foreignKey:UserID" json:"addresses,omitempty"`
}

func (u User) GetID() uint { return u.ID }
