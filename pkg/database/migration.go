package database

import (
	"github.com/soukly/api/internal/model"
	"gorm.io/gorm"
)

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Address{},
		&model.Category{},
		&model.SubCategory{},
		&model.Brand{},
		&model.Product{},
		&model.Review{},
		&model.Coupon{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	)
}
