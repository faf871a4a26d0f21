package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// DB exposes the underlying handle for callers with bespoke lookups.
func (r *CartRepository) DB() *gorm.DB {
	return r.db
}

// GetByUser loads the user's cart with its items and their products.
func (r *CartRepository) GetByUser(ctx context.Context, userID uint) (*model.Cart, error) {
	var cart model.Cart
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("there is no cart for this user %d", userID)
		}
		return nil, err
	}
	return &cart, nil
}

// Create inserts a new cart with its initial items.
func (r *CartRepository) Create(ctx context.Context, cart *model.Cart) error {
	return r.db.WithContext(ctx).Create(cart).Error
}

// UpdateTotals writes the recomputed price fields; a nil discount clears
// any previously applied coupon.
func (r *CartRepository) UpdateTotals(ctx context.Context, cartID uint, total float64, afterDiscount *float64) error {
	return r.db.WithContext(ctx).Model(&model.Cart{}).Where("id = ?", cartID).Updates(map[string]any{
		"total_price":          total,
		"total_after_discount": afterDiscount,
	}).Error
}

// AddItem inserts one line into the cart.
func (r *CartRepository) AddItem(ctx context.Context, item *model.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// UpdateItemQuantity sets the quantity of one line, scoped to its cart.
func (r *CartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) error {
	result := r.db.WithContext(ctx).Model(&model.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("there is no item for this id %d", itemID)
	}
	return nil
}

// RemoveItem deletes one line, scoped to its cart.
func (r *CartRepository) RemoveItem(ctx context.Context, cartID, itemID uint) error {
	result := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&model.CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFoundf("there is no item for this id %d", itemID)
	}
	return nil
}

// DeleteByUser removes the user's cart and all of its items.
func (r *CartRepository) DeleteByUser(ctx context.Context, userID uint) error {
	var cart model.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFoundf("there is no cart for this user %d", userID)
		}
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
}
