package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
)

type OrderRepository struct {
	*Repository[model.Order]
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{Repository: NewRepository[model.Order](db)}
}

// CreateFromCart atomically creates the order, moves stock from quantity
// to sold for every line, and removes the cart. Either all of it happens
// or none of it does.
func (r *OrderRepository) CreateFromCart(ctx context.Context, order *model.Order, cart *model.Cart) error {
	return r.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(order).Error; err != nil {
			return err
		}

		for _, item := range cart.Items {
			result := tx.Model(&model.Product{}).
				Where("id = ? AND quantity >= ?", item.ProductID, item.Quantity).
				Updates(map[string]any{
					"quantity": gorm.Expr("quantity - ?", item.Quantity),
					"sold":     gorm.Expr("sold + ?", item.Quantity),
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return apperrors.WrapError(apperrors.ErrOutOfStock,
					fmt.Errorf("product %d has insufficient stock", item.ProductID))
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Cart{}, cart.ID).Error
	})
}

// GetByPaymentRef finds the order created for a gateway reference.
func (r *OrderRepository) GetByPaymentRef(ctx context.Context, ref string) (*model.Order, error) {
	var order model.Order
	err := r.DB().WithContext(ctx).Where("payment_ref = ?", ref).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFoundf("no order found for payment reference %s", ref)
		}
		return nil, err
	}
	return &order, nil
}
