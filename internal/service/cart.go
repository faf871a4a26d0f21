package service

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
)

type CartService struct {
	carts    *repository.CartRepository
	products *repository.ProductRepository
	coupons  *repository.Repository[model.Coupon]
}

func NewCartService(carts *repository.CartRepository, products *repository.ProductRepository, coupons *repository.Repository[model.Coupon]) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		coupons:  coupons,
	}
}

// Get returns the user's cart.
func (s *CartService) Get(ctx context.Context, userID uint) (*model.Cart, error) {
	return s.carts.GetByUser(ctx, userID)
}

// AddProduct puts a product into the user's cart at its current price.
// Adding a (product, color) pair that is already in the cart increments
// that line's quantity instead of creating a duplicate line. Every
// mutation recomputes the total and drops any applied coupon discount.
func (s *CartService) AddProduct(ctx context.Context, userID, productID uint, color string) (*model.Cart, error) {
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	price := product.Price
	if product.PriceAfterDiscount != nil {
		price = *product.PriceAfterDiscount
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		cart = &model.Cart{
			UserID: userID,
			Items: []model.CartItem{
				{ProductID: productID, Color: color, Quantity: 1, Price: price},
			},
		}
		if err := s.carts.Create(ctx, cart); err != nil {
			return nil, err
		}
		return s.recalc(ctx, userID)
	}

	merged := false
	for _, item := range cart.Items {
		if item.ProductID == productID && item.Color == color {
			if err := s.carts.UpdateItemQuantity(ctx, cart.ID, item.ID, item.Quantity+1); err != nil {
				return nil, err
			}
			merged = true
			break
		}
	}
	if !merged {
		item := &model.CartItem{
			CartID:    cart.ID,
			ProductID: productID,
			Color:     color,
			Quantity:  1,
			Price:     price,
		}
		if err := s.carts.AddItem(ctx, item); err != nil {
			return nil, err
		}
	}

	return s.recalc(ctx, userID)
}

// UpdateItemQuantity sets the quantity on one line of the user's cart.
func (s *CartService) UpdateItemQuantity(ctx context.Context, userID, itemID uint, quantity int) (*model.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.UpdateItemQuantity(ctx, cart.ID, itemID, quantity); err != nil {
		return nil, err
	}
	return s.recalc(ctx, userID)
}

// RemoveItem drops one line from the user's cart.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID uint) (*model.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.carts.RemoveItem(ctx, cart.ID, itemID); err != nil {
		return nil, err
	}
	return s.recalc(ctx, userID)
}

// Clear deletes the user's cart entirely.
func (s *CartService) Clear(ctx context.Context, userID uint) error {
	return s.carts.DeleteByUser(ctx, userID)
}

// ApplyCoupon discounts the cart total by the coupon's percentage. The
// coupon must exist under the given name and not be expired.
func (s *CartService) ApplyCoupon(ctx context.Context, userID uint, couponName string) (*model.Cart, error) {
	var coupon model.Coupon
	err := s.coupons.DB().WithContext(ctx).
		Where("name = ? AND expire > ?", couponName, time.Now().UTC()).
		First(&coupon).Error
	if err != nil {
		return nil, apperrors.WrapError(apperrors.ErrCouponInvalid, err)
	}

	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	discounted := DiscountedTotal(cart.TotalPrice, coupon.Discount)
	if err := s.carts.UpdateTotals(ctx, cart.ID, cart.TotalPrice, &discounted); err != nil {
		return nil, err
	}
	return s.carts.GetByUser(ctx, userID)
}

// recalc reloads the cart, recomputes the total from its lines and clears
// any stale discount.
func (s *CartService) recalc(ctx context.Context, userID uint) (*model.Cart, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := CartTotal(cart.Items)
	if err := s.carts.UpdateTotals(ctx, cart.ID, total, nil); err != nil {
		return nil, err
	}
	cart.TotalPrice = total
	cart.TotalAfterDiscount = nil
	return cart, nil
}

// CartTotal sums quantity times unit price across lines, rounded to cents.
func CartTotal(items []model.CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Round(2).Float64()
	return f
}

// DiscountedTotal applies a percentage discount, rounded to cents.
func DiscountedTotal(total, percent float64) float64 {
	t := decimal.NewFromFloat(total)
	discount := t.Mul(decimal.NewFromFloat(percent)).Div(decimal.NewFromInt(100))
	f, _ := t.Sub(discount).Round(2).Float64()
	return f
}
