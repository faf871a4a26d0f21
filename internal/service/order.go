package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/soukly/api/internal/constants"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/pkg/logger"
	"github.com/soukly/api/pkg/payment"
)

type OrderService struct {
	orders  *repository.OrderRepository
	carts   *repository.CartRepository
	users   *repository.UserRepository
	gateway *payment.Gateway

	// flat amounts added on top of the cart total
	TaxPrice      float64
	ShippingPrice float64
}

func NewOrderService(orders *repository.OrderRepository, carts *repository.CartRepository, users *repository.UserRepository, gateway *payment.Gateway) *OrderService {
	return &OrderService{
		orders:  orders,
		carts:   carts,
		users:   users,
		gateway: gateway,
	}
}

// CreateCashOrder turns the user's cart into a cash-on-delivery order.
// Order creation, stock adjustment and cart removal happen in one
// transaction.
func (s *OrderService) CreateCashOrder(ctx context.Context, userID uint, shipping model.ShippingAddress) (*model.Order, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.placeOrder(ctx, cart, shipping, constants.PaymentMethodCash, "", false)
}

// placeOrder builds the order from the cart and runs the transactional
// create. paid marks gateway-settled orders at creation time.
func (s *OrderService) placeOrder(ctx context.Context, cart *model.Cart, shipping model.ShippingAddress, method, paymentRef string, paid bool) (*model.Order, error) {
	if len(cart.Items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, model.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Color:     line.Color,
			Price:     line.Price,
		})
	}

	order := &model.Order{
		UserID:          cart.UserID,
		Items:           items,
		TaxPrice:        s.TaxPrice,
		ShippingPrice:   s.ShippingPrice,
		ShippingAddress: datatypes.NewJSONType(shipping),
		TotalPrice:      orderTotal(cart, s.TaxPrice, s.ShippingPrice),
		PaymentMethod:   method,
		PaymentRef:      paymentRef,
	}
	if paid {
		now := time.Now().UTC()
		order.IsPaid = true
		order.PaidAt = &now
	}

	if err := s.orders.CreateFromCart(ctx, order, cart); err != nil {
		return nil, err
	}

	logger.GetLogger().Info("Order placed",
		zap.Uint("order_id", order.ID),
		zap.Uint("user_id", order.UserID),
		zap.String("payment_method", method),
		zap.Float64("total", order.TotalPrice),
	)
	return order, nil
}

// CreateCheckoutSession opens a hosted gateway checkout for the user's
// cart; the completed-payment webhook turns it into a paid card order.
func (s *OrderService) CreateCheckoutSession(ctx context.Context, userID uint, baseURL string) (*payment.CheckoutSession, error) {
	cart, err := s.carts.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.ErrCartEmpty
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := cart.TotalPrice
	if cart.TotalAfterDiscount != nil {
		total = *cart.TotalAfterDiscount
	}
	amountCents := decimal.NewFromFloat(total).
		Add(decimal.NewFromFloat(s.TaxPrice)).
		Add(decimal.NewFromFloat(s.ShippingPrice)).
		Mul(decimal.NewFromInt(100)).
		Round(0).IntPart()

	session, err := s.gateway.CreateCheckoutSession(
		ctx,
		amountCents,
		strconv.FormatUint(uint64(cart.ID), 10),
		user.Email,
		baseURL+"/orders",
		baseURL+"/cart",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}
	return session, nil
}

// CompleteCardOrder handles a verified checkout-completed event: it finds
// the cart the session was opened for and places the paid card order.
// Gateways redeliver events, so a session whose order already exists is
// acked with that order instead of failing on the long-gone cart.
func (s *OrderService) CompleteCardOrder(ctx context.Context, session payment.CheckoutSession) (*model.Order, error) {
	existing, err := s.orders.GetByPaymentRef(ctx, session.Reference)
	if err == nil {
		logger.GetLogger().Info("Checkout event redelivered, order already placed",
			zap.Uint("order_id", existing.ID),
			zap.String("payment_ref", session.Reference),
		)
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	cartID, err := strconv.ParseUint(session.ClientRef, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid client reference %q: %w", session.ClientRef, err)
	}

	var cart model.Cart
	err = s.carts.DB().WithContext(ctx).
		Preload("Items").
		First(&cart, uint(cartID)).Error
	if err != nil {
		return nil, apperrors.NotFoundf("there is no cart for this id %d", cartID)
	}

	var shipping model.ShippingAddress
	if addresses, err := s.users.GetAddresses(ctx, cart.UserID); err == nil && len(addresses) > 0 {
		shipping = model.ShippingAddress{
			Alias:      addresses[0].Alias,
			Details:    addresses[0].Details,
			Phone:      addresses[0].Phone,
			City:       addresses[0].City,
			PostalCode: addresses[0].PostalCode,
		}
	}

	return s.placeOrder(ctx, &cart, shipping, constants.PaymentMethodCard, session.Reference, true)
}

// MarkPaid stamps the order paid now.
func (s *OrderService) MarkPaid(ctx context.Context, orderID uint) (*model.Order, error) {
	return s.orders.UpdateColumns(ctx, orderID, map[string]any{
		"is_paid": true,
		"paid_at": time.Now().UTC(),
	})
}

// MarkDelivered stamps the order delivered now.
func (s *OrderService) MarkDelivered(ctx context.Context, orderID uint) (*model.Order, error) {
	return s.orders.UpdateColumns(ctx, orderID, map[string]any{
		"is_delivered": true,
		"delivered_at": time.Now().UTC(),
	})
}

// orderTotal is the discounted-or-plain cart total plus tax and shipping,
// rounded to cents.
func orderTotal(cart *model.Cart, tax, shipping float64) float64 {
	base := cart.TotalPrice
	if cart.TotalAfterDiscount != nil {
		base = *cart.TotalAfterDiscount
	}
	total := decimal.NewFromFloat(base).
		Add(decimal.NewFromFloat(tax)).
		Add(decimal.NewFromFloat(shipping))
	f, _ := total.Round(2).Float64()
	return f
}
