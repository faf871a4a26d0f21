package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/dto"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/middleware"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/logger"
	"github.com/soukly/api/pkg/payment"
)

var orderColumns = map[string]string{
	"user":           "user_id",
	"total_price":    "total_price",
	"totalPrice":     "total_price",
	"payment_method": "payment_method",
	"paymentMethod":  "payment_method",
	"is_paid":        "is_paid",
	"isPaid":         "is_paid",
	"is_delivered":   "is_delivered",
	"isDelivered":    "is_delivered",
	"created_at":     "created_at",
	"createdAt":      "created_at",
}

// OrderHandler serves orders: staff see every order, customers only
// their own. Webhook completes gateway-paid card orders.
type OrderHandler struct {
	*Resource[model.Order]
	orders        *service.OrderService
	baseURL       string
	webhookSecret string
}

func NewOrderHandler(db *gorm.DB, orders *service.OrderService, baseURL, webhookSecret string) *OrderHandler {
	repo := repository.NewRepository[model.Order](db)
	return &OrderHandler{
		Resource: NewResource(repo, ResourceOptions[model.Order]{
			Kind:     "Order",
			Columns:  orderColumns,
			Preloads: []string{"Items", "Items.Product", "User"},
			// customers are scoped to their own orders
			Preset: func(c *gin.Context) func(*gorm.DB) *gorm.DB {
				user, ok := middleware.CurrentUser(c)
				if !ok || user.Role != constants.RoleUser {
					return nil
				}
				return func(tx *gorm.DB) *gorm.DB {
					return tx.Where("user_id = ?", user.ID)
				}
			},
		}),
		orders:        orders,
		baseURL:       baseURL,
		webhookSecret: webhookSecret,
	}
}

// GetOne handles GET /orders/:id; customers may only read their own.
func (h *OrderHandler) GetOne(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.repo.GetByID(c.Request.Context(), id, "Items", "Items.Product")
	if err != nil {
		respondError(c, err)
		return
	}
	if user.Role == constants.RoleUser && order.UserID != user.ID {
		respondError(c, apperrors.ErrForbidden)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(order))
}

// CreateCashOrder handles POST /orders; the cart is resolved from the
// logged user.
func (h *OrderHandler) CreateCashOrder(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	shipping := model.ShippingAddress{
		Alias:      req.ShippingAddress.Alias,
		Details:    req.ShippingAddress.Details,
		Phone:      req.ShippingAddress.Phone,
		City:       req.ShippingAddress.City,
		PostalCode: req.ShippingAddress.PostalCode,
	}
	order, err := h.orders.CreateCashOrder(c.Request.Context(), user.ID, shipping)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(order))
}

// CheckoutSession handles GET /orders/checkout-session; returns the
// hosted payment page handle for the user's cart.
func (h *OrderHandler) CheckoutSession(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	session, err := h.orders.CreateCheckoutSession(c.Request.Context(), user.ID, h.baseURL)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseFieldStatus: constants.StatusSuccess,
		"session":                     session,
	})
}

// MarkPaid handles PUT /orders/:id/pay (staff).
func (h *OrderHandler) MarkPaid(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.MarkPaid(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(order))
}

// MarkDelivered handles PUT /orders/:id/deliver (staff).
func (h *OrderHandler) MarkDelivered(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	order, err := h.orders.MarkDelivered(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(order))
}

// Webhook handles POST /orders/webhook. The signature covers the raw
// body; a completed checkout session becomes a paid card order.
func (h *OrderHandler) Webhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, apperrors.WrapError(apperrors.ErrInvalidInput, err))
		return
	}

	signature := c.GetHeader(constants.HeaderSignature)
	event, err := payment.ParseEvent(body, signature, h.webhookSecret)
	if err != nil {
		logger.GetLogger().Warn("Webhook rejected",
			zap.String("client_ip", c.ClientIP()),
			zap.Error(err),
		)
		respondError(c, apperrors.WrapError(apperrors.ErrWebhookSignature, err))
		return
	}

	if event.Type != payment.EventCheckoutCompleted {
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	order, err := h.orders.CompleteCardOrder(c.Request.Context(), event.Session)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.GetLogger().Info("Card order completed from webhook",
		zap.Uint("order_id", order.ID),
		zap.String("payment_ref", order.PaymentRef),
	)
	c.JSON(http.StatusOK, gin.H{"received": true})
}
