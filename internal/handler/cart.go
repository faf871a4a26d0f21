package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/dto"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/middleware"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/service"
)

// CartHandler serves the logged user's cart. Every response reports the
// number of lines next to the cart itself.
type CartHandler struct {
	carts *service.CartService
}

func NewCartHandler(carts *service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

func cartEnvelope(cart *model.Cart) map[string]any {
	return map[string]any{
		"cartItems":                 len(cart.Items),
		constants.ResponseFieldData: cart,
	}
}

// Get handles GET /cart.
func (h *CartHandler) Get(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	cart, err := h.carts.Get(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartEnvelope(cart))
}

// Add handles POST /cart.
func (h *CartHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.AddToCartRequest
	if !bindJSON(c, &req) {
		return
	}

	cart, err := h.carts.AddProduct(c.Request.Context(), user.ID, req.ProductID, req.Color)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartEnvelope(cart))
}

// UpdateItem handles PUT /cart/:itemId.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}

	var req dto.UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	cart, err := h.carts.UpdateItemQuantity(c.Request.Context(), user.ID, itemID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartEnvelope(cart))
}

// RemoveItem handles DELETE /cart/:itemId.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	itemID, ok := paramID(c, "itemId")
	if !ok {
		return
	}

	cart, err := h.carts.RemoveItem(c.Request.Context(), user.ID, itemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartEnvelope(cart))
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.carts.Clear(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ApplyCoupon handles PUT /cart/applyCoupon.
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.ApplyCouponRequest
	if !bindJSON(c, &req) {
		return
	}

	cart, err := h.carts.ApplyCoupon(c.Request.Context(), user.ID, req.Coupon)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartEnvelope(cart))
}
