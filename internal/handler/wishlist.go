package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/dto"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/middleware"
	"github.com/soukly/api/internal/repository"
)

// WishlistHandler manages the logged user's wishlist. Adding a product
// twice leaves a single entry.
type WishlistHandler struct {
	users *repository.UserRepository
}

func NewWishlistHandler(users *repository.UserRepository) *WishlistHandler {
	return &WishlistHandler{users: users}
}

// Add handles POST /wishlist.
func (h *WishlistHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.AddToWishlistRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := h.users.AddToWishlist(ctx, user.ID, req.ProductID); err != nil {
		respondError(c, err)
		return
	}

	products, err := h.users.GetWishlist(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(products))
}

// List handles GET /wishlist.
func (h *WishlistHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	products, err := h.users.GetWishlist(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]any{
		constants.ResponseFieldCount: len(products),
		constants.ResponseFieldData:  products,
	})
}

// Remove handles DELETE /wishlist/:productId.
func (h *WishlistHandler) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	if err := h.users.RemoveFromWishlist(ctx, user.ID, productID); err != nil {
		respondError(c, err)
		return
	}

	products, err := h.users.GetWishlist(ctx, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(products))
}
