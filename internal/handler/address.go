package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/dto"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/middleware"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
)

// AddressHandler manages the logged user's address book.
type AddressHandler struct {
	users *repository.UserRepository
}

func NewAddressHandler(users *repository.UserRepository) *AddressHandler {
	return &AddressHandler{users: users}
}

// Add handles POST /addresses.
func (h *AddressHandler) Add(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.AddAddressRequest
	if !bindJSON(c, &req) {
		return
	}

	address := model.Address{
		UserID:     user.ID,
		Alias:      req.Alias,
		Details:    req.Details,
		Phone:      req.Phone,
		City:       req.City,
		PostalCode: req.PostalCode,
	}
	if err := h.users.AddAddress(c.Request.Context(), &address); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(address))
}

// List handles GET /addresses.
func (h *AddressHandler) List(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	addresses, err := h.users.GetAddresses(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, map[string]any{
		constants.ResponseFieldCount: len(addresses),
		constants.ResponseFieldData:  addresses,
	})
}

// Remove handles DELETE /addresses/:addressId.
func (h *AddressHandler) Remove(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	addressID, ok := paramID(c, "addressId")
	if !ok {
		return
	}

	if err := h.users.RemoveAddress(c.Request.Context(), user.ID, addressID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
