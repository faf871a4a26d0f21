package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soukly/api/internal/constants"
	"github.com/soukly/api/internal/dto"
	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/middleware"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/service"
)

var userColumns = map[string]string{
	"name":       "name",
	"email":      "email",
	"role":       "role",
	"active":     "active",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

// UserHandler carries the admin user CRUD plus the logged-user self
// endpoints. Create and update go through the service so passwords are
// hashed and slugs derived.
type UserHandler struct {
	*Resource[model.User]
	users *service.UserService
}

func NewUserHandler(db *gorm.DB, users *service.UserService) *UserHandler {
	repo := repository.NewRepository[model.User](db)
	return &UserHandler{
		Resource: NewResource(repo, ResourceOptions[model.User]{
			Kind:    "User",
			Columns: userColumns,
		}),
		users: users,
	}
}

// Create handles POST /users (admin).
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user := &model.User{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Role:  req.Role,
	}
	if err := h.users.Create(c.Request.Context(), user, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(user))
}

// Update handles PUT /users/:id (admin); never touches the password.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	changes := &model.User{
		Name:  req.Name,
		Phone: req.Phone,
		Role:  req.Role,
	}
	user, err := h.users.Update(c.Request.Context(), id, changes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(user))
}

// ChangePassword handles PUT /users/changePassword/:id (admin).
func (h *UserHandler) ChangePassword(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.users.ChangePassword(c.Request.Context(), id, req.Password); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildSuccessResponse("Password updated"))
}

// GetMe handles GET /users/getMe.
func (h *UserHandler) GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}
	c.JSON(http.StatusOK, constants.BuildDataResponse(user))
}

// UpdateMe handles PUT /users/updateMyData.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateLoggedUserRequest
	if !bindJSON(c, &req) {
		return
	}

	changes := &model.User{Name: req.Name, Phone: req.Phone}
	updated, err := h.users.Update(c.Request.Context(), user.ID, changes)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(updated))
}

// UpdateMyPassword handles PUT /users/updateMyPassword; a fresh token
// comes back since the old ones are invalidated by the change.
func (h *UserHandler) UpdateMyPassword(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.ChangeOwnPasswordRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.users.ChangeOwnPassword(c.Request.Context(), user.ID, req.CurrentPassword, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// DeactivateMe handles DELETE /users/deleteMe.
func (h *UserHandler) DeactivateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.users.Deactivate(c.Request.Context(), user.ID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ActivateMe handles PUT /users/activeMe.
func (h *UserHandler) ActivateMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	activated, err := h.users.Activate(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		constants.ResponseFieldData:   activated,
		constants.ResponseFieldStatus: constants.StatusSuccess,
	})
}
