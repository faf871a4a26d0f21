package handler

import (
	"net/http"
	"strconv"

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

var reviewColumns = map[string]string{
	"rating":     "rating",
	"product":    "product_id",
	"user":       "user_id",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

// ReviewHandler serves reviews nested under products. Listing and reads
// come from the generated resource; writes are bespoke because they carry
// the author from the token and keep the product's rating aggregates
// fresh.
type ReviewHandler struct {
	*Resource[model.Review]
	repo    *repository.Repository[model.Review]
	reviews *service.ReviewService
}

func NewReviewHandler(db *gorm.DB, reviews *service.ReviewService) *ReviewHandler {
	repo := repository.NewRepository[model.Review](db)
	return &ReviewHandler{
		Resource: NewResource(repo, ResourceOptions[model.Review]{
			Kind:     "Review",
			Columns:  reviewColumns,
			Preloads: []string{"User"},
			Preset: func(c *gin.Context) func(*gorm.DB) *gorm.DB {
				raw := c.Param("productId")
				if raw == "" {
					return nil
				}
				productID, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					return nil
				}
				return func(tx *gorm.DB) *gorm.DB {
					return tx.Where("product_id = ?", uint(productID))
				}
			},
		}),
		repo:    repo,
		reviews: reviews,
	}
}

// Create handles POST /products/:productId/reviews. One review per user
// and product; the product's aggregates are recomputed afterwards.
func (h *ReviewHandler) Create(c *gin.Context) {
	productID, ok := paramID(c, "productId")
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	if err := h.reviews.EnsureSingleReview(ctx, user.ID, productID); err != nil {
		respondError(c, err)
		return
	}

	review := model.Review{
		Title:     req.Title,
		Rating:    req.Rating,
		UserID:    user.ID,
		ProductID: productID,
	}
	if err := h.repo.Create(ctx, &review); err != nil {
		respondError(c, err)
		return
	}
	if err := h.reviews.RefreshProductRatings(ctx, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, constants.BuildDataResponse(review))
}

// Update handles PUT /reviews/:id; only the author may edit.
func (h *ReviewHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	var req dto.UpdateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	existing, err := h.repo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.UserID != user.ID {
		respondError(c, apperrors.ErrForbidden)
		return
	}

	changes := model.Review{Title: req.Title, Rating: req.Rating}
	review, err := h.repo.Update(ctx, id, &changes)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.reviews.RefreshProductRatings(ctx, review.ProductID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, constants.BuildDataResponse(review))
}

// Delete handles DELETE /reviews/:id; the author or staff may remove it.
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, apperrors.ErrUnauthorized)
		return
	}

	ctx := c.Request.Context()
	existing, err := h.repo.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	if existing.UserID != user.ID && user.Role == constants.RoleUser {
		respondError(c, apperrors.ErrForbidden)
		return
	}

	if err := h.repo.Delete(ctx, id); err != nil {
		respondError(c, err)
		return
	}
	if err := h.reviews.RefreshProductRatings(ctx, existing.ProductID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
