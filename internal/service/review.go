package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "github.com/soukly/api/internal/errors"
	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
)

type ReviewService struct {
	reviews  *repository.Repository[model.Review]
	products *repository.ProductRepository
}

func NewReviewService(reviews *repository.Repository[model.Review], products *repository.ProductRepository) *ReviewService {
	return &ReviewService{reviews: reviews, products: products}
}

// EnsureSingleReview rejects a second review from the same user on the
// same product.
func (s *ReviewService) EnsureSingleReview(ctx context.Context, userID, productID uint) error {
	var existing model.Review
	err := s.reviews.DB().WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&existing).Error
	if err == nil {
		return apperrors.ErrReviewExists
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// RefreshProductRatings recomputes the reviewed product's aggregates.
// Invoked after every review write or delete.
func (s *ReviewService) RefreshProductRatings(ctx context.Context, productID uint) error {
	return s.products.RecalcRatings(ctx, productID)
}
