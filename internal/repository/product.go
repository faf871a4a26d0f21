package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/soukly/api/internal/model"
)

type ProductRepository struct {
	*Repository[model.Product]
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{Repository: NewRepository[model.Product](db)}
}

// RecalcRatings recomputes the product's rating aggregates from its
// reviews in one query and writes them back.
func (r *ProductRepository) RecalcRatings(ctx context.Context, productID uint) error {
	var agg struct {
		Avg   float64
		Count int64
	}
	err := r.DB().WithContext(ctx).Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ?", productID).
		Scan(&agg).Error
	if err != nil {
		return err
	}

	return r.DB().WithContext(ctx).Model(&model.Product{}).Where("id = ?", productID).Updates(map[string]any{
		"ratings_average":  agg.Avg,
		"ratings_quantity": agg.Count,
	}).Error
}
