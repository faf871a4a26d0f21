package handler

import (
	"gorm.io/gorm"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/slug"
)

var brandColumns = map[string]string{
	"name":       "name",
	"slug":       "slug",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

type BrandHandler struct {
	*Resource[model.Brand]
}

func NewBrandHandler(db *gorm.DB, cache *service.CacheService) *BrandHandler {
	repo := repository.NewRepository[model.Brand](db)
	return &BrandHandler{
		Resource: NewResource(repo, ResourceOptions[model.Brand]{
			Kind:    "Brand",
			Columns: brandColumns,
			Prepare: func(brand *model.Brand) {
				if brand.Name != "" {
					brand.Slug = slug.Make(brand.Name)
				}
			},
			Cache: cache,
		}),
	}
}
