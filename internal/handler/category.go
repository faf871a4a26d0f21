package handler

import (
	"gorm.io/gorm"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/slug"
)

// categoryColumns is the filter/sort allow-list for category listings.
var categoryColumns = map[string]string{
	"name":       "name",
	"slug":       "slug",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

type CategoryHandler struct {
	*Resource[model.Category]
}

func NewCategoryHandler(db *gorm.DB, cache *service.CacheService) *CategoryHandler {
	repo := repository.NewRepository[model.Category](db)
	return &CategoryHandler{
		Resource: NewResource(repo, ResourceOptions[model.Category]{
			Kind:    "Category",
			Columns: categoryColumns,
			Prepare: func(category *model.Category) {
				if category.Name != "" {
					category.Slug = slug.Make(category.Name)
				}
			},
			Cache: cache,
		}),
	}
}
