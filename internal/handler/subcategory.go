package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/slug"
)

var subCategoryColumns = map[string]string{
	"name":       "name",
	"slug":       "slug",
	"category":   "category_id",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

// SubCategoryHandler serves subcategories both standalone and nested
// under /categories/:categoryId/subcategories.
type SubCategoryHandler struct {
	*Resource[model.SubCategory]
}

func NewSubCategoryHandler(db *gorm.DB, cache *service.CacheService) *SubCategoryHandler {
	repo := repository.NewRepository[model.SubCategory](db)
	return &SubCategoryHandler{
		Resource: NewResource(repo, ResourceOptions[model.SubCategory]{
			Kind:     "SubCategory",
			Columns:  subCategoryColumns,
			Preloads: []string{"Category"},
			// nested listings only see the parent category's rows
			Preset: func(c *gin.Context) func(*gorm.DB) *gorm.DB {
				raw := c.Param("categoryId")
				if raw == "" {
					return nil
				}
				categoryID, err := strconv.ParseUint(raw, 10, 64)
				if err != nil {
					return nil
				}
				return func(tx *gorm.DB) *gorm.DB {
					return tx.Where("category_id = ?", uint(categoryID))
				}
			},
			// nested creates inherit the category from the route
			Defaults: func(c *gin.Context, sub *model.SubCategory) {
				if sub.CategoryID != 0 {
					return
				}
				if categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 64); err == nil {
					sub.CategoryID = uint(categoryID)
				}
			},
			Prepare: func(sub *model.SubCategory) {
				if sub.Name != "" {
					sub.Slug = slug.Make(sub.Name)
				}
			},
			Cache: cache,
		}),
	}
}
