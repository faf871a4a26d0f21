package handler

import (
	"gorm.io/gorm"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
	"github.com/soukly/api/internal/service"
	"github.com/soukly/api/pkg/query"
	"github.com/soukly/api/pkg/slug"
)

// productColumns accepts both the JSON field names and their camelCase
// spellings, since storefront clients send either.
var productColumns = map[string]string{
	"title":                "title",
	"slug":                 "slug",
	"price":                "price",
	"price_after_discount": "price_after_discount",
	"priceAfterDiscount":   "price_after_discount",
	"quantity":             "quantity",
	"sold":                 "sold",
	"category":             "category_id",
	"category_id":          "category_id",
	"brand":                "brand_id",
	"brand_id":             "brand_id",
	"ratings_average":      "ratings_average",
	"ratingsAverage":       "ratings_average",
	"ratings_quantity":     "ratings_quantity",
	"ratingsQuantity":      "ratings_quantity",
	"created_at":           "created_at",
	"createdAt":            "created_at",
}

type ProductHandler struct {
	*Resource[model.Product]
}

func NewProductHandler(db *gorm.DB, cache *service.CacheService) *ProductHandler {
	repo := repository.NewRepository[model.Product](db)
	return &ProductHandler{
		Resource: NewResource(repo, ResourceOptions[model.Product]{
			Kind:     "Product",
			Columns:  productColumns,
			Search:   query.KindProduct,
			Preloads: []string{"Category", "Brand", "Subcategories"},
			Prepare: func(product *model.Product) {
				if product.Title != "" {
					product.Slug = slug.Make(product.Title)
				}
			},
			Cache: cache,
		}),
	}
}
