package handler

import (
	"strings"

	"gorm.io/gorm"

	"github.com/soukly/api/internal/model"
	"github.com/soukly/api/internal/repository"
)

var couponColumns = map[string]string{
	"name":       "name",
	"discount":   "discount",
	"expire":     "expire",
	"created_at": "created_at",
	"createdAt":  "created_at",
}

type CouponHandler struct {
	*Resource[model.Coupon]
}

func NewCouponHandler(db *gorm.DB) *CouponHandler {
	repo := repository.NewRepository[model.Coupon](db)
	return &CouponHandler{
		Resource: NewResource(repo, ResourceOptions[model.Coupon]{
			Kind:    "Coupon",
			Columns: couponColumns,
			// coupon codes are case-insensitive on entry, stored uppercase
			Prepare: func(coupon *model.Coupon) {
				coupon.Name = strings.ToUpper(strings.TrimSpace(coupon.Name))
			},
		}),
	}
}
