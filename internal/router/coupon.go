package router

import (
	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
)

// couponRoutes wires coupon management; the whole surface is staff-only.
func (r *Router) couponRoutes(version *gin.RouterGroup) {
	coupons := version.Group("/coupons",
		r.jwtMw.RequireAuth(),
		r.jwtMw.CheckActivation(),
		r.jwtMw.AllowedTo(constants.RoleAdmin, constants.RoleManager),
	)
	{
		coupons.GET("", r.couponHandler.List)
		coupons.POST("", r.couponHandler.Create)
		coupons.GET("/:id", r.couponHandler.GetOne)
		coupons.PUT("/:id", r.couponHandler.Update)
		coupons.DELETE("/:id", r.couponHandler.Delete)
	}
}
