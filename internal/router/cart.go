package router

import (
	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
)

// cartRoutes wires the logged customer's shopping cart.
func (r *Router) cartRoutes(version *gin.RouterGroup) {
	cart := version.Group("/cart",
		r.jwtMw.RequireAuth(),
		r.jwtMw.CheckActivation(),
		r.jwtMw.AllowedTo(constants.RoleUser),
	)
	{
		cart.GET("", r.cartHandler.Get)
		cart.POST("", r.cartHandler.Add)
		cart.DELETE("", r.cartHandler.Clear)
		cart.PUT("/applyCoupon", r.cartHandler.ApplyCoupon)
		cart.PUT("/:itemId", r.cartHandler.UpdateItem)
		cart.DELETE("/:itemId", r.cartHandler.RemoveItem)
	}
}
