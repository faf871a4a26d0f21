package router

import (
	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
)

// accountRoutes wires the customer-owned wishlist and address book.
func (r *Router) accountRoutes(version *gin.RouterGroup) {
	customer := []gin.HandlerFunc{
		r.jwtMw.RequireAuth(),
		r.jwtMw.CheckActivation(),
		r.jwtMw.AllowedTo(constants.RoleUser),
	}

	wishlist := version.Group("/wishlist", customer...)
	{
		wishlist.GET("", r.wishlistHandler.List)
		wishlist.POST("", r.wishlistHandler.Add)
		wishlist.DELETE("/:productId", r.wishlistHandler.Remove)
	}

	addresses := version.Group("/addresses", customer...)
	{
		addresses.GET("", r.addressHandler.List)
		addresses.POST("", r.addressHandler.Add)
		addresses.DELETE("/:addressId", r.addressHandler.Remove)
	}
}
