package router

import (
	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
)

// orderRoutes wires order placement, listing and fulfilment. The
// gateway webhook stays outside authentication; it is verified by its
// signature instead.
func (r *Router) orderRoutes(version *gin.RouterGroup) {
	version.POST("/orders/webhook", r.orderHandler.Webhook)

	orders := version.Group("/orders", r.jwtMw.RequireAuth(), r.jwtMw.CheckActivation())
	{
		orders.GET("", r.jwtMw.AllowedTo(constants.RoleUser, constants.RoleAdmin, constants.RoleManager), r.orderHandler.List)
		orders.GET("/checkout-session", r.jwtMw.AllowedTo(constants.RoleUser), r.orderHandler.CheckoutSession)
		orders.POST("", r.jwtMw.AllowedTo(constants.RoleUser), r.orderHandler.CreateCashOrder)
		orders.GET("/:id", r.jwtMw.AllowedTo(constants.RoleUser, constants.RoleAdmin, constants.RoleManager), r.orderHandler.GetOne)

		staff := orders.Group("", r.jwtMw.AllowedTo(constants.RoleAdmin, constants.RoleManager))
		{
			staff.PUT("/:id/pay", r.orderHandler.MarkPaid)
			staff.PUT("/:id/deliver", r.orderHandler.MarkDelivered)
		}
	}
}
