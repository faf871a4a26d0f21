package router

import (
	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
)

func (r *Router) userRoutes(version *gin.RouterGroup) {
	users := version.Group("/users")
	users.Use(r.jwtMw.RequireAuth())
	{
		// reachable while deactivated, so the account can come back
		users.PUT("/activeMe", r.userHandler.ActivateMe)

		active := users.Group("")
		active.Use(r.jwtMw.CheckActivation())
		{
			// logged-user self endpoints
			active.GET("/getMe", r.userHandler.GetMe)
			active.PUT("/updateMyData", r.userHandler.UpdateMe)
			active.PUT("/updateMyPassword", r.userHandler.UpdateMyPassword)
			active.DELETE("/deleteMe", r.userHandler.DeactivateMe)

			// admin user management
			admin := active.Group("")
			admin.Use(r.jwtMw.AllowedTo(constants.RoleAdmin))
			{
				admin.GET("", r.userHandler.List)
				admin.POST("", r.userHandler.Create)
				admin.GET("/:id", r.userHandler.GetOne)
				admin.PUT("/:id", r.userHandler.Update)
				admin.DELETE("/:id", r.userHandler.Delete)
				admin.PUT("/changePassword/:id", r.userHandler.ChangePassword)
			}
		}
	}
}
