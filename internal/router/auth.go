package router

import "github.com/gin-gonic/gin"

func (r *Router) authRoutes(version *gin.RouterGroup) {
	auth := version.Group("/auth")
	{
		auth.POST("/signup", r.authHandler.Signup)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/forgotPassword", r.authHandler.ForgotPassword)
		auth.POST("/verifyResetCode", r.authHandler.VerifyResetCode)
		auth.PUT("/resetPassword", r.authHandler.ResetPassword)
	}
}
