package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/soukly/api/config"
	"github.com/soukly/api/internal/handler"
	"github.com/soukly/api/internal/middleware"
)

type Router struct {
	categoryHandler    *handler.CategoryHandler
	subCategoryHandler *handler.SubCategoryHandler
	brandHandler       *handler.BrandHandler
	productHandler     *handler.ProductHandler
	reviewHandler      *handler.ReviewHandler
	couponHandler      *handler.CouponHandler
	userHandler        *handler.UserHandler
	authHandler        *handler.AuthHandler
	wishlistHandler    *handler.WishlistHandler
	addressHandler     *handler.AddressHandler
	cartHandler        *handler.CartHandler
	orderHandler       *handler.OrderHandler
	healthHandler      *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	Config *config.Config
}

func NewRouter(
	category *handler.CategoryHandler,
	subCategory *handler.SubCategoryHandler,
	brand *handler.BrandHandler,
	product *handler.ProductHandler,
	review *handler.ReviewHandler,
	coupon *handler.CouponHandler,
	user *handler.UserHandler,
	auth *handler.AuthHandler,
	wishlist *handler.WishlistHandler,
	address *handler.AddressHandler,
	cart *handler.CartHandler,
	order *handler.OrderHandler,
	health *handler.HealthHandler,
	jwtMw *middleware.JWTMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		categoryHandler:    category,
		subCategoryHandler: subCategory,
		brandHandler:       brand,
		productHandler:     product,
		reviewHandler:      review,
		couponHandler:      coupon,
		userHandler:        user,
		authHandler:        auth,
		wishlistHandler:    wishlist,
		addressHandler:     address,
		cartHandler:        cart,
		orderHandler:       order,
		healthHandler:      health,
		jwtMw:              jwtMw,
		Config:             cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.BasicHealth)
		api.GET("/health/full", r.healthHandler.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.Use(middleware.RateLimit(r.Config.RateLimit.Request, time.Duration(r.Config.RateLimit.Duration)*time.Second))

			r.authRoutes(v1)
			r.userRoutes(v1)
			r.catalogRoutes(v1)
			r.couponRoutes(v1)
			r.accountRoutes(v1)
			r.cartRoutes(v1)
			r.orderRoutes(v1)
		}
	}

	return router
}
