package router

import (
	"github.com/gin-gonic/gin"

	"github.com/soukly/api/internal/constants"
)

// aliasParam republishes a route parameter under a second name so
// handlers shared between flat and nested routes find the one they
// expect.
func aliasParam(from, to string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if value := c.Param(from); value != "" {
			c.Params = append(c.Params, gin.Param{Key: to, Value: value})
		}
		c.Next()
	}
}

// catalogRoutes wires categories with their nested subcategories,
// brands, products and the reviews nested under products. Reads are
// public, catalog writes are staff-only and reviews belong to
// customers.
func (r *Router) catalogRoutes(version *gin.RouterGroup) {
	staffOnly := []gin.HandlerFunc{
		r.jwtMw.RequireAuth(),
		r.jwtMw.CheckActivation(),
		r.jwtMw.AllowedTo(constants.RoleAdmin, constants.RoleManager),
	}

	categories := version.Group("/categories")
	{
		categories.GET("", r.categoryHandler.List)
		categories.GET("/:id", r.categoryHandler.GetOne)

		staff := categories.Group("", staffOnly...)
		{
			staff.POST("", r.categoryHandler.Create)
			staff.PUT("/:id", r.categoryHandler.Update)
			staff.DELETE("/:id", r.categoryHandler.Delete)
		}

		nested := categories.Group("/:id/subcategories", aliasParam("id", "categoryId"))
		{
			nested.GET("", r.subCategoryHandler.List)
			nested.POST("", append(staffOnly, r.subCategoryHandler.Create)...)
		}
	}

	subcategories := version.Group("/subcategories")
	{
		subcategories.GET("", r.subCategoryHandler.List)
		subcategories.GET("/:id", r.subCategoryHandler.GetOne)

		staff := subcategories.Group("", staffOnly...)
		{
			staff.POST("", r.subCategoryHandler.Create)
			staff.PUT("/:id", r.subCategoryHandler.Update)
			staff.DELETE("/:id", r.subCategoryHandler.Delete)
		}
	}

	brands := version.Group("/brands")
	{
		brands.GET("", r.brandHandler.List)
		brands.GET("/:id", r.brandHandler.GetOne)

		staff := brands.Group("", staffOnly...)
		{
			staff.POST("", r.brandHandler.Create)
			staff.PUT("/:id", r.brandHandler.Update)
			staff.DELETE("/:id", r.brandHandler.Delete)
		}
	}

	products := version.Group("/products")
	{
		products.GET("", r.productHandler.List)
		products.GET("/:id", r.productHandler.GetOne)

		staff := products.Group("", staffOnly...)
		{
			staff.POST("", r.productHandler.Create)
			staff.PUT("/:id", r.productHandler.Update)
			staff.DELETE("/:id", r.productHandler.Delete)
		}

		nested := products.Group("/:id/reviews", aliasParam("id", "productId"))
		{
			nested.GET("", r.reviewHandler.List)
			nested.POST("",
				r.jwtMw.RequireAuth(),
				r.jwtMw.CheckActivation(),
				r.jwtMw.AllowedTo(constants.RoleUser),
				r.reviewHandler.Create,
			)
		}
	}

	reviews := version.Group("/reviews")
	{
		reviews.GET("", r.reviewHandler.List)
		reviews.GET("/:id", r.reviewHandler.GetOne)

		authed := reviews.Group("", r.jwtMw.RequireAuth(), r.jwtMw.CheckActivation())
		{
			authed.PUT("/:id", r.jwtMw.AllowedTo(constants.RoleUser), r.reviewHandler.Update)
			authed.DELETE("/:id",
				r.jwtMw.AllowedTo(constants.RoleUser, constants.RoleAdmin, constants.RoleManager),
				r.reviewHandler.Delete,
			)
		}
	}
}
