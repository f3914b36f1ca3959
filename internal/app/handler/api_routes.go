package handler

import (
	"adagency/internal/app/middleware"
	"adagency/internal/app/role"

	"github.com/gin-gonic/gin"
)

// RegisterAPIRoutes registers every REST route with its role gating.
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	router.GET("/ping", h.Ping)

	api := router.Group("/api")

	// ============ Authentication ============
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.AuthHandler.RegisterUser)
		auth.POST("/login", h.AuthHandler.LoginUser)

		auth.POST("/logout", authMiddleware.WithAuthCheck(role.User, role.Manager, role.Admin), h.AuthHandler.LogoutUser)
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.User, role.Manager, role.Admin), h.AuthHandler.GetUserProfile)
		auth.PUT("/profile", authMiddleware.WithAuthCheck(role.User, role.Manager, role.Admin), h.AuthHandler.UpdateProfile)
	}

	// ============ Domain availability and pricing ============
	api.GET("/domain/check-domain", h.CheckDomain)
	api.GET("/domains", authMiddleware.WithAuthCheck(role.User, role.Manager, role.Admin), h.ListMyDomains)

	prices := api.Group("/domain-prices")
	{
		prices.GET("", h.ListDomainPrices)

		prices.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateDomainPrice)
		prices.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateDomainPrice)
		prices.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteDomainPrice)
	}

	// ============ Checkout and transactions ============
	// Checkout resolves its own identity (login or inline signup), so no
	// auth middleware here.
	api.POST("/checkout", h.ProcessCheckout)

	transactions := api.Group("/transactions")
	{
		transactions.GET("", authMiddleware.WithAuthCheck(role.User, role.Manager, role.Admin), h.ListTransactions)
		transactions.GET("/:id", authMiddleware.WithAuthCheck(role.User, role.Manager, role.Admin), h.GetTransaction)
		transactions.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteTransaction)
	}

	// ============ Service and hosting catalog ============
	services := api.Group("/services")
	{
		services.GET("", h.ListServices)
		services.GET("/:id", h.GetService)

		services.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateService)
		services.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateService)
		services.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteService)
	}

	hosting := api.Group("/hosting-packages")
	{
		hosting.GET("", h.ListHostingPackages)
		hosting.GET("/:id", h.GetHostingPackage)

		hosting.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateHostingPackage)
		hosting.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateHostingPackage)
		hosting.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteHostingPackage)
	}

	// ============ Content ============
	blogs := api.Group("/blogs")
	{
		blogs.GET("", h.ListBlogs)
		blogs.GET("/:id", h.GetBlog)

		blogs.POST("", authMiddleware.WithAuthCheck(role.Manager, role.Admin), h.CreateBlog)
		blogs.PUT("/:id", authMiddleware.WithAuthCheck(role.Manager, role.Admin), h.UpdateBlog)
		blogs.DELETE("/:id", authMiddleware.WithAuthCheck(role.Manager, role.Admin), h.DeleteBlog)
		blogs.POST("/:id/image", authMiddleware.WithAuthCheck(role.Manager, role.Admin), h.UploadBlogCover)
	}

	// ============ Administration ============
	menus := api.Group("/menus")
	{
		menus.GET("", h.ListMenus)

		menus.POST("", authMiddleware.WithAuthCheck(role.Admin), h.CreateMenu)
		menus.PUT("/:id", authMiddleware.WithAuthCheck(role.Admin), h.UpdateMenu)
		menus.DELETE("/:id", authMiddleware.WithAuthCheck(role.Admin), h.DeleteMenu)
	}

	api.GET("/roles", authMiddleware.WithAuthCheck(role.Admin), h.ListRoles)

	permissions := api.Group("/permissions")
	permissions.Use(authMiddleware.WithAuthCheck(role.Admin))
	{
		permissions.GET("", h.ListPermissions)
		permissions.GET("/:roleId", h.GetPermission)
		permissions.PUT("/:roleId", h.UpsertPermission)
	}
}
