package routes

import (
	"time"

	"atlas-backend/firebase"
	"atlas-backend/handlers"
	"atlas-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, storage firebase.StorageClient) {
	// Initialize handlers
	authHandler := &handlers.AuthHandler{DB: db}
	countryHandler := &handlers.CountryHandler{DB: db, Storage: storage}
	stateHandler := &handlers.StateHandler{DB: db}
	cityHandler := &handlers.CityHandler{DB: db}
	categoryHandler := &handlers.CategoryHandler{DB: db, Storage: storage}
	subcategoryHandler := &handlers.SubcategoryHandler{DB: db, Storage: storage}

	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	// Public routes
	api := r.Group("/api")
	{
		// Auth routes
		api.POST("/auth/register", authLimiter.Middleware(), authHandler.Register)
		api.POST("/auth/login", authLimiter.Middleware(), authHandler.Login)

		// Public geography routes
		api.GET("/countries", countryHandler.GetCountries)
		api.GET("/states", stateHandler.GetStates)
		api.GET("/states/grouped", stateHandler.GetGroupedStates)
		api.GET("/cities", cityHandler.GetCities)

		// Public taxonomy routes
		api.GET("/categories", categoryHandler.GetCategories)
	}

	// Protected routes (require authentication)
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", authHandler.GetProfile)
	}

	// Admin routes (require admin role)
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware())
	{
		// Geography management
		admin.POST("/countries", countryHandler.CreateCountry)
		admin.POST("/states", stateHandler.CreateState)
		admin.POST("/cities", cityHandler.CreateCity)

		// Taxonomy management
		admin.POST("/categories", categoryHandler.CreateCategory)
		admin.POST("/subcategories", subcategoryHandler.CreateSubcategory)
		admin.DELETE("/categories/:category_id/subcategories/:subcategory_id", subcategoryHandler.DeleteSubcategory)
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
