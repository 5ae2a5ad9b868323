package router

import (
	"time"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Khaliq12345/O-Platy60-server/internal/config"
	"github.com/Khaliq12345/O-Platy60-server/internal/handler"
	"github.com/Khaliq12345/O-Platy60-server/internal/middleware"
	"github.com/Khaliq12345/O-Platy60-server/internal/model"
	"github.com/Khaliq12345/O-Platy60-server/internal/repository"
	"github.com/Khaliq12345/O-Platy60-server/internal/service"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB
func New(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(200, time.Minute))

	// ── Repositories ─────────────────────────────────────────────────────────
	categoryRepo := repository.NewCategoryRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	transformationRepo := repository.NewTransformationRepository(db)
	stepRepo := repository.NewTransformationStepRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	productRepo := repository.NewProductRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	userRepo := repository.NewUserRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	categorySvc := service.NewCategoryService(categoryRepo)
	purchaseSvc := service.NewPurchaseService(purchaseRepo, categoryRepo, transformationRepo)
	transformationSvc := service.NewTransformationService(transformationRepo, purchaseRepo, stepRepo)
	stepSvc := service.NewTransformationStepService(stepRepo, transformationRepo)
	ingredientSvc := service.NewIngredientService(ingredientRepo)
	productSvc := service.NewProductService(productRepo, ingredientRepo)
	inventorySvc := service.NewInventoryService(inventoryRepo)
	userSvc := service.NewUserService(userRepo)
	authSvc := service.NewAuthService(userRepo, cfg)

	// ── Handlers ─────────────────────────────────────────────────────────────
	categoriesH := handler.NewCategoriesHandler(categorySvc)
	purchasesH := handler.NewPurchasesHandler(purchaseSvc)
	transformationsH := handler.NewTransformationsHandler(transformationSvc, stepSvc)
	stepsH := handler.NewTransformationStepsHandler(stepSvc)
	ingredientsH := handler.NewIngredientsHandler(ingredientSvc)
	productsH := handler.NewProductsHandler(productSvc)
	inventoriesH := handler.NewInventoriesHandler(inventorySvc)
	usersH := handler.NewUsersHandler(userSvc)
	authH := handler.NewAuthHandler(authSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/signup", middleware.LoginRateLimiter(), authH.Signup)
		auth.POST("/refresh", authH.Refresh)
		auth.POST("/logout", authH.Logout)
		auth.POST("/validate-token", authH.Validate)
	}

	// Category reads are public so menus can render without a session
	r.GET("/v1/categories", categoriesH.List)
	r.GET("/v1/categories/:id", categoriesH.Get)

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	anyRole := middleware.RequireRole(model.RoleAdmin, model.RoleManager, model.RoleCook)
	v1 := r.Group("/v1", jwtMW)
	{
		// Categories — any authenticated role reads above; admin writes
		categories := v1.Group("/categories", middleware.RequireRole(model.RoleAdmin))
		{
			categories.POST("", categoriesH.Create)
			categories.PUT("/:id", categoriesH.Update)
			categories.DELETE("/:id", categoriesH.Delete)
		}

		// Purchases — reads for all roles, writes for manager/admin
		v1.GET("/purchases", anyRole, purchasesH.List)
		v1.GET("/purchases/:id", anyRole, purchasesH.Get)
		v1.GET("/purchases/:id/summary", anyRole, purchasesH.Summary)
		purchases := v1.Group("/purchases", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
		{
			purchases.POST("", purchasesH.Create)
			purchases.PUT("/:id", purchasesH.Update)
			purchases.DELETE("/:id", purchasesH.Delete)
		}

		// Transformations and steps — the kitchen's domain: cook/admin write
		v1.GET("/transformations", anyRole, transformationsH.List)
		v1.GET("/transformations/:id", anyRole, transformationsH.Get)
		v1.GET("/transformations/:id/summary", anyRole, transformationsH.Summary)
		v1.GET("/transformations/:id/steps", anyRole, transformationsH.ListSteps)
		transformations := v1.Group("/transformations", middleware.RequireRole(model.RoleAdmin, model.RoleCook))
		{
			transformations.POST("", transformationsH.Create)
			transformations.PUT("/:id", transformationsH.Update)
			transformations.DELETE("/:id", transformationsH.Delete)
		}

		v1.GET("/transformation-steps", anyRole, stepsH.List)
		v1.GET("/transformation-steps/:id", anyRole, stepsH.Get)
		steps := v1.Group("/transformation-steps", middleware.RequireRole(model.RoleAdmin, model.RoleCook))
		{
			steps.POST("", stepsH.Create)
			steps.PUT("/:id", stepsH.Update)
			steps.DELETE("/:id", stepsH.Delete)
		}

		// Ingredients and products — reads for all, writes for manager/admin
		v1.GET("/ingredients", anyRole, ingredientsH.List)
		v1.GET("/ingredients/:id", anyRole, ingredientsH.Get)
		ingredients := v1.Group("/ingredients", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
		{
			ingredients.POST("", ingredientsH.Create)
			ingredients.PUT("/:id", ingredientsH.Update)
			ingredients.DELETE("/:id", ingredientsH.Delete)
		}

		v1.GET("/products", anyRole, productsH.List)
		v1.GET("/products/:id", anyRole, productsH.Get)
		products := v1.Group("/products", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		// Inventories — movements may be recorded by any role
		v1.GET("/inventories", anyRole, inventoriesH.List)
		v1.GET("/inventories/:id", anyRole, inventoriesH.Get)
		v1.GET("/inventories/:id/summary", anyRole, inventoriesH.Summary)
		v1.GET("/inventories/:id/transactions", anyRole, inventoriesH.Transactions)
		v1.POST("/inventories/transactions", anyRole, inventoriesH.AddTransaction)
		inventories := v1.Group("/inventories", middleware.RequireRole(model.RoleAdmin, model.RoleManager))
		{
			inventories.POST("", inventoriesH.Create)
			inventories.PUT("/:id", inventoriesH.Update)
			inventories.DELETE("/:id", inventoriesH.Delete)
		}

		// Users — admin only, except self-lookup
		v1.GET("/users/me", anyRole, usersH.Me)
		users := v1.Group("/users", middleware.RequireRole(model.RoleAdmin))
		{
			users.GET("", usersH.List)
			users.GET("/:id", usersH.Get)
			users.POST("", usersH.Create)
			users.PUT("/:id", usersH.Update)
			users.DELETE("/:id", usersH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
