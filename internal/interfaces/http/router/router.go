package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/batchtrack/backend/internal/domain/identity"
	"github.com/batchtrack/backend/internal/infrastructure/auth"
	"github.com/batchtrack/backend/internal/infrastructure/config"
	"github.com/batchtrack/backend/internal/infrastructure/logger"
	"github.com/batchtrack/backend/internal/interfaces/http/dto"
	"github.com/batchtrack/backend/internal/interfaces/http/handler"
	"github.com/batchtrack/backend/internal/interfaces/http/middleware"
)

// Dependencies carries everything the router needs to wire the API
type Dependencies struct {
	Config     *config.Config
	Logger     *zap.Logger
	JWTService *auth.JWTService
	Revocation auth.RevocationList

	System     *handler.SystemHandler
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Intake     *handler.IntakeHandler
	Production *handler.ProductionHandler
	Ingredient *handler.IngredientHandler
	Sku        *handler.SkuHandler
	Plant      *handler.PlantHandler
}

// New builds the gin engine with all middleware and routes wired
func New(deps Dependencies) *gin.Engine {
	if deps.Config.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dto.RegisterValidations()

	engine := gin.New()
	_ = engine.SetTrustedProxies(deps.Config.HTTP.TrustedProxies)

	engine.Use(
		middleware.RequestID(),
		logger.RequestLogger(deps.Logger),
		logger.Recovery(deps.Logger),
		middleware.CORS(middleware.CORSFromHTTPConfig(deps.Config.HTTP)),
	)

	engine.GET("/health", deps.System.Health)

	api := engine.Group("/api/v1")

	// Login and refresh are the only unauthenticated API routes
	api.POST("/auth/login", deps.Auth.Login)
	api.POST("/auth/refresh", deps.Auth.Refresh)

	authed := api.Group("")
	authed.Use(middleware.JWTAuth(middleware.JWTAuthConfig{
		JWTService: deps.JWTService,
		Revocation: deps.Revocation,
		Logger:     deps.Logger,
	}))

	authed.POST("/auth/logout", deps.Auth.Logout)
	authed.GET("/auth/me", deps.Auth.Me)

	users := authed.Group("/users")
	users.Use(middleware.RequireRole(string(identity.RoleAdmin)))
	{
		users.GET("", deps.User.List)
		users.GET("/:id", deps.User.Get)
		users.POST("", deps.User.Create)
		users.PUT("/:id", deps.User.Update)
		users.DELETE("/:id", deps.User.Delete)
	}

	intake := authed.Group("/intake")
	{
		intake.GET("", deps.Intake.List)
		intake.GET("/:id", deps.Intake.Get)
		intake.POST("", deps.Intake.Create)
		intake.PUT("/:id", deps.Intake.Update)
		intake.DELETE("/:id", deps.Intake.Delete)
	}

	production := authed.Group("/production")
	{
		plans := production.Group("/plans")
		plans.GET("", deps.Production.ListPlans)
		plans.GET("/:id", deps.Production.GetPlan)
		plans.GET("/:id/history", deps.Production.PlanHistory)
		plans.POST("", deps.Production.CreatePlan)
		plans.PUT("/:id", deps.Production.UpdatePlan)
		plans.POST("/:id/cancel", deps.Production.CancelPlan)
		plans.DELETE("/:id", deps.Production.DeletePlan)

		batches := production.Group("/batches")
		batches.GET("", deps.Production.ListBatches)
		batches.GET("/:id", deps.Production.GetBatch)
		batches.PUT("/:id", deps.Production.UpdateBatch)

		prebatch := production.Group("/prebatch")
		prebatch.GET("", deps.Production.ListPrebatches)
		prebatch.POST("", deps.Production.CreatePrebatch)
	}

	ingredients := authed.Group("/ingredients")
	{
		ingredients.GET("", deps.Ingredient.List)
		ingredients.GET("/search", deps.Ingredient.Search)
		ingredients.GET("/:id", deps.Ingredient.Get)
		ingredients.POST("", deps.Ingredient.Create)
		ingredients.PUT("/:id", deps.Ingredient.Update)
		ingredients.DELETE("/:id", deps.Ingredient.Delete)
	}

	receipts := authed.Group("/receipts")
	{
		receipts.GET("", deps.Ingredient.ListReceipts)
		receipts.POST("", deps.Ingredient.CreateReceipt)
		receipts.DELETE("/:id", deps.Ingredient.DeleteReceipt)
	}

	skus := authed.Group("/skus")
	{
		skus.GET("", deps.Sku.List)
		skus.POST("", deps.Sku.Create)

		skus.GET("/actions", deps.Sku.ListActions)
		skus.PUT("/actions", deps.Sku.SaveAction)
		skus.DELETE("/actions/:code", deps.Sku.DeleteAction)

		skus.GET("/phases", deps.Sku.ListPhases)
		skus.PUT("/phases", deps.Sku.SavePhase)
		skus.DELETE("/phases/:id", deps.Sku.DeletePhase)

		skus.GET("/destinations", deps.Sku.ListDestinations)
		skus.PUT("/destinations", deps.Sku.SaveDestination)
		skus.DELETE("/destinations/:id", deps.Sku.DeleteDestination)

		skus.GET("/:sku_id", deps.Sku.Get)
		skus.PUT("/:sku_id", deps.Sku.Update)
		skus.DELETE("/:sku_id", deps.Sku.Delete)
	}

	plants := authed.Group("/plants")
	{
		plants.GET("", deps.Plant.List)
		plants.GET("/:plant_id", deps.Plant.Get)
		plants.POST("", deps.Plant.Create)
		plants.PUT("/:plant_id", deps.Plant.Update)
		plants.DELETE("/:plant_id", deps.Plant.Delete)
	}

	return engine
}
