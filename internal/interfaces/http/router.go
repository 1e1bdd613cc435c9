package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/inventorywise/api/internal/application/apikey"
	"github.com/inventorywise/api/internal/application/auth"
	"github.com/inventorywise/api/internal/application/report"
	"github.com/inventorywise/api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	CategoryUC *usecase.CategoryUseCase
	AuthUC     *auth.AuthUseCase
	APIKeyUC   *apikey.UseCase
	ReportUC   *report.StockReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público, con rate limit por IP contra fuerza bruta)
	authLimiter := NewIPRateLimiter(5, 10)
	authGroup := api.Group("/auth", authLimiter.Handler())
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/refresh", authHandler.Refresh)

	// Rutas protegidas: Bearer Token o X-API-Key
	protected := api.Group("/", AuthOrAPIKeyMiddleware(deps.JWTSecret, deps.APIKeyUC))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Patch("/:id", productHandler.AdjustStock)
	products.Delete("/:id", productHandler.Delete)
	products.Get("/:id/inventory", productHandler.GetInventory)

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", categoryHandler.Delete)
	categories.Delete("/", categoryHandler.DeleteAll)

	// API keys (solo con sesión de usuario, no con otra key)
	keys := api.Group("/api-keys", AuthMiddleware(deps.JWTSecret))
	apiKeyHandler := NewAPIKeyHandler(deps.APIKeyUC)
	keys.Post("/", apiKeyHandler.Create)
	keys.Post("/:app_id/regenerate", apiKeyHandler.Regenerate)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/stock", reportHandler.GetStockReport)
	reports.Post("/stock/send", reportHandler.SendStockReport)
}

// AuthOrAPIKeyMiddleware acepta sesión de usuario (Bearer) o credencial de
// máquina (X-API-Key): si viene X-API-Key se valida la key, si no se exige JWT.
func AuthOrAPIKeyMiddleware(jwtSecret string, apiKeyUC *apikey.UseCase) fiber.Handler {
	jwtMW := AuthMiddleware(jwtSecret)
	keyMW := APIKeyMiddleware(apiKeyUC)
	return func(c *fiber.Ctx) error {
		if c.Get(HeaderAPIKey) != "" {
			return keyMW(c)
		}
		return jwtMW(c)
	}
}
