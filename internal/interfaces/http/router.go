package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/soulsisters/joyeria-api/internal/application/auth"
	"github.com/soulsisters/joyeria-api/internal/application/usecase"
	"github.com/soulsisters/joyeria-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductUC    *usecase.ProductUseCase
	StatsUC      *usecase.StatsUseCase
	Storage      ImageStore // nil si el almacenamiento de imágenes está deshabilitado
	UploadExpiry int          // segundos de vigencia del destino de subida
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login y restauración de sesión son públicos)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/session", authHandler.Session)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/extend", authHandler.Extend)

	adminOnly := RequireRole(entity.RoleAdmin)
	anyRole := RequireRole(entity.RoleAdmin, entity.RolePOS)

	// Products (protegido; escritura solo admin, venta admin o pos)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Post("/", adminOnly, productHandler.Create)
	products.Post("/bulk", adminOnly, productHandler.BulkImport)
	products.Get("/export", adminOnly, productHandler.Export)
	products.Get("/:id", productHandler.GetByID)
	products.Patch("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)
	products.Post("/:id/sell", anyRole, productHandler.Sell)

	// Stats (protegido, cualquier rol)
	statsHandler := NewStatsHandler(deps.StatsUC)
	protected.Get("/stats", statsHandler.GetStats)

	// Uploads (protegido, solo admin). Se omite si no hay almacenamiento.
	if deps.Storage != nil {
		uploads := protected.Group("/uploads", adminOnly)
		uploadHandler := NewUploadHandler(deps.Storage, deps.UploadExpiry)
		uploads.Post("/", uploadHandler.IssueUpload)
		uploads.Get("/url", uploadHandler.ResolveURL)
	}
}
