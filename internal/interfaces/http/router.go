package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VihangaTD/ERP-microservices/internal/application/stock"
	"github.com/VihangaTD/ERP-microservices/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC *usecase.ProductUseCase
	StockUC   *stock.UseCase
	JWTSecret string
	JWTIssuer string
}

// Router registra las rutas de la API. Todas las rutas /api requieren JWT.
func Router(app *fiber.App, deps RouterDeps) {
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.StockUC)

	api := app.Group("/api", AuthMiddleware(deps.JWTSecret, deps.JWTIssuer))

	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	// Antes de /:id para que "stock" no se capture como id.
	products.Post("/stock/update", stockHandler.UpdateStock)
	products.Get("/:id/stock-history", stockHandler.GetStockHistory)
	products.Get("/:id", productHandler.GetByID)
	products.Delete("/:id", productHandler.Deactivate)
}
