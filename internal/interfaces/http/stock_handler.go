package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VihangaTD/ERP-microservices/internal/application/dto"
	"github.com/VihangaTD/ERP-microservices/internal/application/stock"
	"github.com/VihangaTD/ERP-microservices/internal/domain"
	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del motor de stock (protegido).
type StockHandler struct {
	uc *stock.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// UpdateStock godoc
// @Summary      Aplicar una mutación de stock (increase/decrease)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UpdateStockRequest  true  "product_id, change_type, quantity, reason (opcional)"
// @Success      200   {object}  dto.UpdateStockResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/stock/update [post]
func (h *StockHandler) UpdateStock(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	userID := GetUserID(c)
	if companyID == "" || userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	result, err := h.uc.ApplyMutation(c.Context(), stock.MutationInput{
		CompanyID:  entity.CompanyID(companyID),
		UserID:     userID,
		ProductID:  in.ProductID,
		ChangeType: in.ChangeType,
		Quantity:   in.Quantity,
		Reason:     in.Reason,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.UpdateStockResponse{
		ProductID:     result.Product.ID,
		ProductName:   result.Product.Name,
		SKU:           result.Product.SKU,
		PreviousStock: result.PreviousStock,
		NewStock:      result.NewStock,
		Change:        in.Quantity,
		ChangeType:    in.ChangeType,
	})
}

// GetStockHistory godoc
// @Summary      Historial de stock de un producto (más reciente primero)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id     path   string  true   "ID del producto"
// @Param        limit  query  int     false  "Máximo de entradas"  default(50)
// @Success      200  {object}  dto.StockHistoryResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock-history [get]
func (h *StockHandler) GetStockHistory(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("id")
	if productID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	limit := c.QueryInt("limit", 0)

	entries, err := h.uc.GetHistory(c.Context(), entity.CompanyID(companyID), productID, limit)
	if err != nil {
		return stockError(c, err)
	}
	history := make([]dto.StockLogResponse, 0, len(entries))
	for _, e := range entries {
		history = append(history, dto.StockLogResponse{
			ID:            e.ID,
			ProductID:     e.ProductID,
			ChangeType:    e.ChangeType,
			Quantity:      e.Quantity,
			PreviousStock: e.PreviousStock,
			NewStock:      e.NewStock,
			Reason:        e.Reason,
			PerformedBy:   e.PerformedBy,
			CreatedAt:     e.CreatedAt,
		})
	}
	return c.JSON(dto.StockHistoryResponse{Total: len(history), History: history})
}

// stockError traduce errores de dominio del motor de stock a HTTP.
// CONFLICT (contención transitoria) es el único código que el cliente debe
// reintentar; los demás 4xx son fallos de regla de negocio.
func stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidChangeType):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CHANGE_TYPE", Message: "change_type debe ser increase o decrease"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el producto pertenece a otra empresa"})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "contención transitoria, reintentar"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
