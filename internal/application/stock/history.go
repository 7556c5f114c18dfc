package stock

import (
	"context"

	"github.com/VihangaTD/ERP-microservices/internal/domain"
	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
)

// Límites del historial: el default replica el comportamiento del servicio
// original (50 entradas); el tope evita respuestas sin cota.
const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// GetHistory devuelve el historial de stock del producto, más reciente primero,
// acotado por limit (default 50, máximo 200). Producto inexistente devuelve
// ErrNotFound y producto de otra empresa ErrForbidden; un producto que existe
// pero no tiene movimientos devuelve slice vacío. Lectura pura: no participa
// del bloqueo de filas del motor de stock.
func (uc *UseCase) GetHistory(ctx context.Context, companyID entity.CompanyID, productID string, limit int) ([]*entity.StockLogEntry, error) {
	if productID == "" || companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	entries, err := uc.logRepo.ListByProduct(ctx, companyID, productID, limit)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*entity.StockLogEntry{}
	}
	return entries, nil
}
