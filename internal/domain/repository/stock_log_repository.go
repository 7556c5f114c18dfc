package repository

import (
	"context"

	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
)

// StockLogRepository define el puerto de persistencia para el libro de stock.
// Solo inserta y lee: las entradas son inmutables.
type StockLogRepository interface {
	Create(ctx context.Context, entry *entity.StockLogEntry) error
	// ListByProduct devuelve las entradas de un producto de la empresa indicada,
	// más reciente primero, acotadas por limit.
	ListByProduct(ctx context.Context, companyID entity.CompanyID, productID string, limit int) ([]*entity.StockLogEntry, error)
}
