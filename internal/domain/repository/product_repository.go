package repository

import (
	"context"

	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetByIDForUpdate bloquea la fila del producto (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetByCompanyAndSKU(ctx context.Context, companyID entity.CompanyID, sku string) (*entity.Product, error)
	// UpdateStock actualiza únicamente current_stock. Reservado al motor de stock:
	// ningún otro camino escribe esta columna.
	UpdateStock(ctx context.Context, productID string, newStock int64) error
	ListByCompany(ctx context.Context, companyID entity.CompanyID, limit, offset int) ([]*entity.Product, error)
	Deactivate(ctx context.Context, id string) error
}
