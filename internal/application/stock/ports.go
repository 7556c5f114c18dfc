package stock

import (
	"context"

	"github.com/VihangaTD/ERP-microservices/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización de stock y la
// entrada del libro se confirmen (o se descarten) como una sola unidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error) error
}
