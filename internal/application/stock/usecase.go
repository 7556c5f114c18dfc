package stock

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/VihangaTD/ERP-microservices/internal/domain"
	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
	"github.com/VihangaTD/ERP-microservices/internal/domain/repository"
)

// UseCase es el motor transaccional de stock: único escritor legítimo de
// current_stock. Cada mutación aceptada actualiza el producto y agrega una
// entrada al libro de stock dentro de la misma transacción, con bloqueo de
// fila (SELECT FOR UPDATE) para serializar mutaciones del mismo producto.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	logRepo     repository.StockLogRepository
}

// NewUseCase construye el caso de uso. productRepo y logRepo van atados al
// pool (lecturas fuera de transacción); txRunner crea los suyos por tx.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, logRepo repository.StockLogRepository) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, logRepo: logRepo}
}

// MutationInput entrada para aplicar una mutación de stock.
// CompanyID y UserID vienen del contexto de petición ya autenticado.
type MutationInput struct {
	CompanyID  entity.CompanyID
	UserID     string
	ProductID  string
	ChangeType string // increase o decrease
	Quantity   int64  // siempre positivo
	Reason     string
}

// MutationResult resultado de una mutación aceptada.
type MutationResult struct {
	Product       *entity.Product
	PreviousStock int64
	NewStock      int64
}

// ApplyMutation aplica una mutación de stock de forma atómica.
// Valida tipo y cantidad antes de tocar almacenamiento; dentro de la
// transacción bloquea la fila del producto, verifica empresa e invariante de
// stock no negativo, actualiza current_stock y agrega la entrada del libro.
// En cualquier fallo la transacción se descarta completa: ningún efecto visible.
func (uc *UseCase) ApplyMutation(ctx context.Context, in MutationInput) (*MutationResult, error) {
	if in.ChangeType != entity.ChangeTypeIncrease && in.ChangeType != entity.ChangeTypeDecrease {
		return nil, domain.ErrInvalidChangeType
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.CompanyID == "" || in.UserID == "" {
		return nil, domain.ErrInvalidInput
	}

	var result *MutationResult
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error {
		// Bloquea la fila del producto: mutaciones del mismo producto quedan
		// totalmente ordenadas; productos distintos no se frenan entre sí.
		product, err := productRepo.GetByIDForUpdate(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.CompanyID != in.CompanyID {
			return domain.ErrForbidden
		}

		previous := product.CurrentStock
		var newStock int64
		switch in.ChangeType {
		case entity.ChangeTypeIncrease:
			newStock = previous + in.Quantity
		case entity.ChangeTypeDecrease:
			newStock = previous - in.Quantity
			if newStock < 0 {
				return domain.ErrInsufficientStock
			}
		}

		if err := productRepo.UpdateStock(ctx, product.ID, newStock); err != nil {
			return err
		}
		entry := &entity.StockLogEntry{
			ID:            uuid.New().String(),
			ProductID:     product.ID,
			CompanyID:     in.CompanyID,
			ChangeType:    in.ChangeType,
			Quantity:      in.Quantity,
			PreviousStock: previous,
			NewStock:      newStock,
			Reason:        in.Reason,
			PerformedBy:   in.UserID,
			CreatedAt:     time.Now().UTC(),
		}
		if err := logRepo.Create(ctx, entry); err != nil {
			return err
		}

		product.CurrentStock = newStock
		result = &MutationResult{Product: product, PreviousStock: previous, NewStock: newStock}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
