package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
	"github.com/VihangaTD/ERP-microservices/internal/domain/repository"
)

var _ repository.StockLogRepository = (*StockLogRepo)(nil)

// StockLogRepo implementación sobre PostgreSQL (usable con pool o tx).
// La tabla stock_logs es solo-append: este adaptador no expone UPDATE ni DELETE.
type StockLogRepo struct {
	q Querier
}

// NewStockLogRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockLogRepository(q Querier) *StockLogRepo {
	return &StockLogRepo{q: q}
}

// Create persiste una entrada del libro de stock.
func (r *StockLogRepo) Create(ctx context.Context, entry *entity.StockLogEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_logs (id, product_id, company_id, change_type, quantity, previous_stock, new_stock, reason, performed_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.CompanyID, entry.ChangeType,
		entry.Quantity, entry.PreviousStock, entry.NewStock,
		entry.Reason, entry.PerformedBy, entry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock log: %w", err)
	}
	return nil
}

// ListByProduct lista las entradas de un producto de la empresa, más reciente
// primero. Servido por el índice (product_id, created_at DESC). id desempata
// timestamps iguales para que el orden sea estable.
func (r *StockLogRepo) ListByProduct(ctx context.Context, companyID entity.CompanyID, productID string, limit int) ([]*entity.StockLogEntry, error) {
	query := `
		SELECT id, product_id, company_id, change_type, quantity, previous_stock, new_stock, reason, performed_by, created_at
		FROM stock_logs
		WHERE company_id = $1 AND product_id = $2
		ORDER BY created_at DESC, id DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, companyID, productID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockLogEntry
	for rows.Next() {
		var e entity.StockLogEntry
		if err := rows.Scan(&e.ID, &e.ProductID, &e.CompanyID, &e.ChangeType,
			&e.Quantity, &e.PreviousStock, &e.NewStock,
			&e.Reason, &e.PerformedBy, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock log: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}
