package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VihangaTD/ERP-microservices/internal/application/dto"
	"github.com/VihangaTD/ERP-microservices/internal/application/usecase"
	"github.com/VihangaTD/ERP-microservices/internal/domain"
	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
	"github.com/VihangaTD/ERP-microservices/internal/domain/repository"
)

// Fakes mínimos en memoria: un store compartido, un runner que restaura el
// snapshot ante error (rollback) y repos sin locks propios.

type catalogStore struct {
	mu       sync.Mutex
	products map[string]entity.Product
	logs     []entity.StockLogEntry
}

type catalogTxRunner struct{ store *catalogStore }

func (r *catalogTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	logRepo repository.StockLogRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	products := make(map[string]entity.Product, len(r.store.products))
	for k, v := range r.store.products {
		products[k] = v
	}
	logs := make([]entity.StockLogEntry, len(r.store.logs))
	copy(logs, r.store.logs)
	if err := fn(&catalogProductRepo{store: r.store}, &catalogLogRepo{store: r.store}); err != nil {
		r.store.products = products
		r.store.logs = logs
		return err
	}
	return nil
}

type catalogProductRepo struct{ store *catalogStore }

func (r *catalogProductRepo) Create(_ context.Context, p *entity.Product) error {
	for _, existing := range r.store.products {
		if existing.CompanyID == p.CompanyID && existing.SKU == p.SKU {
			return domain.ErrDuplicateSKU
		}
	}
	r.store.products[p.ID] = *p
	return nil
}

func (r *catalogProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if p, ok := r.store.products[id]; ok {
		cp := p
		return &cp, nil
	}
	return nil, nil
}

func (r *catalogProductRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

func (r *catalogProductRepo) GetByCompanyAndSKU(_ context.Context, companyID entity.CompanyID, sku string) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.CompanyID == companyID && p.SKU == sku {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *catalogProductRepo) UpdateStock(_ context.Context, productID string, newStock int64) error {
	p, ok := r.store.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.CurrentStock = newStock
	r.store.products[productID] = p
	return nil
}

func (r *catalogProductRepo) ListByCompany(_ context.Context, companyID entity.CompanyID, limit, offset int) ([]*entity.Product, error) {
	var list []*entity.Product
	for _, p := range r.store.products {
		if p.CompanyID == companyID {
			cp := p
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *catalogProductRepo) Deactivate(_ context.Context, id string) error {
	p, ok := r.store.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.IsActive = false
	r.store.products[id] = p
	return nil
}

type catalogLogRepo struct{ store *catalogStore }

func (r *catalogLogRepo) Create(_ context.Context, e *entity.StockLogEntry) error {
	r.store.logs = append(r.store.logs, *e)
	return nil
}

func (r *catalogLogRepo) ListByProduct(_ context.Context, companyID entity.CompanyID, productID string, limit int) ([]*entity.StockLogEntry, error) {
	var list []*entity.StockLogEntry
	for i := len(r.store.logs) - 1; i >= 0 && len(list) < limit; i-- {
		e := r.store.logs[i]
		if e.CompanyID == companyID && e.ProductID == productID {
			cp := e
			list = append(list, &cp)
		}
	}
	return list, nil
}

const (
	companyA = entity.CompanyID("company-a")
	companyB = entity.CompanyID("company-b")
	userA    = "user-a"
)

func newCatalogEnv() (*usecase.ProductUseCase, *catalogStore) {
	store := &catalogStore{products: map[string]entity.Product{}}
	uc := usecase.NewProductUseCase(&catalogTxRunner{store: store}, &catalogProductRepo{store: store})
	return uc, store
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

// Crear con stock inicial 10: el producto nace con stock 10 y una única
// entrada "initial" 0→10 con motivo "Initial stock".
func TestCreate_ProductoConStockInicial(t *testing.T) {
	uc, store := newCatalogEnv()

	resp, err := uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU:          "abc-001",
		Name:         "Tornillo 3mm",
		Price:        decimal.NewFromFloat(12.50),
		InitialStock: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, "ABC-001", resp.SKU, "el SKU se normaliza a mayúsculas")
	assert.Equal(t, int64(10), resp.CurrentStock)
	assert.True(t, resp.IsActive)

	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, entity.ChangeTypeInitial, entry.ChangeType)
	assert.Equal(t, int64(0), entry.PreviousStock)
	assert.Equal(t, int64(10), entry.NewStock)
	assert.Equal(t, int64(10), entry.Quantity)
	assert.Equal(t, "Initial stock", entry.Reason)
	assert.Equal(t, userA, entry.PerformedBy)
}

// Sin stock inicial no se genera ninguna entrada del libro.
func TestCreate_SinStockInicialNoGeneraEntrada(t *testing.T) {
	uc, store := newCatalogEnv()

	resp, err := uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU:  "abc-002",
		Name: "Tuerca 3mm",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), resp.CurrentStock)
	assert.Empty(t, store.logs)
}

func TestCreate_SKUDuplicadoMismaEmpresa(t *testing.T) {
	uc, store := newCatalogEnv()

	_, err := uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU: "ABC-001", Name: "Original",
	})
	require.NoError(t, err)

	// Mismo SKU con distinta capitalización: misma clave tras normalizar.
	_, err = uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU: "abc-001", Name: "Duplicado",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)
	assert.Len(t, store.products, 1)
}

// El SKU es único por empresa: otra empresa puede reutilizarlo.
func TestCreate_SKUDuplicadoOtraEmpresaPermitido(t *testing.T) {
	uc, store := newCatalogEnv()

	_, err := uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU: "ABC-001", Name: "De empresa A",
	})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), companyB, userA, dto.CreateProductRequest{
		SKU: "ABC-001", Name: "De empresa B",
	})
	require.NoError(t, err)
	assert.Len(t, store.products, 2)
}

func TestCreate_DatosInvalidos(t *testing.T) {
	uc, _ := newCatalogEnv()

	cases := []struct {
		name string
		in   dto.CreateProductRequest
	}{
		{"sin SKU", dto.CreateProductRequest{Name: "Sin SKU"}},
		{"sin nombre", dto.CreateProductRequest{SKU: "ABC-001"}},
		{"stock inicial negativo", dto.CreateProductRequest{SKU: "ABC-001", Name: "X", InitialStock: -1}},
		{"precio negativo", dto.CreateProductRequest{SKU: "ABC-001", Name: "X", Price: decimal.NewFromInt(-1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Create(context.Background(), companyA, userA, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// GetByID de un producto de otra empresa responde NotFound, no Forbidden:
// no se filtra la existencia de productos ajenos.
func TestGetByID_OtraEmpresaNoEncontrado(t *testing.T) {
	uc, _ := newCatalogEnv()

	resp, err := uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU: "ABC-001", Name: "Privado",
	})
	require.NoError(t, err)

	_, err = uc.GetByID(context.Background(), companyB, resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	got, err := uc.GetByID(context.Background(), companyA, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, got.ID)
}

// Desactivar es borrado lógico: la fila y el historial quedan intactos.
func TestDeactivate_NoBorraElProducto(t *testing.T) {
	uc, store := newCatalogEnv()

	resp, err := uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU: "ABC-001", Name: "A desactivar", InitialStock: 4,
	})
	require.NoError(t, err)

	require.NoError(t, uc.Deactivate(context.Background(), companyA, resp.ID))

	p, ok := store.products[resp.ID]
	require.True(t, ok, "la fila sigue existiendo")
	assert.False(t, p.IsActive)
	assert.Equal(t, int64(4), p.CurrentStock)
	assert.Len(t, store.logs, 1, "el historial no se toca")
}

func TestDeactivate_OtraEmpresaNoEncontrado(t *testing.T) {
	uc, store := newCatalogEnv()

	resp, err := uc.Create(context.Background(), companyA, userA, dto.CreateProductRequest{
		SKU: "ABC-001", Name: "Privado",
	})
	require.NoError(t, err)

	err = uc.Deactivate(context.Background(), companyB, resp.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.True(t, store.products[resp.ID].IsActive)
}
