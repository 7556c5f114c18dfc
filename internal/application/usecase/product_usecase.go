package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/VihangaTD/ERP-microservices/internal/application/dto"
	"github.com/VihangaTD/ERP-microservices/internal/application/stock"
	"github.com/VihangaTD/ERP-microservices/internal/domain"
	"github.com/VihangaTD/ERP-microservices/internal/domain/entity"
	"github.com/VihangaTD/ERP-microservices/internal/domain/repository"
)

// ProductUseCase casos de uso de catálogo. CurrentStock solo cambia vía el
// motor de stock; aquí únicamente se fija el stock inicial al crear.
type ProductUseCase struct {
	txRunner    stock.TxRunner
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(txRunner stock.TxRunner, productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{txRunner: txRunner, productRepo: productRepo}
}

// Create crea un producto para la empresa. El SKU se normaliza a mayúsculas y
// debe ser único dentro de la empresa (otra empresa puede reutilizarlo). Si
// InitialStock > 0, el producto y su entrada "initial" del libro se confirman
// en la misma transacción.
func (uc *ProductUseCase) Create(ctx context.Context, companyID entity.CompanyID, userID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if companyID == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	sku := strings.ToUpper(strings.TrimSpace(in.SKU))
	if sku == "" || strings.TrimSpace(in.Name) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.InitialStock < 0 || in.Price.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.productRepo.GetByCompanyAndSKU(ctx, companyID, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}

	now := time.Now().UTC()
	product := &entity.Product{
		ID:           uuid.New().String(),
		CompanyID:    companyID,
		SKU:          sku,
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		CurrentStock: in.InitialStock,
		Category:     in.Category,
		IsActive:     true,
		CreatedBy:    userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// El constraint único (company_id, sku) cubre la carrera entre el chequeo
	// de arriba y el insert: el repo traduce 23505 a ErrDuplicateSKU.
	err = uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		logRepo repository.StockLogRepository,
	) error {
		if err := productRepo.Create(ctx, product); err != nil {
			return err
		}
		if in.InitialStock > 0 {
			entry := &entity.StockLogEntry{
				ID:            uuid.New().String(),
				ProductID:     product.ID,
				CompanyID:     companyID,
				ChangeType:    entity.ChangeTypeInitial,
				Quantity:      in.InitialStock,
				PreviousStock: 0,
				NewStock:      in.InitialStock,
				Reason:        "Initial stock",
				PerformedBy:   userID,
				CreatedAt:     now,
			}
			return logRepo.Create(ctx, entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto de la empresa. Un producto de otra empresa se
// reporta como no encontrado para no filtrar su existencia.
func (uc *ProductUseCase) GetByID(ctx context.Context, companyID entity.CompanyID, id string) (*dto.ProductResponse, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// List lista los productos de la empresa con paginación.
func (uc *ProductUseCase) List(ctx context.Context, companyID entity.CompanyID, limit, offset int) (*dto.ProductListResponse, error) {
	list, err := uc.productRepo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Deactivate desactiva un producto (borrado lógico). La fila y su historial
// quedan intactos.
func (uc *ProductUseCase) Deactivate(ctx context.Context, companyID entity.CompanyID, id string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil || product.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.productRepo.Deactivate(ctx, id)
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:           p.ID,
		CompanyID:    string(p.CompanyID),
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		Price:        p.Price,
		CurrentStock: p.CurrentStock,
		Category:     p.Category,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
