package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de una empresa.
// CurrentStock solo lo muta el motor de stock (mutaciones increase/decrease) o
// la creación con stock inicial; invariante: nunca negativo en ningún commit.
// Los productos no se borran físicamente, solo se desactivan.
type Product struct {
	ID           string
	CompanyID    CompanyID
	SKU          string // único por empresa, se guarda en mayúsculas
	Name         string
	Description  string
	Price        decimal.Decimal
	CurrentStock int64
	Category     string
	IsActive     bool
	CreatedBy    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
