package entity

import "time"

// Tipos de cambio de stock.
const (
	ChangeTypeIncrease = "increase"
	ChangeTypeDecrease = "decrease"
	ChangeTypeInitial  = "initial" // solo al crear un producto con stock inicial
)

// StockLogEntry es una entrada inmutable del libro de auditoría de stock.
// Invariantes: Quantity > 0; NewStock = PreviousStock + Quantity para
// increase/initial y PreviousStock - Quantity para decrease. Las entradas de un
// producto, ordenadas por fecha de commit, encadenan exactamente:
// NewStock de una entrada == PreviousStock de la siguiente.
// Una vez confirmada, una entrada jamás se actualiza ni se borra.
type StockLogEntry struct {
	ID            string
	ProductID     string
	CompanyID     CompanyID
	ChangeType    string
	Quantity      int64
	PreviousStock int64
	NewStock      int64
	Reason        string
	PerformedBy   string
	CreatedAt     time.Time
}
