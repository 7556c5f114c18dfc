package dto

import "time"

// UpdateStockRequest entrada para aplicar una mutación de stock.
type UpdateStockRequest struct {
	ProductID  string `json:"product_id" validate:"required"`
	ChangeType string `json:"change_type" validate:"required,oneof=increase decrease"`
	Quantity   int64  `json:"quantity" validate:"required,gt=0"`
	Reason     string `json:"reason"`
}

// UpdateStockResponse resultado de una mutación aceptada.
type UpdateStockResponse struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	SKU           string `json:"sku"`
	PreviousStock int64  `json:"previous_stock"`
	NewStock      int64  `json:"new_stock"`
	Change        int64  `json:"change"`
	ChangeType    string `json:"change_type"`
}

// StockLogResponse una entrada del historial de stock.
type StockLogResponse struct {
	ID            string    `json:"id"`
	ProductID     string    `json:"product_id"`
	ChangeType    string    `json:"change_type"`
	Quantity      int64     `json:"quantity"`
	PreviousStock int64     `json:"previous_stock"`
	NewStock      int64     `json:"new_stock"`
	Reason        string    `json:"reason,omitempty"`
	PerformedBy   string    `json:"performed_by"`
	CreatedAt     time.Time `json:"created_at"`
}

// StockHistoryResponse historial de un producto, más reciente primero.
type StockHistoryResponse struct {
	Total   int                `json:"total"`
	History []StockLogResponse `json:"history"`
}
