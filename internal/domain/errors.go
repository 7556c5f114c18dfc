package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidChangeType = errors.New("tipo de cambio de stock inválido")
	ErrDuplicateSKU      = errors.New("el SKU ya existe en esta empresa")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrConflict indica contención transitoria (serialización, deadlock, lock ocupado).
	// Es el único error que el caller puede reintentar de forma automática.
	ErrConflict = errors.New("conflicto transitorio, reintentar")
)
