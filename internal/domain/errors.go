package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
	// ErrRemoteUnavailable lo absorbe el store dual; nunca llega al cliente.
	ErrRemoteUnavailable = errors.New("backend remoto no disponible")
	ErrNotConfigured     = errors.New("servicio no configurado")
)
