package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente")

	// Errores del motor de validación de documentos.
	ErrAlreadyValidated = errors.New("documento ya validado")
	ErrCanceledDocument = errors.New("documento cancelado")
	ErrEmptyDocument    = errors.New("documento sin líneas")

	// Errores del ajuste libre de stock (bootstrap de la ubicación por defecto).
	ErrNoWarehouse = errors.New("no hay bodegas registradas")
	ErrNoLocation  = errors.New("la bodega no tiene ubicaciones")
)
