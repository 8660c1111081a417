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
	ErrConflict           = errors.New("conflicto con el estado actual")
	// ErrUnscoped: no se pudo resolver la empresa del usuario; ninguna escritura
	// puede proceder sin scope (precondición dura).
	ErrUnscoped = errors.New("empresa del usuario no resuelta")
	// ErrNoValidWagons: el texto de entrada no contiene ningún número de vagón válido.
	ErrNoValidWagons = errors.New("sin números de vagón válidos")
)
