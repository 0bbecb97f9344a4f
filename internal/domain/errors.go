package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// ErrNotFound se usa tanto para recursos inexistentes como para recursos de
// otra organización: desde afuera ambos casos deben ser indistinguibles para
// no filtrar la existencia de datos ajenos.
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrValidation    = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el username ya está registrado")
	ErrIntegrity     = errors.New("inconsistencia de datos en la persistencia")
)
