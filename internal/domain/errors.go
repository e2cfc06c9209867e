package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Son los "kinds" que la capa HTTP traduce a códigos de estado.
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Error es el resultado de un fallo atribuible al cliente: lleva el kind (para el código HTTP)
// y el mensaje que se devuelve tal cual en la respuesta. Los fallos del store NO usan este tipo,
// se propagan envueltos con fmt.Errorf y terminan en 500.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

// Unwrap permite errors.Is(err, domain.ErrNotFound) sobre un *Error.
func (e *Error) Unwrap() error { return e.Kind }

// Invalid construye un error de validación (400).
func Invalid(msg string) error { return &Error{Kind: ErrInvalidInput, Msg: msg} }

// NotFound construye un error de recurso inexistente (404).
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Msg: msg} }

// Conflict construye un error de duplicado o estado incompatible (409).
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Msg: msg} }

// Unauthorized construye un error de autenticación (401).
func Unauthorized(msg string) error { return &Error{Kind: ErrUnauthorized, Msg: msg} }

// Forbidden construye un error de autorización (403).
func Forbidden(msg string) error { return &Error{Kind: ErrForbidden, Msg: msg} }

// Message devuelve el mensaje para el cliente si err es un *Error; si no, err.Error().
func Message(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Msg
	}
	return err.Error()
}

// IsNotFound atajo para errors.Is(err, ErrNotFound).
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }
