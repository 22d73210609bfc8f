package domain

import (
	"errors"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation       = errors.New("datos inválidos")
	ErrPersistence      = errors.New("error de almacenamiento")
	ErrNotAuthenticated = errors.New("no hay una sesión activa")
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrEmptyCart        = errors.New("el carrito está vacío")
)

// ValidationError detalla por campo los errores de validación de un formulario.
// errors.Is(err, ErrValidation) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError construye el error a partir de un mapa campo -> mensaje.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// Error devuelve un mensaje legible, con los campos en orden alfabético.
func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
