package cli

import (
	"errors"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/domain"
)

// errUsage uso incorrecto de un comando; el mensaje es la sintaxis esperada.
type errUsage string

func (e errUsage) Error() string { return "uso: " + string(e) }

// errorResponse traduce un error a código + mensaje. El mensaje se muestra tal cual.
func errorResponse(err error) dto.ErrorResponse {
	var usage errUsage
	code := "INTERNAL"
	switch {
	case errors.As(err, &usage):
		code = "USAGE"
	case errors.Is(err, domain.ErrValidation):
		code = "VALIDATION"
	case errors.Is(err, domain.ErrNotAuthenticated):
		code = "UNAUTHORIZED"
	case errors.Is(err, domain.ErrNotFound):
		code = "NOT_FOUND"
	case errors.Is(err, domain.ErrEmptyCart):
		code = "EMPTY_CART"
	case errors.Is(err, domain.ErrPersistence):
		code = "PERSISTENCE"
	}
	return dto.ErrorResponse{Code: code, Message: err.Error()}
}
