package session

import (
	"context"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
)

// AuthResult lo que devuelve un backend de autenticación: el usuario y, si existe, su token.
type AuthResult struct {
	User  *entity.User
	Token string
}

// AuthBackend define el puerto de salida hacia el servicio de identidad.
// La implementación actual es simulada (fabrica usuarios); un adaptador de red
// puede sustituirla sin cambiar la máquina de estados de la sesión.
// Las entradas llegan ya validadas.
type AuthBackend interface {
	Login(ctx context.Context, identifier, password string) (*AuthResult, error)
	Register(ctx context.Context, in dto.RegisterRequest) (*AuthResult, error)
}
