// Package authmock implementa session.AuthBackend sin servidor: fabrica los
// usuarios en lugar de verificarlos. Cualquier par identificador/contraseña
// no vacío inicia sesión.
package authmock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/application/session"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/pkg/jwt"
)

// Datos del usuario de prueba que devuelve Login.
const (
	DemoUserID      = "1"
	DemoUserName    = "Utilisateur Test"
	DemoUserPhone   = "+227 90 00 00 00"
	DemoUserAddress = "Niamey, Niger"
)

// TokenConfig firma del token de sesión. Secret vacío = sin token.
type TokenConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Backend autenticación simulada.
type Backend struct {
	tokenCfg TokenConfig
	now      func() time.Time
}

// New construye el backend simulado.
func New(tokenCfg TokenConfig) *Backend {
	return &Backend{tokenCfg: tokenCfg, now: time.Now}
}

var _ session.AuthBackend = (*Backend)(nil)

// Login devuelve siempre el usuario de prueba. Un identificador con "@" se toma
// como email; cualquier otro como teléfono.
func (b *Backend) Login(ctx context.Context, identifier, _ string) (*session.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:        DemoUserID,
		Name:      DemoUserName,
		Phone:     DemoUserPhone,
		Address:   DemoUserAddress,
		CreatedAt: b.now(),
	}
	if strings.Contains(identifier, "@") {
		user.Email = identifier
	} else {
		user.Phone = identifier
	}
	return b.result(user)
}

// Register crea el usuario con un ID generado. La contraseña no se guarda en ningún sitio.
func (b *Backend) Register(ctx context.Context, in dto.RegisterRequest) (*session.AuthResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Phone:     in.Phone,
		Email:     in.Email,
		Address:   in.Address,
		CreatedAt: b.now(),
	}
	return b.result(user)
}

func (b *Backend) result(user *entity.User) (*session.AuthResult, error) {
	res := &session.AuthResult{User: user}
	if b.tokenCfg.Secret == "" {
		return res, nil
	}
	tok, err := jwt.Generate(b.tokenCfg.Secret, user.ID, b.tokenCfg.Issuer, b.tokenCfg.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("authmock: firmar token: %w", err)
	}
	res.Token = tok
	return res, nil
}

// VerifyToken comprueba un token emitido por este backend y devuelve su userID y expiración.
func (b *Backend) VerifyToken(token string) (string, time.Time, error) {
	return jwt.Parse(b.tokenCfg.Secret, token)
}
