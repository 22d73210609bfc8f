package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/domain"
)

var errCancelled = errors.New("operación cancelada")

func (s *Shell) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errUsage("login <teléfono|email> <clave>")
	}
	user, err := s.deps.Session.Login(ctx, dto.LoginRequest{Identifier: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	s.printf("✓ Bienvenido, %s.\n", user.Name)
	return nil
}

func (s *Shell) register(ctx context.Context, _ []string) error {
	var in dto.RegisterRequest
	fields := []struct {
		label string
		dst   *string
	}{
		{"Nombre", &in.Name},
		{"Teléfono", &in.Phone},
		{"Email (opcional)", &in.Email},
		{"Dirección (opcional)", &in.Address},
		{"Contraseña", &in.Password},
		{"Confirmar contraseña", &in.ConfirmPassword},
	}
	for _, f := range fields {
		v, ok := s.ask(ctx, f.label)
		if !ok {
			return fmt.Errorf("registrar usuario: %w", errCancelled)
		}
		*f.dst = v
	}
	user, err := s.deps.Session.Register(ctx, in)
	if err != nil {
		return err
	}
	s.printf("✓ Cuenta creada. Bienvenido, %s.\n", user.Name)
	return nil
}

func (s *Shell) logout(ctx context.Context, _ []string) error {
	if err := s.deps.Session.Logout(ctx); err != nil {
		return err
	}
	s.printf("Sesión cerrada.\n")
	return nil
}

func (s *Shell) profile(_ context.Context, _ []string) error {
	u := s.deps.Session.User()
	if u == nil {
		return fmt.Errorf("perfil: %w", domain.ErrNotAuthenticated)
	}
	s.printf("  Nombre:    %s\n", u.Name)
	s.printf("  Teléfono:  %s\n", orDash(u.Phone))
	s.printf("  Email:     %s\n", orDash(u.Email))
	s.printf("  Dirección: %s\n", orDash(u.Address))
	s.printTokenStatus()
	return nil
}

func (s *Shell) printTokenStatus() {
	tok := s.deps.Session.Token()
	if tok == "" || s.deps.Tokens == nil {
		return
	}
	if _, exp, err := s.deps.Tokens.VerifyToken(tok); err != nil {
		s.printf("  Sesión:    token inválido, vuelva a iniciar sesión\n")
	} else {
		s.printf("  Sesión:    válida hasta %s\n", exp.Format("02/01/2006 15:04"))
	}
}

func (s *Shell) updateProfile(ctx context.Context, args []string) error {
	const usage = "update <name|phone|email|address> <valor>"
	if len(args) < 1 {
		return errUsage(usage)
	}
	value := strings.Join(args[1:], " ")
	var upd dto.ProfileUpdate
	switch strings.ToLower(args[0]) {
	case "name":
		upd.Name = &value
	case "phone":
		upd.Phone = &value
	case "email":
		upd.Email = &value
	case "address":
		upd.Address = &value
	default:
		return errUsage(usage)
	}
	if _, err := s.deps.Session.UpdateProfile(ctx, upd); err != nil {
		return err
	}
	s.printf("✓ Perfil actualizado.\n")
	return nil
}

func orDash(v string) string {
	if v == "" {
		return "—"
	}
	return v
}
