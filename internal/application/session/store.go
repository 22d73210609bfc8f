package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/storefront-core/internal/application/dto"
	"github.com/jhoicas/storefront-core/internal/domain"
	"github.com/jhoicas/storefront-core/internal/domain/entity"
	"github.com/jhoicas/storefront-core/internal/domain/repository"
	"github.com/jhoicas/storefront-core/pkg/logger"
	"github.com/jhoicas/storefront-core/pkg/validation"
)

// DefaultKey clave bien conocida del registro de sesión en el almacenamiento local.
const DefaultKey = "user"

// State estado de la sesión.
type State int

const (
	Unauthenticated State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "unauthenticated"
}

// record formato persistido: los campos del usuario más el token opcional.
type record struct {
	entity.User
	Token string `json:"token,omitempty"`
}

// Store mantiene la identidad autenticada y su copia persistida.
// Cada transición se completa solo después de que el almacenamiento respondió.
// Ninguna operación entra en pánico: los fallos vuelven como error con mensaje legible.
type Store struct {
	storage   repository.KeyValueStorage
	backend   AuthBackend
	validator *validation.Validator
	log       *logger.Logger
	key       string

	mu       sync.Mutex
	user     *entity.User
	token    string
	loading  bool
	onLogout []func()
}

// Option configura el Store.
type Option func(*Store)

// WithKey cambia la clave del registro persistido.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithLogger inyecta el logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l.Component("session")
		}
	}
}

// NewStore construye la sesión en estado Unauthenticated y Loading hasta que se llame Load.
func NewStore(storage repository.KeyValueStorage, backend AuthBackend, opts ...Option) *Store {
	s := &Store{
		storage:   storage,
		backend:   backend,
		validator: validation.New(),
		log:       logger.Nop(),
		key:       DefaultKey,
		loading:   true,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load lee el registro persistido. Si existe la sesión pasa a Authenticated.
// Un fallo de lectura o un registro corrupto dejan la sesión en Unauthenticated
// y devuelven un error de almacenamiento.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.user, s.token = nil, ""

	raw, found, err := s.storage.Get(ctx, s.key)
	if err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("leer sesión persistida")
		return fmt.Errorf("cargar sesión: %w", domain.ErrPersistence)
	}
	if !found {
		s.log.Debug().Msg("sin sesión persistida")
		return nil
	}
	var rec record
	if err := json.Unmarshal([]byte(raw), &rec); err != nil || rec.ID == "" {
		if err == nil {
			err = errors.New("registro sin id")
		}
		s.log.Error().Err(err).Str("key", s.key).Msg("registro de sesión corrupto")
		return fmt.Errorf("cargar sesión: %w", domain.ErrPersistence)
	}
	user := rec.User
	s.user, s.token = &user, rec.Token
	s.log.Info().Str("user_id", user.ID).Msg("sesión restaurada")
	return nil
}

// Login valida el formulario, obtiene el usuario del backend y lo persiste.
// Ambos campos son obligatorios; la validación no toca el almacenamiento.
func (s *Store) Login(ctx context.Context, in dto.LoginRequest) (*entity.User, error) {
	in.Normalize()
	if details := s.validator.Struct(in); details != nil {
		return nil, domain.NewValidationError(details)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.backend.Login(ctx, in.Identifier, in.Password)
	if err != nil {
		s.log.Warn().Err(err).Msg("backend rechazó el login")
		return nil, fmt.Errorf("iniciar sesión: %w", err)
	}
	if err := s.establish(ctx, res); err != nil {
		return nil, fmt.Errorf("iniciar sesión: %w", err)
	}
	s.log.Info().Str("user_id", s.user.ID).Msg("sesión iniciada")
	return s.user.Clone(), nil
}

// Register valida el formulario de registro, crea el usuario y lo persiste.
func (s *Store) Register(ctx context.Context, in dto.RegisterRequest) (*entity.User, error) {
	in.Normalize()
	if details := s.validator.Struct(in); details != nil {
		return nil, domain.NewValidationError(details)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.backend.Register(ctx, in)
	if err != nil {
		s.log.Warn().Err(err).Msg("backend rechazó el registro")
		return nil, fmt.Errorf("registrar usuario: %w", err)
	}
	if err := s.establish(ctx, res); err != nil {
		return nil, fmt.Errorf("registrar usuario: %w", err)
	}
	s.log.Info().Str("user_id", s.user.ID).Msg("usuario registrado")
	return s.user.Clone(), nil
}

// Logout borra el registro persistido y vuelve a Unauthenticated; luego avisa a
// los suscriptores de OnLogout. Si el borrado falla el estado no cambia.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	if err := s.storage.Remove(ctx, s.key); err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Str("key", s.key).Msg("borrar sesión persistida")
		return fmt.Errorf("cerrar sesión: %w", domain.ErrPersistence)
	}
	var userID string
	if s.user != nil {
		userID = s.user.ID
	}
	s.user, s.token, s.loading = nil, "", false
	listeners := make([]func(), len(s.onLogout))
	copy(listeners, s.onLogout)
	s.mu.Unlock()

	s.log.Info().Str("user_id", userID).Msg("sesión cerrada")
	for _, fn := range listeners {
		fn()
	}
	return nil
}

// UpdateProfile fusiona los campos indicados en el usuario actual y vuelve a persistirlo.
// Falla con ErrNotAuthenticated si no hay sesión. Sin campos no toca el almacenamiento.
func (s *Store) UpdateProfile(ctx context.Context, upd dto.ProfileUpdate) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, fmt.Errorf("actualizar perfil: %w", domain.ErrNotAuthenticated)
	}
	if upd.IsEmpty() {
		return s.user.Clone(), nil
	}
	merged := s.user.Clone()
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = strings.TrimSpace(*src)
		}
	}
	apply(&merged.Name, upd.Name)
	apply(&merged.Phone, upd.Phone)
	apply(&merged.Email, upd.Email)
	apply(&merged.Address, upd.Address)

	if details := s.validator.Struct(dto.Profile{Name: merged.Name, Phone: merged.Phone, Email: merged.Email}); details != nil {
		return nil, domain.NewValidationError(details)
	}
	if err := s.persist(ctx, merged, s.token); err != nil {
		return nil, fmt.Errorf("actualizar perfil: %w", err)
	}
	s.user = merged
	s.log.Info().Str("user_id", merged.ID).Msg("perfil actualizado")
	return merged.Clone(), nil
}

// OnLogout registra fn para que se ejecute tras cada Logout exitoso.
func (s *Store) OnLogout(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.onLogout = append(s.onLogout, fn)
	s.mu.Unlock()
}

// State devuelve el estado actual de la máquina de sesión.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user != nil {
		return Authenticated
	}
	return Unauthenticated
}

// IsAuthenticated atajo de State() == Authenticated.
func (s *Store) IsAuthenticated() bool { return s.State() == Authenticated }

// Loading es verdadero hasta la primera carga o transición.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// User devuelve una copia del usuario autenticado, o nil.
func (s *Store) User() *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Clone()
}

// Token devuelve el token de sesión emitido por el backend ("" si no hay).
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// establish persiste el resultado del backend y lo vuelve estado actual. Requiere s.mu.
func (s *Store) establish(ctx context.Context, res *AuthResult) error {
	if res == nil || res.User == nil || res.User.ID == "" {
		s.log.Error().Msg("backend devolvió un usuario vacío")
		return errors.New("respuesta vacía del servicio de identidad")
	}
	user := res.User.Clone()
	if err := s.persist(ctx, user, res.Token); err != nil {
		return err
	}
	s.user, s.token, s.loading = user, res.Token, false
	return nil
}

// persist serializa y guarda el registro. Requiere s.mu.
func (s *Store) persist(ctx context.Context, user *entity.User, token string) error {
	raw, err := json.Marshal(record{User: *user, Token: token})
	if err != nil {
		s.log.Error().Err(err).Msg("serializar sesión")
		return domain.ErrPersistence
	}
	if err := s.storage.Set(ctx, s.key, string(raw)); err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("guardar sesión")
		return domain.ErrPersistence
	}
	return nil
}
