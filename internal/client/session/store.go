// Package session is the single source of truth for "who is logged in". The
// Store runs an explicit state machine (Uninitialized → Verifying →
// Authenticated/Unauthenticated) around a persisted bearer token; a token
// found on disk is never trusted until the identity endpoint confirms it.
package session

import (
	"context"
	"errors"

	"github.com/talentumplus/talentum/internal/client/api"
	"github.com/talentumplus/talentum/internal/client/models"
)

type State string

const (
	StateUninitialized   State = "uninitialized"
	StateVerifying       State = "verifying"
	StateAuthenticated   State = "authenticated"
	StateUnauthenticated State = "unauthenticated"
)

// ErrBusy is returned when a session-mutating call is already in flight.
var ErrBusy = errors.New("operation already in progress")

// authAPI is the slice of the HTTP client the store needs.
type authAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, email, password, nombre, rol string) (*api.AuthResponse, error)
	Me(ctx context.Context) (*models.User, error)
}

// tokenStore extends the adapter's read-side view with writes.
type tokenStore interface {
	Token() string
	Save(token string) error
	Clear() error
}

type Store struct {
	tokens  tokenStore
	api     authAPI
	nav     api.Navigator
	state   State
	user    *models.User
	pending bool
}

func NewStore(tokens tokenStore, client authAPI, nav api.Navigator) *Store {
	return &Store{
		tokens: tokens,
		api:    client,
		nav:    nav,
		state:  StateUninitialized,
	}
}

// Init resolves the persisted token into an identity. A missing token goes
// straight to Unauthenticated; any verification failure counts as an invalid
// credential and fails closed.
func (s *Store) Init(ctx context.Context) error {
	if s.tokens.Token() == "" {
		s.state = StateUnauthenticated
		return nil
	}

	s.state = StateVerifying

	user, err := s.api.Me(ctx)
	if err != nil {
		_ = s.tokens.Clear()
		s.user = nil
		s.state = StateUnauthenticated
		return err
	}

	s.user = user
	s.state = StateAuthenticated
	return nil
}

// Login authenticates and establishes the session. On failure the previous
// state is kept and the error is returned for the caller to present.
func (s *Store) Login(ctx context.Context, email, password string) error {
	if s.pending {
		return ErrBusy
	}
	s.pending = true
	defer func() { s.pending = false }()

	res, err := s.api.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.tokens.Save(res.AccessToken); err != nil {
		return err
	}

	s.user = &models.User{Email: res.Email, Nombre: res.Nombre, Rol: res.Rol}
	s.state = StateAuthenticated
	return nil
}

// Register creates an account without establishing a session; the caller
// logs in separately. An empty rol defaults to candidato.
func (s *Store) Register(ctx context.Context, email, password, nombre, rol string) (*api.AuthResponse, error) {
	if s.pending {
		return nil, ErrBusy
	}
	s.pending = true
	defer func() { s.pending = false }()

	if rol == "" {
		rol = models.RoleCandidato
	}
	return s.api.Register(ctx, email, password, nombre, rol)
}

// Logout drops the credential and identity and returns to the login view.
// Idempotent apart from the navigation.
func (s *Store) Logout() error {
	err := s.tokens.Clear()
	s.user = nil
	s.state = StateUnauthenticated
	if s.nav != nil {
		s.nav.Navigate(models.ViewLogin)
	}
	return err
}

// Invalidate is the forced variant of Logout used when the adapter reports
// a dead session; the adapter already cleared the token and navigated.
func (s *Store) Invalidate() {
	s.user = nil
	s.state = StateUnauthenticated
}

func (s *Store) State() State { return s.state }

func (s *Store) User() *models.User { return s.user }

func (s *Store) IsAuthenticated() bool { return s.user != nil }

func (s *Store) IsAdmin() bool {
	return s.user != nil && s.user.Rol == models.RoleAdmin
}

// IsEmpresa treats admin as a superset of company capability.
func (s *Store) IsEmpresa() bool {
	return s.user != nil && (s.user.Rol == models.RoleEmpresa || s.user.Rol == models.RoleAdmin)
}
