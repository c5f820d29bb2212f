package test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/restopos/pos-e2e/internal/logger"
	"github.com/restopos/pos-e2e/pkg/api/v1/client"
	"github.com/restopos/pos-e2e/pkg/api/v1/routes"
	"github.com/restopos/pos-e2e/pkg/types"
)

// State is where a Session is in its lifecycle
type State int

// Session states. A session starts unauthenticated, becomes authenticated through
// SetupTestUser or Login, may be refreshed any number of times and ends cleaned up.
const (
	StateUnauthenticated State = iota
	StateAuthenticated
	StateRefreshed
	StateCleanedUp
)

func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	case StateRefreshed:
		return "refreshed"
	case StateCleanedUp:
		return "cleaned up"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrNoRefreshToken is returned by RefreshTokens before any login
var ErrNoRefreshToken = errors.New("session has no refresh token")

// AuthClient is an API client bound to a session. Every request reads the session's access
// token when it is sent.
type AuthClient struct {
	*client.APIClient
}

// SessionOption configures a Session
type SessionOption func(*Session)

// WithRetryPolicy sets the policy applied to rate-limited setup requests
func WithRetryPolicy(p RetryPolicy) SessionOption {
	return func(s *Session) {
		s.retry = p
	}
}

// WithPassword sets the password test users register with
func WithPassword(password string) SessionOption {
	return func(s *Session) {
		s.password = password
	}
}

// Session is the authentication and cleanup state of one test run: the tokens, the user and
// establishment created for it, and every resource tracked for deletion.
type Session struct {
	api     *client.APIClient
	auth    *AuthClient
	tracker *Tracker
	retry   RetryPolicy

	mu            sync.RWMutex
	state         State
	accessToken   string
	refreshToken  string
	password      string
	user          types.User
	establishment types.Establishment
}

// NewSession returns an unauthenticated session on top of an unauthenticated client
func NewSession(api *client.APIClient, opts ...SessionOption) *Session {
	s := &Session{
		api:      api,
		tracker:  NewTracker(),
		retry:    DefaultRetryPolicy(),
		password: TestPassword,
	}
	s.auth = &AuthClient{APIClient: api.WithTokens(s)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Token returns the current access token; it makes the session a client.TokenSource
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// State returns the lifecycle state
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// User returns the user created by SetupTestUser or Login
func (s *Session) User() types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Password returns the password of the session user
func (s *Session) Password() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.password
}

// Establishment returns the establishment created by SetupTestEstablishment
func (s *Session) Establishment() types.Establishment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.establishment
}

// EstablishmentID is a shorthand for Establishment().ID
func (s *Session) EstablishmentID() string {
	return s.Establishment().ID
}

// Client returns the unauthenticated client
func (s *Session) Client() *client.APIClient {
	return s.api
}

// AuthClient returns the client carrying the session's access token
func (s *Session) AuthClient() *AuthClient {
	return s.auth
}

// Tracker returns the resources scheduled for deletion
func (s *Session) Tracker() *Tracker {
	return s.tracker
}

// Track schedules a resource for deletion by Cleanup
func (s *Session) Track(category Category, id string) {
	s.tracker.Track(category, id)
}

// RetryPolicy returns the policy the session applies to rate-limited setup requests
func (s *Session) RetryPolicy() RetryPolicy {
	return s.retry
}

// SetTokens replaces both tokens and marks the session authenticated
func (s *Session) SetTokens(access, refresh string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = access, refresh
	s.state = StateAuthenticated
}

func (s *Session) authenticate(auth types.AuthResponse, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken, s.refreshToken = auth.AccessToken, auth.RefreshToken
	if auth.User.ID != "" {
		s.user = auth.User
	}
	s.state = state
}

// SetupTestUser registers a user with a unique email and the session password. The
// registration is retried while rate limited; if it still does not answer 201 the session
// logs in with the same credentials instead. The user is tracked for deletion.
func (s *Session) SetupTestUser(ctx context.Context) (types.User, error) {
	req := types.RegisterRequest{
		Name:     UniqueName("E2E User"),
		Email:    UniqueEmail(),
		Password: s.Password(),
		Phone:    UniquePhone(),
	}

	resp, err := RetryOnRateLimit(ctx, s.retry, func(ctx context.Context) (*client.Response, error) {
		return s.api.Post(ctx, routes.RegisterURL(), req)
	})
	if err != nil {
		return types.User{}, fmt.Errorf("failed to register test user: %w", err)
	}

	if resp.StatusCode == http.StatusCreated {
		var auth types.AuthResponse
		if err := resp.Decode(&auth); err != nil {
			return types.User{}, fmt.Errorf("failed to decode registration: %w", err)
		}
		s.authenticate(auth, StateAuthenticated)
		s.Track(Users, auth.User.ID)
		logger.Debugf("registered test user %s", auth.User.Email)
		return auth.User, nil
	}

	logger.Debugf("registration answered %d, falling back to login", resp.StatusCode)
	if err := s.Login(ctx, req.Email, req.Password); err != nil {
		return types.User{}, fmt.Errorf("failed to set up test user (register: %s): %w", resp, err)
	}
	user := s.User()
	s.Track(Users, user.ID)
	return user, nil
}

// Login authenticates with existing credentials, retrying while rate limited
func (s *Session) Login(ctx context.Context, email, password string) error {
	resp, err := RetryOnRateLimit(ctx, s.retry, func(ctx context.Context) (*client.Response, error) {
		return s.api.Post(ctx, routes.LoginURL(), types.LoginRequest{Email: email, Password: password})
	})
	if err != nil {
		return fmt.Errorf("failed to log in: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to log in: %w", resp.AsError())
	}

	var auth types.AuthResponse
	if err := resp.Decode(&auth); err != nil {
		return fmt.Errorf("failed to decode login: %w", err)
	}
	s.authenticate(auth, StateAuthenticated)
	s.mu.Lock()
	s.password = password
	s.mu.Unlock()
	return nil
}

// RefreshTokens exchanges the refresh token for a new pair and overwrites both tokens.
// Clients obtained from AuthClient earlier send the new access token from then on.
func (s *Session) RefreshTokens(ctx context.Context) error {
	refresh := s.RefreshToken()
	if refresh == "" {
		return ErrNoRefreshToken
	}
	auth, err := s.api.RefreshToken(ctx, refresh)
	if err != nil {
		return fmt.Errorf("failed to refresh tokens: %w", err)
	}
	s.authenticate(auth, StateRefreshed)
	return nil
}

// SetupTestEstablishment creates an establishment with a unique CNPJ owned by the session user,
// retrying while rate limited, and tracks it for deletion
func (s *Session) SetupTestEstablishment(ctx context.Context) (types.Establishment, error) {
	req := types.CreateEstablishmentRequest{
		Name:    UniqueName("E2E Establishment"),
		CNPJ:    UniqueCNPJ(),
		Email:   UniqueEmail(),
		Phone:   UniquePhone(),
		Address: "Av. Paulista, 1000",
		City:    "Sao Paulo",
		State:   "SP",
	}

	resp, err := RetryOnRateLimit(ctx, s.retry, func(ctx context.Context) (*client.Response, error) {
		return s.auth.Post(ctx, routes.EstablishmentsURL(nil), req)
	})
	if err != nil {
		return types.Establishment{}, fmt.Errorf("failed to create test establishment: %w", err)
	}
	if !resp.IsSuccess() {
		return types.Establishment{}, fmt.Errorf("failed to create test establishment: %w", resp.AsError())
	}

	var est types.Establishment
	if err := resp.Decode(&est); err != nil {
		return types.Establishment{}, fmt.Errorf("failed to decode establishment: %w", err)
	}
	s.mu.Lock()
	s.establishment = est
	s.mu.Unlock()
	s.Track(Establishments, est.ID)
	return est, nil
}

// Cleanup deletes every tracked resource in CleanupOrder. Failures are logged at debug level
// and never stop the traversal. The tracker is empty afterwards.
func (s *Session) Cleanup(ctx context.Context) {
	tracked := s.tracker.Drain()
	for _, item := range tracked {
		path := routes.ResourcePath(string(item.Category), item.ID)
		if err := s.auth.DeleteResource(ctx, path); err != nil {
			if code := client.StatusCode(err); code != 0 {
				logger.Debugf("cleanup of %s answered %d", path, code)
			} else {
				logger.Debugf("cleanup of %s failed: %v", path, err)
			}
		}
	}

	s.mu.Lock()
	s.state = StateCleanedUp
	s.mu.Unlock()
	logger.Debugf("cleaned up %d tracked resources", len(tracked))
}
