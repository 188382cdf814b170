// Package session holds who is logged in and publishes changes to observers.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/danielolaszy/jiradash/internal/latency"
	"github.com/danielolaszy/jiradash/internal/logging"
	"github.com/danielolaszy/jiradash/internal/observable"
	"github.com/danielolaszy/jiradash/internal/storage"
	"github.com/danielolaszy/jiradash/pkg/models"
	"github.com/jonboulle/clockwork"
)

// CredentialsKey is the storage slot holding the JSON-encoded credentials.
const CredentialsKey = "jira_credentials"

// DefaultLoginDelay is the simulated authentication round trip.
const DefaultLoginDelay = time.Second

// Store is the single source of truth for the authenticated user.
type Store struct {
	storage    storage.Storage
	clock      clockwork.Clock
	loginDelay time.Duration

	// mu is held while a login or logout publishes and persists, so an
	// overlapping call either lands entirely before or entirely after it.
	mu sync.Mutex

	authenticated *observable.Subject[bool]
	user          *observable.Subject[*models.User]
	credentials   *observable.Subject[*models.Credentials]

	restored chan struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock driving the simulated delay.
func WithClock(clock clockwork.Clock) Option {
	return func(s *Store) { s.clock = clock }
}

// WithLoginDelay sets the simulated authentication delay.
func WithLoginDelay(d time.Duration) Option {
	return func(s *Store) { s.loginDelay = d }
}

// NewStore creates a store backed by st and starts restoring any persisted
// session. Restored is closed once that attempt has finished.
func NewStore(ctx context.Context, st storage.Storage, opts ...Option) *Store {
	s := &Store{
		storage:       st,
		clock:         clockwork.NewRealClock(),
		loginDelay:    DefaultLoginDelay,
		authenticated: observable.New(false),
		user:          observable.New[*models.User](nil),
		credentials:   observable.New[*models.Credentials](nil),
		restored:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.restore(ctx)
	return s
}

// Restored is closed when the startup restore has completed, whether or not
// a session was found. Stored credentials are not published while the restore
// is pending: the streams keep their logged-out values until the replayed
// login completes, then change together like any other login.
func (s *Store) Restored() <-chan struct{} {
	return s.restored
}

// Login signs in with creds. Empty fields fail right away with a validation
// error and leave the session untouched. Otherwise the session is replaced
// once the login delay has passed. If ctx ends first Login returns its
// error, but the session is still replaced when the delay elapses.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (*models.User, error) {
	if !creds.Complete() {
		return nil, models.NewValidationError("All fields are required")
	}

	return latency.Resolve(ctx, s.clock, s.loginDelay, func() *models.User {
		return s.completeLogin(creds)
	})
}

func (s *Store) completeLogin(creds models.Credentials) *models.User {
	user := newUser(creds.Email)
	stored := creds

	s.mu.Lock()
	s.authenticated.Next(true)
	s.user.Next(user)
	s.credentials.Next(&stored)
	s.persist(creds)
	s.mu.Unlock()

	logging.Info("mock authentication successful",
		"email", creds.Email,
		"account_id", user.AccountID,
		"token", logging.MaskSensitive(creds.APIToken))

	return user
}

// Logout clears the session and forgets the persisted credentials.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.authenticated.Next(false)
	s.user.Next(nil)
	s.credentials.Next(nil)
	s.clearStored(ctx)
	s.mu.Unlock()

	logging.Info("logged out")
}

// CurrentUser returns the signed-in user, or nil. The value must not be modified.
func (s *Store) CurrentUser() *models.User {
	return s.user.Value()
}

// CurrentCredentials returns the session credentials, or nil.
func (s *Store) CurrentCredentials() *models.Credentials {
	return s.credentials.Value()
}

// IsAuthenticated reports whether a user is signed in.
func (s *Store) IsAuthenticated() bool {
	return s.authenticated.Value()
}

// SubscribeAuthenticated calls fn with the current flag and on every change.
// Callbacks run while a login or logout is in progress and must not call
// Logout themselves.
func (s *Store) SubscribeAuthenticated(fn func(bool)) (unsubscribe func()) {
	return s.authenticated.Subscribe(fn)
}

// SubscribeUser calls fn with the current user and on every change.
func (s *Store) SubscribeUser(fn func(*models.User)) (unsubscribe func()) {
	return s.user.Subscribe(fn)
}

// SubscribeCredentials calls fn with the current credentials and on every change.
func (s *Store) SubscribeCredentials(fn func(*models.Credentials)) (unsubscribe func()) {
	return s.credentials.Subscribe(fn)
}

// AuthHeaders returns the request headers a real client would send for the
// current session, or nil when nobody is signed in.
func (s *Store) AuthHeaders() map[string]string {
	creds := s.CurrentCredentials()
	if creds == nil {
		return nil
	}
	return map[string]string{
		"Authorization": BuildAuthHeader(creds.Email, creds.APIToken),
		"Accept":        "application/json",
		"Content-Type":  "application/json",
	}
}

func (s *Store) persist(creds models.Credentials) {
	raw, err := json.Marshal(creds)
	if err != nil {
		logging.Error("failed to encode credentials", "error", err)
		return
	}
	// The timer goroutine outlives the caller's context, so persist on a fresh one
	if err := s.storage.Set(context.Background(), CredentialsKey, string(raw)); err != nil {
		logging.Error("failed to persist credentials", "error", err)
	}
}

func (s *Store) clearStored(ctx context.Context) {
	if err := s.storage.Remove(ctx, CredentialsKey); err != nil {
		logging.Error("failed to remove stored credentials", "error", err)
	}
}

// restore replays a login with persisted credentials. Unreadable or
// incomplete credentials are removed and the session stays logged out.
func (s *Store) restore(ctx context.Context) {
	raw, err := s.storage.Get(ctx, CredentialsKey)
	if errors.Is(err, storage.ErrNotFound) {
		close(s.restored)
		return
	}
	if err != nil {
		logging.Error("failed to read stored credentials", "error", err)
		close(s.restored)
		return
	}

	var creds *models.Credentials
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		logging.Warn("clearing stored credentials",
			"error", models.NewStorageCorruptionError(CredentialsKey, err))
		s.clearStored(ctx)
		close(s.restored)
		return
	}

	if creds == nil || !creds.Complete() {
		logging.Warn("stored credentials incomplete, clearing")
		s.clearStored(ctx)
		close(s.restored)
		return
	}

	logging.Debug("restoring session from stored credentials", "email", creds.Email)

	done := latency.Schedule(s.clock, s.loginDelay, func() *models.User {
		return s.completeLogin(*creds)
	})
	go func() {
		user := <-done
		logging.Debug("mock auto-login successful", "account_id", user.AccountID)
		close(s.restored)
	}()
}
