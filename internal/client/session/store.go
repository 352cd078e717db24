// Package session holds the authenticated session of one running client:
// the token, the resolved profile and the derived State.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/client/models"
	"github.com/dmitrijs2005/gophauth/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/gophauth/internal/logging"
)

var ErrEmptyToken = errors.New("session: empty token")

type State int

const (
	// StateLoading means a stored token exists but the profile is not
	// resolved yet.
	StateLoading State = iota
	StateUnauthenticated
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateUnauthenticated:
		return "unauthenticated"
	case StateAuthenticated:
		return "authenticated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store is safe for concurrent use. Writes to durable storage finish
// before the in-memory state changes on SetSession, and after it on Clear.
type Store struct {
	repo tokens.Repository
	log  logging.Logger
	now  func() time.Time

	mu      sync.RWMutex
	token   models.AuthToken
	profile *models.UserProfile
	state   State
	since   time.Time
}

func NewStore(repo tokens.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log, now: time.Now, state: StateLoading}
}

// Load reads the stored token. Without one the store becomes
// unauthenticated; otherwise it stays loading until SetSession or Clear.
func (s *Store) Load(ctx context.Context) (models.AuthToken, error) {
	token, err := s.repo.Get(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateUnauthenticated
		s.mu.Unlock()
		return "", fmt.Errorf("load token: %w", err)
	}

	since := s.savedAt(ctx, token)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = nil
	s.since = since
	if token == "" {
		s.state = StateUnauthenticated
	} else {
		s.state = StateLoading
	}
	s.log.Debug(ctx, "session loaded", "state", s.state.String())
	return token, nil
}

// savedAt asks the repository when token was stored. Unknown is the zero
// time.
func (s *Store) savedAt(ctx context.Context, token models.AuthToken) time.Time {
	r, ok := s.repo.(tokens.SavedAtReader)
	if !ok || token == "" {
		return time.Time{}
	}
	at, err := r.SavedAt(ctx)
	if err != nil {
		s.log.Warn(ctx, "read token timestamp", "error", err)
		return time.Time{}
	}
	return at
}

// SetSession persists token and then publishes token and profile. A token
// equal to the one already held is not written again.
func (s *Store) SetSession(ctx context.Context, token models.AuthToken, profile *models.UserProfile) error {
	if token == "" {
		return ErrEmptyToken
	}

	s.mu.RLock()
	held, since := s.token, s.since
	s.mu.RUnlock()

	if token != held {
		if err := s.repo.Save(ctx, token); err != nil {
			return fmt.Errorf("save token: %w", err)
		}
		since = s.now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.profile = profile
	s.since = since
	s.state = StateAuthenticated
	s.log.Debug(ctx, "session established")
	return nil
}

// Clear drops the in-memory session and erases the stored token. The
// in-memory state is cleared even when erasing fails.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.since = time.Time{}
	s.state = StateUnauthenticated
	s.mu.Unlock()

	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	s.log.Debug(ctx, "session cleared")
	return nil
}

func (s *Store) Token() models.AuthToken {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns a copy of the resolved profile, or nil.
func (s *Store) Profile() *models.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}

// SignedInAt reports when the held token was stored. It is zero without a
// session or when the store keeps no timestamp.
func (s *Store) SignedInAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.since
}

// IsAuthenticated reports whether a token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
