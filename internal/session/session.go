package session

import (
	"sync"
	"time"

	"golang.org/x/exp/slog"
)

// DefaultTTL is the client-side session window. It is an estimate only:
// the store issues tokens with its own lifetime which the client cannot
// observe, so the window is configurable and nothing here refreshes or
// revokes based on server state.
const DefaultTTL = 24 * time.Hour

// Profile is the denormalized copy of the authenticated user's record.
type Profile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
}

// Session holds the current bearer token, the user profile and the
// client-computed expiration instant.
type Session struct {
	Token     string
	User      Profile
	ExpiresAt time.Time
}

// Store persists a session across process restarts.
type Store interface {
	Load() (*Session, bool, error)
	Save(Session) error
	Clear() error
}

// Manager is the process-wide session holder. It is written only by the
// login and logout flows and read everywhere else.
type Manager struct {
	mu    sync.RWMutex
	clock Clock
	ttl   time.Duration
	store Store
	log   *slog.Logger
	cur   Session
}

func NewManager(store Store, clock Clock, ttl time.Duration, log *slog.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Manager{
		clock: clock,
		ttl:   ttl,
		store: store,
		log:   log,
	}

	if store != nil {
		s, ok, err := store.Load()
		if err != nil {
			log.Warn("failed to load persisted session", "error", err)
		} else if ok {
			m.cur = *s
			log.Debug("session restored", "user", s.User.ID)
		}
	}

	return m
}

// SetUser stores the token and profile and restarts the expiration
// window. Profile fields left empty keep any previously held value.
func (m *Manager) SetUser(p Profile, token string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cur.User = mergeProfile(m.cur.User, p)
	m.cur.Token = token
	m.cur.ExpiresAt = m.clock.Now().Add(m.ttl)

	m.persist()
}

// ResetUser clears the profile, token and expiration.
func (m *Manager) ResetUser() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cur = Session{}

	if m.store != nil {
		if err := m.store.Clear(); err != nil {
			m.log.Warn("failed to clear persisted session", "error", err)
		}
	}
}

// IsTokenValid reports whether a non-empty token is held and the local
// expiration window has not elapsed. This does not verify the token
// against the store.
func (m *Manager) IsTokenValid() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cur.Token != "" && m.clock.Now().Before(m.cur.ExpiresAt)
}

// Current returns a copy of the held session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cur
}

func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cur.Token
}

func (m *Manager) UserID() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.cur.User.ID
}

func (m *Manager) persist() {
	if m.store == nil {
		return
	}
	if err := m.store.Save(m.cur); err != nil {
		m.log.Warn("failed to persist session", "error", err)
	}
}

func mergeProfile(old, next Profile) Profile {
	merged := old
	if next.ID != "" {
		merged.ID = next.ID
	}
	if next.Email != "" {
		merged.Email = next.Email
	}
	if next.Username != "" {
		merged.Username = next.Username
	}
	if next.Name != "" {
		merged.Name = next.Name
	}
	if next.Avatar != "" {
		merged.Avatar = next.Avatar
	}
	return merged
}
