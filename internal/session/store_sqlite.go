package session

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// sessionKey is the fixed key the serialized session lives under.
const sessionKey = "session"

// SQLiteStore persists the session in a local key/value table so it
// survives restarts.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.initTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) initTables() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS client_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
	`)
	return err
}

// storedSession is the durable layout: flat profile fields, the token
// and the expiration as epoch millis.
type storedSession struct {
	Token     string `json:"token"`
	ID        string `json:"id"`
	Email     string `json:"email"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	Avatar    string `json:"avatar"`
	ExpiresAt int64  `json:"expires_at"`
}

func (s *SQLiteStore) Load() (*Session, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM client_state WHERE key = ?`, sessionKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read session: %w", err)
	}

	var stored storedSession
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		return nil, false, fmt.Errorf("failed to decode session: %w", err)
	}

	return &Session{
		Token: stored.Token,
		User: Profile{
			ID:       stored.ID,
			Email:    stored.Email,
			Username: stored.Username,
			Name:     stored.Name,
			Avatar:   stored.Avatar,
		},
		ExpiresAt: time.UnixMilli(stored.ExpiresAt),
	}, true, nil
}

func (s *SQLiteStore) Save(session Session) error {
	stored := storedSession{
		Token:     session.Token,
		ID:        session.User.ID,
		Email:     session.User.Email,
		Username:  session.User.Username,
		Name:      session.User.Name,
		Avatar:    session.User.Avatar,
		ExpiresAt: session.ExpiresAt.UnixMilli(),
	}

	value, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO client_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, sessionKey, string(value))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Clear() error {
	if _, err := s.db.Exec(`DELETE FROM client_state WHERE key = ?`, sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
