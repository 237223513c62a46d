package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }

// currentSchemaVersion is the target schema version for this build.
const currentSchemaVersion = schemaVersionV1

// SqlStore implements Store with SQLite.
type SqlStore struct {
	db *sql.DB
}

var _ Store = (*SqlStore)(nil)

// Open opens or creates a SQLite DB at path and runs migrations.
// Creates the parent directory (e.g. .poketrainers) if it does not exist.
func Open(path string) (*SqlStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	s := &SqlStore{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SqlStore) migrate() error {
	var tableCount int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableCount)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}

	if tableCount == 0 {
		return s.freshInstall()
	}

	var v int
	err = s.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		// Interrupted fresh install: the DDL is idempotent, so rerun it.
		return s.freshInstall()
	}
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	switch v {
	case currentSchemaVersion:
		return nil
	default:
		return fmt.Errorf("unknown schema version %d", v)
	}
}

// freshInstall creates the schema from scratch in one transaction.
func (s *SqlStore) freshInstall() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(schemaV1); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.Exec("INSERT INTO schema_version(version) VALUES(?)", currentSchemaVersion); err != nil {
		return fmt.Errorf("set schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema tx: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *SqlStore) Close() error {
	return s.db.Close()
}

// CreateUser inserts u. Returns ErrUserExists if the email is taken.
func (s *SqlStore) CreateUser(u *User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	profile, deck, teams, history, err := encodeLists(u)
	if err != nil {
		return err
	}
	createdAt := u.CreatedAt
	if createdAt == "" {
		createdAt = nowUTC()
	}

	res, err := s.db.Exec(
		`INSERT INTO users(email, username, password_hash, profile, deck, teams, history, created_at, updated_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO NOTHING`,
		u.Email, u.Username, u.PasswordHash, profile, deck, teams, history, createdAt, createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("create user %s: %w", u.Email, ErrUserExists)
	}
	return nil
}

const selectUser = `SELECT email, username, password_hash, profile, deck, teams, history, created_at FROM users`

// GetUser returns the user with the given email.
func (s *SqlStore) GetUser(email string) (*User, error) {
	return s.scanUser(s.db.QueryRow(selectUser+" WHERE email = ?", email), email)
}

// GetUserByUsername returns the earliest created user with a matching
// username, ignoring case.
func (s *SqlStore) GetUserByUsername(username string) (*User, error) {
	return s.scanUser(s.db.QueryRow(
		selectUser+" WHERE username = ? COLLATE NOCASE ORDER BY created_at, rowid LIMIT 1", username,
	), username)
}

func (s *SqlStore) scanUser(row *sql.Row, key string) (*User, error) {
	var u User
	var profile, deck, teams, history string
	err := row.Scan(&u.Email, &u.Username, &u.PasswordHash, &profile, &deck, &teams, &history, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get user %s: %w", key, ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if err := json.Unmarshal([]byte(profile), &u.Profile); err != nil {
		return nil, fmt.Errorf("unmarshal profile: %w", err)
	}
	if err := json.Unmarshal([]byte(deck), &u.Deck); err != nil {
		return nil, fmt.Errorf("unmarshal deck: %w", err)
	}
	if err := json.Unmarshal([]byte(teams), &u.Teams); err != nil {
		return nil, fmt.Errorf("unmarshal teams: %w", err)
	}
	if err := json.Unmarshal([]byte(history), &u.History); err != nil {
		return nil, fmt.Errorf("unmarshal history: %w", err)
	}
	return &u, nil
}

// UpdateProfile replaces the profile and username of a user.
func (s *SqlStore) UpdateProfile(email, username string, p Profile) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return s.update(email, "update profile",
		"UPDATE users SET username = ?, profile = ?, updated_at = ? WHERE email = ?",
		username, string(payload), nowUTC(), email)
}

// SaveDeck replaces the deck of a user.
func (s *SqlStore) SaveDeck(email string, deck []string) error {
	return s.saveJSON(email, "deck", nonNil(deck))
}

// SaveTeams replaces the saved teams of a user.
func (s *SqlStore) SaveTeams(email string, teams []Team) error {
	if teams == nil {
		teams = []Team{}
	}
	return s.saveJSON(email, "teams", teams)
}

// SaveHistory replaces the search history of a user.
func (s *SqlStore) SaveHistory(email string, history []string) error {
	return s.saveJSON(email, "history", nonNil(history))
}

// saveJSON writes v into one of the JSON list columns. column is never
// caller-controlled.
func (s *SqlStore) saveJSON(email, column string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", column, err)
	}
	return s.update(email, "save "+column,
		"UPDATE users SET "+column+" = ?, updated_at = ? WHERE email = ?",
		string(payload), nowUTC(), email)
}

func (s *SqlStore) update(email, op, query string, args ...any) error {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return fmt.Errorf("%s %s: %w", op, email, ErrUserNotFound)
	}
	return nil
}

func encodeLists(u *User) (profile, deck, teams, history string, err error) {
	enc := func(name string, v any) string {
		if err != nil {
			return ""
		}
		b, e := json.Marshal(v)
		if e != nil {
			err = fmt.Errorf("marshal %s: %w", name, e)
		}
		return string(b)
	}
	t := u.Teams
	if t == nil {
		t = []Team{}
	}
	profile = enc("profile", u.Profile)
	deck = enc("deck", nonNil(u.Deck))
	teams = enc("teams", t)
	history = enc("history", nonNil(u.History))
	return profile, deck, teams, history, err
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
