package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// MemStore implements Store in memory. Values are copied in and out so
// callers never share slices with the store.
type MemStore struct {
	mu    sync.Mutex
	users map[string]*User
	order []string // emails in creation order
}

var _ Store = (*MemStore)(nil)

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{users: make(map[string]*User)}
}

func (s *MemStore) CreateUser(u *User) error {
	if u == nil {
		return errors.New("user is nil")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[u.Email]; ok {
		return fmt.Errorf("create user %s: %w", u.Email, ErrUserExists)
	}
	cp := u.clone()
	if cp.CreatedAt == "" {
		cp.CreatedAt = nowUTC()
	}
	s.users[u.Email] = cp
	s.order = append(s.order, u.Email)
	return nil
}

func (s *MemStore) GetUser(email string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return nil, fmt.Errorf("get user %s: %w", email, ErrUserNotFound)
	}
	return u.clone(), nil
}

func (s *MemStore) GetUserByUsername(username string) (*User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, email := range s.order {
		if u := s.users[email]; strings.EqualFold(u.Username, username) {
			return u.clone(), nil
		}
	}
	return nil, fmt.Errorf("get user %s: %w", username, ErrUserNotFound)
}

func (s *MemStore) UpdateProfile(email, username string, p Profile) error {
	return s.modify(email, "update profile", func(u *User) {
		u.Username = username
		u.Profile = p
	})
}

func (s *MemStore) SaveDeck(email string, deck []string) error {
	return s.modify(email, "save deck", func(u *User) {
		u.Deck = append([]string(nil), deck...)
	})
}

func (s *MemStore) SaveTeams(email string, teams []Team) error {
	return s.modify(email, "save teams", func(u *User) {
		u.Teams = cloneTeams(teams)
	})
}

func (s *MemStore) SaveHistory(email string, history []string) error {
	return s.modify(email, "save history", func(u *User) {
		u.History = append([]string(nil), history...)
	})
}

// Close is a no-op.
func (s *MemStore) Close() error { return nil }

func (s *MemStore) modify(email, op string, fn func(*User)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[email]
	if !ok {
		return fmt.Errorf("%s %s: %w", op, email, ErrUserNotFound)
	}
	fn(u)
	return nil
}
