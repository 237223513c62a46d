package store

import "errors"

// DefaultDBPath is the default relative path for the SQLite DB.
// Open() creates the parent dir (e.g. .poketrainers).
const DefaultDBPath = ".poketrainers/poketrainers.db"

var (
	// ErrUserExists is returned when creating a user whose email is taken.
	ErrUserExists = errors.New("user already exists")
	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")
)

// Profile is the public part of a trainer account.
type Profile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Team is a named, saved list of species.
type Team struct {
	Name    string   `json:"name"`
	Members []string `json:"members"`
}

// User is a trainer account keyed by email.
type User struct {
	Email        string
	Username     string
	PasswordHash string
	Profile      Profile
	Deck         []string
	Teams        []Team // insertion ordered, names unique
	History      []string
	CreatedAt    string
}

// Store is the persistence facade for trainer accounts.
// Services use only this interface; implementation is SQLite or in-memory.
type Store interface {
	CreateUser(u *User) error
	GetUser(email string) (*User, error)
	// GetUserByUsername matches case-insensitively.
	GetUserByUsername(username string) (*User, error)
	UpdateProfile(email, username string, p Profile) error
	SaveDeck(email string, deck []string) error
	SaveTeams(email string, teams []Team) error
	SaveHistory(email string, history []string) error
	Close() error
}

// clone returns a deep copy of u.
func (u *User) clone() *User {
	cp := *u
	cp.Deck = append([]string(nil), u.Deck...)
	cp.History = append([]string(nil), u.History...)
	cp.Teams = cloneTeams(u.Teams)
	return &cp
}

func cloneTeams(teams []Team) []Team {
	if teams == nil {
		return nil
	}
	out := make([]Team, len(teams))
	for i, t := range teams {
		out[i] = Team{Name: t.Name, Members: append([]string(nil), t.Members...)}
	}
	return out
}
