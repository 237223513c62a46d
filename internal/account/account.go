// Package account implements trainer registration, password login and the
// per-user collections: deck, saved teams and search history.
package account

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"poketrainers/internal/display"
	"poketrainers/internal/store"
)

// DefaultCost is the bcrypt work factor for new passwords.
const DefaultCost = 12

// MinPasswordLength is the shortest accepted password.
const MinPasswordLength = 6

// MaxHistory is the number of distinct search terms kept per user.
const MaxHistory = 50

var (
	ErrMissingFields      = errors.New("email, username and password are required")
	ErrInvalidEmail       = errors.New("email must be a @gmail.com address")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", MinPasswordLength)
	ErrInvalidCredentials = errors.New("invalid email/username or password")
	ErrEmptyTeamName      = errors.New("team name is required")
	ErrEmptyTeam          = errors.New("team has no members")
	ErrTeamExists         = errors.New("team name already used")
	ErrTeamNotFound       = errors.New("team not found")
	ErrNothingToUndo      = errors.New("nothing to undo")
)

var gmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@gmail\.com$`)

// IsGmail reports whether email is a plain @gmail.com address.
func IsGmail(email string) bool {
	return gmailPattern.MatchString(email)
}

// Service applies account rules on top of a store.Store.
type Service struct {
	store  store.Store
	cost   int
	logger *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithCost overrides the bcrypt cost. Values outside bcrypt's range fall
// back to DefaultCost.
func WithCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

// WithLogger configures structured logging.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// NewService returns a Service persisting to st.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{store: st, cost: DefaultCost}
	for _, opt := range opts {
		opt(s)
	}
	if s.cost < bcrypt.MinCost || s.cost > bcrypt.MaxCost {
		s.cost = DefaultCost
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Register creates an account. The profile starts with the username as its
// display name.
func (s *Service) Register(email, password, username string) (*store.User, error) {
	email = strings.TrimSpace(email)
	username = strings.TrimSpace(username)
	if email == "" || password == "" || username == "" {
		return nil, ErrMissingFields
	}
	if !IsGmail(email) {
		return nil, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return nil, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &store.User{
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		Profile:      store.Profile{Name: username, Email: email},
		Deck:         []string{},
		Teams:        []store.Team{},
		History:      []string{},
	}
	if err := s.store.CreateUser(u); err != nil {
		return nil, err
	}
	s.logger.Info("registered user", "email", email)
	return s.store.GetUser(email)
}

// Authenticate checks a password. A login containing "@" is an email;
// anything else is looked up as a username, ignoring case.
func (s *Service) Authenticate(login, password string) (*store.User, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	var u *store.User
	var err error
	if strings.Contains(login, "@") {
		u, err = s.store.GetUser(login)
	} else {
		u, err = s.store.GetUserByUsername(login)
	}
	if errors.Is(err, store.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		s.logger.Debug("password mismatch", "email", u.Email)
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// Get returns the account for email.
func (s *Service) Get(email string) (*store.User, error) {
	return s.store.GetUser(email)
}

// UpdateProfile replaces the profile. Empty fields keep their current value
// and the username follows the profile name.
func (s *Service) UpdateProfile(email string, p store.Profile) (*store.User, error) {
	u, err := s.store.GetUser(email)
	if err != nil {
		return nil, err
	}
	merged := u.Profile
	if v := strings.TrimSpace(p.Name); v != "" {
		merged.Name = v
	}
	if v := strings.TrimSpace(p.Email); v != "" {
		merged.Email = v
	}
	if p.Description != "" {
		merged.Description = p.Description
	}
	if err := s.store.UpdateProfile(email, merged.Name, merged); err != nil {
		return nil, err
	}
	return s.store.GetUser(email)
}

// AddToDeck appends a species to the deck under its display name. It
// reports whether the deck changed; added names are pushed onto undo.
func (s *Service) AddToDeck(email, species string, undo *UndoStack) (*store.User, bool, error) {
	name := display.Name(species)
	if name == "" {
		return nil, false, fmt.Errorf("add to deck: empty species name")
	}
	u, err := s.store.GetUser(email)
	if err != nil {
		return nil, false, err
	}
	if slices.Contains(u.Deck, name) {
		return u, false, nil
	}
	u.Deck = append(u.Deck, name)
	if err := s.store.SaveDeck(email, u.Deck); err != nil {
		return nil, false, err
	}
	undo.Push(name)
	return u, true, nil
}

// RemoveFromDeck deletes a species from the deck. Removing an absent name
// is not an error.
func (s *Service) RemoveFromDeck(email, species string) (*store.User, error) {
	u, err := s.store.GetUser(email)
	if err != nil {
		return nil, err
	}
	name := display.Name(species)
	i := slices.Index(u.Deck, name)
	if i < 0 {
		return u, nil
	}
	u.Deck = slices.Delete(u.Deck, i, i+1)
	if err := s.store.SaveDeck(email, u.Deck); err != nil {
		return nil, err
	}
	return u, nil
}

// UndoLastAdd pops the most recent addition and removes it from the deck
// if it is still there. It returns the popped name.
func (s *Service) UndoLastAdd(email string, undo *UndoStack) (string, *store.User, error) {
	name, ok := undo.Pop()
	if !ok {
		return "", nil, ErrNothingToUndo
	}
	u, err := s.RemoveFromDeck(email, name)
	if err != nil {
		return "", nil, err
	}
	return name, u, nil
}

// SaveTeam stores members under a new team name.
func (s *Service) SaveTeam(email, teamName string, members []string) (*store.User, error) {
	teamName = strings.TrimSpace(teamName)
	if teamName == "" {
		return nil, ErrEmptyTeamName
	}
	if len(members) == 0 {
		return nil, ErrEmptyTeam
	}
	u, err := s.store.GetUser(email)
	if err != nil {
		return nil, err
	}
	if teamIndex(u.Teams, teamName) >= 0 {
		return nil, fmt.Errorf("save team %q: %w", teamName, ErrTeamExists)
	}
	u.Teams = append(u.Teams, store.Team{Name: teamName, Members: display.Names(members)})
	if err := s.store.SaveTeams(email, u.Teams); err != nil {
		return nil, err
	}
	return u, nil
}

// DeleteTeam removes a saved team by name.
func (s *Service) DeleteTeam(email, teamName string) (*store.User, error) {
	u, err := s.store.GetUser(email)
	if err != nil {
		return nil, err
	}
	i := teamIndex(u.Teams, strings.TrimSpace(teamName))
	if i < 0 {
		return nil, fmt.Errorf("delete team %q: %w", teamName, ErrTeamNotFound)
	}
	u.Teams = slices.Delete(u.Teams, i, i+1)
	if err := s.store.SaveTeams(email, u.Teams); err != nil {
		return nil, err
	}
	return u, nil
}

// RecordSearch appends a search term unless it was searched before. Only the
// MaxHistory most recent terms are kept.
func (s *Service) RecordSearch(email, term string) (*store.User, error) {
	term = strings.TrimSpace(term)
	u, err := s.store.GetUser(email)
	if err != nil {
		return nil, err
	}
	if term == "" || slices.Contains(u.History, term) {
		return u, nil
	}
	u.History = append(u.History, term)
	if n := len(u.History); n > MaxHistory {
		u.History = slices.Clone(u.History[n-MaxHistory:])
	}
	if err := s.store.SaveHistory(email, u.History); err != nil {
		return nil, err
	}
	return u, nil
}

// ClearHistory empties the search history.
func (s *Service) ClearHistory(email string) (*store.User, error) {
	if err := s.store.SaveHistory(email, []string{}); err != nil {
		return nil, err
	}
	return s.store.GetUser(email)
}

func teamIndex(teams []store.Team, name string) int {
	return slices.IndexFunc(teams, func(t store.Team) bool { return t.Name == name })
}
