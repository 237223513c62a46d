package account

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/crypto/bcrypt"

	"poketrainers/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(store.NewMemStore(), WithCost(bcrypt.MinCost))
}

func mustRegister(t *testing.T, s *Service) *store.User {
	t.Helper()
	u, err := s.Register("ash@gmail.com", "pikachu1", "Ash")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return u
}

func TestIsGmail(t *testing.T) {
	cases := []struct {
		email string
		want  bool
	}{
		{"ash@gmail.com", true},
		{"ash.ketchum+league@gmail.com", true},
		{"ASH_99@gmail.com", true},
		{"ash@yahoo.com", false},
		{"ash@gmail.co", false},
		{"ash@gmail.com.evil", false},
		{"@gmail.com", false},
		{"ash gmail.com", false},
	}
	for _, tc := range cases {
		if got := IsGmail(tc.email); got != tc.want {
			t.Errorf("IsGmail(%q) = %v, want %v", tc.email, got, tc.want)
		}
	}
}

func TestRegister(t *testing.T) {
	s := newTestService(t)
	u := mustRegister(t, s)

	if u.Username != "Ash" || u.Profile.Name != "Ash" || u.Profile.Email != "ash@gmail.com" {
		t.Errorf("unexpected user: %+v", u)
	}
	if u.PasswordHash == "pikachu1" {
		t.Error("password stored in clear text")
	}
}

func TestRegister_Validation(t *testing.T) {
	cases := []struct {
		name, email, password, username string
		want                            error
	}{
		{"missing email", "", "secret1", "ash", ErrMissingFields},
		{"missing password", "ash@gmail.com", "", "ash", ErrMissingFields},
		{"missing username", "ash@gmail.com", "secret1", " ", ErrMissingFields},
		{"not gmail", "ash@pallet.town", "secret1", "ash", ErrInvalidEmail},
		{"short password", "ash@gmail.com", "12345", "ash", ErrWeakPassword},
	}
	s := newTestService(t)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Register(tc.email, tc.password, tc.username)
			if !errors.Is(err, tc.want) {
				t.Errorf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRegister_Duplicate(t *testing.T) {
	s := newTestService(t)
	mustRegister(t, s)
	_, err := s.Register("ash@gmail.com", "another1", "Ash2")
	if !errors.Is(err, store.ErrUserExists) {
		t.Errorf("err = %v, want ErrUserExists", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newTestService(t)
	mustRegister(t, s)

	for _, login := range []string{"ash@gmail.com", "Ash", "ASH", "ash"} {
		u, err := s.Authenticate(login, "pikachu1")
		if err != nil {
			t.Errorf("Authenticate(%q): %v", login, err)
			continue
		}
		if u.Email != "ash@gmail.com" {
			t.Errorf("Authenticate(%q) email = %q", login, u.Email)
		}
	}

	bad := []struct{ login, password string }{
		{"ash@gmail.com", "wrong-pass"},
		{"misty@gmail.com", "pikachu1"},
		{"misty", "pikachu1"},
		{"", "pikachu1"},
		{"ash", ""},
	}
	for _, tc := range bad {
		if _, err := s.Authenticate(tc.login, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Authenticate(%q, %q) err = %v, want ErrInvalidCredentials", tc.login, tc.password, err)
		}
	}
}

func TestUpdateProfile_RenamesUser(t *testing.T) {
	s := newTestService(t)
	mustRegister(t, s)

	u, err := s.UpdateProfile("ash@gmail.com", store.Profile{Name: "Red", Description: "Champion"})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	want := store.Profile{Name: "Red", Email: "ash@gmail.com", Description: "Champion"}
	if diff := cmp.Diff(want, u.Profile); diff != "" {
		t.Errorf("Profile mismatch (-want +got):\n%s", diff)
	}
	if _, err := s.Authenticate("red", "pikachu1"); err != nil {
		t.Errorf("login with new username: %v", err)
	}
	if _, err := s.Authenticate("ash", "pikachu1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("old username still logs in: %v", err)
	}
}

func TestDeck_AddRemoveUndo(t *testing.T) {
	s := newTestService(t)
	mustRegister(t, s)
	const email = "ash@gmail.com"
	undo := &UndoStack{}

	if _, added, err := s.AddToDeck(email, "pikachu", undo); err != nil || !added {
		t.Fatalf("AddToDeck: added=%v err=%v", added, err)
	}
	if _, added, _ := s.AddToDeck(email, "PIKACHU", undo); added {
		t.Error("duplicate add changed the deck")
	}
	u, _, err := s.AddToDeck(email, "mr-mime", undo)
	if err != nil {
		t.Fatalf("AddToDeck: %v", err)
	}
	if diff := cmp.Diff([]string{"Pikachu", "Mr-Mime"}, u.Deck); diff != "" {
		t.Errorf("Deck mismatch (-want +got):\n%s", diff)
	}
	if undo.Len() != 2 {
		t.Errorf("undo depth = %d, want 2", undo.Len())
	}

	name, u, err := s.UndoLastAdd(email, undo)
	if err != nil {
		t.Fatalf("UndoLastAdd: %v", err)
	}
	if name != "Mr-Mime" {
		t.Errorf("undone = %q", name)
	}
	if diff := cmp.Diff([]string{"Pikachu"}, u.Deck); diff != "" {
		t.Errorf("Deck mismatch (-want +got):\n%s", diff)
	}

	// Removing by hand first leaves the undo entry with nothing to do.
	if _, err := s.RemoveFromDeck(email, "Pikachu"); err != nil {
		t.Fatalf("RemoveFromDeck: %v", err)
	}
	if name, _, err := s.UndoLastAdd(email, undo); err != nil || name != "Pikachu" {
		t.Errorf("UndoLastAdd = %q, %v", name, err)
	}
	if _, _, err := s.UndoLastAdd(email, undo); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("err = %v, want ErrNothingToUndo", err)
	}
}

func TestUndoStack_Nil(t *testing.T) {
	var undo *UndoStack
	undo.Push("pikachu")
	if n := undo.Len(); n != 0 {
		t.Errorf("nil Len = %d, want 0", n)
	}
	if name, ok := undo.Pop(); ok {
		t.Errorf("nil Pop = %q, true", name)
	}

	s := newTestService(t)
	mustRegister(t, s)
	if _, added, err := s.AddToDeck("ash@gmail.com", "pikachu", nil); err != nil || !added {
		t.Fatalf("AddToDeck without undo: added=%v err=%v", added, err)
	}
	if _, _, err := s.UndoLastAdd("ash@gmail.com", nil); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("err = %v, want ErrNothingToUndo", err)
	}
}

func TestTeams(t *testing.T) {
	s := newTestService(t)
	mustRegister(t, s)
	const email = "ash@gmail.com"

	if _, err := s.SaveTeam(email, "Kanto", []string{"pikachu", "charizard"}); err != nil {
		t.Fatalf("SaveTeam: %v", err)
	}
	u, err := s.SaveTeam(email, "Alola", []string{"decidueye"})
	if err != nil {
		t.Fatalf("SaveTeam: %v", err)
	}
	want := []store.Team{
		{Name: "Kanto", Members: []string{"Pikachu", "Charizard"}},
		{Name: "Alola", Members: []string{"Decidueye"}},
	}
	if diff := cmp.Diff(want, u.Teams); diff != "" {
		t.Errorf("Teams mismatch (-want +got):\n%s", diff)
	}

	if _, err := s.SaveTeam(email, "Kanto", []string{"snorlax"}); !errors.Is(err, ErrTeamExists) {
		t.Errorf("err = %v, want ErrTeamExists", err)
	}
	if _, err := s.SaveTeam(email, " ", []string{"snorlax"}); !errors.Is(err, ErrEmptyTeamName) {
		t.Errorf("err = %v, want ErrEmptyTeamName", err)
	}
	if _, err := s.SaveTeam(email, "Empty", nil); !errors.Is(err, ErrEmptyTeam) {
		t.Errorf("err = %v, want ErrEmptyTeam", err)
	}

	u, err = s.DeleteTeam(email, "Kanto")
	if err != nil {
		t.Fatalf("DeleteTeam: %v", err)
	}
	if len(u.Teams) != 1 || u.Teams[0].Name != "Alola" {
		t.Errorf("unexpected teams: %+v", u.Teams)
	}
	if _, err := s.DeleteTeam(email, "Kanto"); !errors.Is(err, ErrTeamNotFound) {
		t.Errorf("err = %v, want ErrTeamNotFound", err)
	}
}

func TestHistory(t *testing.T) {
	s := newTestService(t)
	mustRegister(t, s)
	const email = "ash@gmail.com"

	for i := 0; i < MaxHistory+5; i++ {
		if _, err := s.RecordSearch(email, fmt.Sprintf("term-%d", i)); err != nil {
			t.Fatalf("RecordSearch: %v", err)
		}
	}
	u, err := s.RecordSearch(email, "term-54")
	if err != nil {
		t.Fatalf("RecordSearch: %v", err)
	}
	if len(u.History) != MaxHistory {
		t.Fatalf("history length = %d, want %d", len(u.History), MaxHistory)
	}
	if u.History[0] != "term-5" || u.History[MaxHistory-1] != "term-54" {
		t.Errorf("history window = %q .. %q", u.History[0], u.History[MaxHistory-1])
	}

	u, err = s.ClearHistory(email)
	if err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	if len(u.History) != 0 {
		t.Errorf("history not cleared: %v", u.History)
	}
}

func TestUnknownUser(t *testing.T) {
	s := newTestService(t)
	if _, _, err := s.AddToDeck("nobody@gmail.com", "eevee", nil); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
	if _, err := s.SaveTeam("nobody@gmail.com", "A", []string{"eevee"}); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("err = %v, want ErrUserNotFound", err)
	}
}
