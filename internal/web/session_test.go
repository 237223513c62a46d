package web

import (
	"testing"
	"time"
)

// fakeClock is advanced by hand.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func newTestSessions(ttl time.Duration, limit int) (*sessions, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newSessions()
	s.ttl = ttl
	s.max = limit
	s.now = clock.now
	return s, clock
}

func TestSessions_IdleExpiry(t *testing.T) {
	s, clock := newTestSessions(time.Hour, 10)
	tok := s.create("ash@gmail.com")

	clock.t = clock.t.Add(50 * time.Minute)
	if _, ok := s.get(tok); !ok {
		t.Fatal("session expired before its ttl")
	}
	// Use refreshes the idle timer.
	clock.t = clock.t.Add(50 * time.Minute)
	if _, ok := s.get(tok); !ok {
		t.Fatal("session expired although it was used within the ttl")
	}

	clock.t = clock.t.Add(61 * time.Minute)
	if _, ok := s.get(tok); ok {
		t.Error("idle session still valid after ttl")
	}
	if n := s.len(); n != 0 {
		t.Errorf("live sessions = %d, want 0", n)
	}
}

func TestSessions_CreateSweepsIdle(t *testing.T) {
	s, clock := newTestSessions(time.Hour, 10)
	s.create("ash@gmail.com")
	s.create("misty@gmail.com")

	clock.t = clock.t.Add(2 * time.Hour)
	s.create("brock@gmail.com")
	if n := s.len(); n != 1 {
		t.Errorf("live sessions = %d, want 1", n)
	}
}

func TestSessions_CapEvictsLeastRecentlyUsed(t *testing.T) {
	s, clock := newTestSessions(time.Hour, 2)
	first := s.create("ash@gmail.com")
	clock.t = clock.t.Add(time.Minute)
	second := s.create("misty@gmail.com")
	clock.t = clock.t.Add(time.Minute)
	s.get(first)

	clock.t = clock.t.Add(time.Minute)
	third := s.create("brock@gmail.com")

	if n := s.len(); n != 2 {
		t.Fatalf("live sessions = %d, want 2", n)
	}
	if _, ok := s.get(second); ok {
		t.Error("least recently used session survived the cap")
	}
	for _, tok := range []string{first, third} {
		if _, ok := s.get(tok); !ok {
			t.Errorf("session %s evicted, want kept", tok)
		}
	}
}

func TestWithSessionTTL(t *testing.T) {
	s := New(Deps{Lines: testLines}, WithSessionTTL(time.Minute))
	if s.sessions.ttl != time.Minute {
		t.Errorf("ttl = %s, want 1m", s.sessions.ttl)
	}
	s = New(Deps{Lines: testLines}, WithSessionTTL(0))
	if s.sessions.ttl != DefaultSessionTTL {
		t.Errorf("ttl = %s, want default %s", s.sessions.ttl, DefaultSessionTTL)
	}
}
