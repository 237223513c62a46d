package web

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"poketrainers/internal/account"
)

// DefaultSessionTTL is how long an unused session token stays valid.
const DefaultSessionTTL = 24 * time.Hour

// maxSessions caps live tokens; the least recently used is evicted first.
const maxSessions = 10000

// session is one signed-in client. The undo stack lives as long as the
// token does.
type session struct {
	email    string
	undo     *account.UndoStack
	lastSeen time.Time
}

type sessions struct {
	mu    sync.Mutex
	byTok map[string]*session
	ttl   time.Duration
	max   int
	now   func() time.Time
}

func newSessions() *sessions {
	return &sessions{
		byTok: make(map[string]*session),
		ttl:   DefaultSessionTTL,
		max:   maxSessions,
		now:   time.Now,
	}
}

func (s *sessions) create(email string) string {
	tok := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweep(now)
	for s.max > 0 && len(s.byTok) >= s.max {
		s.evictOldest()
	}
	s.byTok[tok] = &session{email: email, undo: &account.UndoStack{}, lastSeen: now}
	return tok
}

// get returns a live session and marks it used. Idle sessions are dropped.
func (s *sessions) get(tok string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.byTok[tok]
	if !ok {
		return nil, false
	}
	now := s.now()
	if s.expired(sess, now) {
		delete(s.byTok, tok)
		return nil, false
	}
	sess.lastSeen = now
	return sess, true
}

func (s *sessions) delete(tok string) {
	s.mu.Lock()
	delete(s.byTok, tok)
	s.mu.Unlock()
}

func (s *sessions) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byTok)
}

func (s *sessions) expired(sess *session, now time.Time) bool {
	return now.Sub(sess.lastSeen) > s.ttl
}

// sweep drops idle sessions. Callers hold mu.
func (s *sessions) sweep(now time.Time) {
	for tok, sess := range s.byTok {
		if s.expired(sess, now) {
			delete(s.byTok, tok)
		}
	}
}

// evictOldest drops the least recently used session. Callers hold mu.
func (s *sessions) evictOldest() {
	var oldest string
	var seen time.Time
	for tok, sess := range s.byTok {
		if oldest == "" || sess.lastSeen.Before(seen) {
			oldest, seen = tok, sess.lastSeen
		}
	}
	delete(s.byTok, oldest)
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	tok, ok := strings.CutPrefix(h, "Bearer ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(tok)
}

// sessionFor returns the caller's session, if any.
func (s *Server) sessionFor(r *http.Request) (*session, string, bool) {
	tok := bearerToken(r)
	if tok == "" {
		return nil, "", false
	}
	sess, ok := s.sessions.get(tok)
	return sess, tok, ok
}

type authedHandler func(w http.ResponseWriter, r *http.Request, sess *session, tok string)

// authed rejects requests without a live session with 401.
func (s *Server) authed(h authedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, tok, ok := s.sessionFor(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "login required")
			return
		}
		h(w, r, sess, tok)
	}
}
