package web

import (
	"net/http"

	"poketrainers/internal/store"
)

// userView is a user without its password hash.
type userView struct {
	Email     string        `json:"email"`
	Username  string        `json:"username"`
	Profile   store.Profile `json:"profile"`
	Deck      []string      `json:"deck"`
	Teams     []store.Team  `json:"teams"`
	History   []string      `json:"history"`
	CreatedAt string        `json:"created_at"`
}

func viewOf(u *store.User) userView {
	v := userView{
		Email:     u.Email,
		Username:  u.Username,
		Profile:   u.Profile,
		Deck:      u.Deck,
		Teams:     u.Teams,
		History:   u.History,
		CreatedAt: u.CreatedAt,
	}
	if v.Deck == nil {
		v.Deck = []string{}
	}
	if v.Teams == nil {
		v.Teams = []store.Team{}
	}
	if v.History == nil {
		v.History = []string{}
	}
	return v
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := s.accounts.Register(req.Email, req.Password, req.Username)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, viewOf(u))
}

type loginRequest struct {
	Login    string `json:"login"` // email or username
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := s.accounts.Authenticate(req.Login, req.Password)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	tok := s.sessions.create(u.Email)
	s.logger.InfoContext(r.Context(), "login", "email", u.Email)
	writeJSON(w, http.StatusOK, loginResponse{Token: tok, User: viewOf(u)})
}

func (s *Server) handleLogout(w http.ResponseWriter, _ *http.Request, _ *session, tok string) {
	s.sessions.delete(tok)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	u, err := s.accounts.Get(sess.email)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(u))
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	var p store.Profile
	if err := decode(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := s.accounts.UpdateProfile(sess.email, p)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(u))
}

type deckResponse struct {
	Changed bool     `json:"changed"`
	Name    string   `json:"name,omitempty"`
	Deck    []string `json:"deck"`
}

func (s *Server) handleAddToDeck(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	u, added, err := s.accounts.AddToDeck(sess.email, r.PathValue("name"), sess.undo)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deckResponse{Changed: added, Deck: viewOf(u).Deck})
}

func (s *Server) handleRemoveFromDeck(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	u, err := s.accounts.RemoveFromDeck(sess.email, r.PathValue("name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deckResponse{Changed: true, Deck: viewOf(u).Deck})
}

func (s *Server) handleUndo(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	name, u, err := s.accounts.UndoLastAdd(sess.email, sess.undo)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deckResponse{Changed: true, Name: name, Deck: viewOf(u).Deck})
}

type teamRequest struct {
	Members []string `json:"members"`
}

func (s *Server) handleSaveTeam(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	var req teamRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := s.accounts.SaveTeam(sess.email, r.PathValue("team"), req.Members)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(u).Teams)
}

func (s *Server) handleDeleteTeam(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	u, err := s.accounts.DeleteTeam(sess.email, r.PathValue("team"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(u).Teams)
}

func (s *Server) handleClearHistory(w http.ResponseWriter, r *http.Request, sess *session, _ string) {
	if _, err := s.accounts.ClearHistory(sess.email); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
