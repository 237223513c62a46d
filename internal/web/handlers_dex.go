package web

import (
	"net/http"
	"strconv"

	"poketrainers/internal/dex"
	"poketrainers/internal/display"
)

func (s *Server) handlePokemon(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	sum, err := s.dex.Summary(r.Context(), name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if sess, _, ok := s.sessionFor(r); ok {
		if _, err := s.accounts.RecordSearch(sess.email, sum.DisplayName); err != nil {
			s.logger.WarnContext(r.Context(), "record search failed", "email", sess.email, "error", err)
		}
	}
	writeJSON(w, http.StatusOK, sum)
}

type lineResponse struct {
	Query   string   `json:"query"`
	Line    []string `json:"line"`
	Display string   `json:"display"`
}

func (s *Server) handleEvolution(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	line := s.lines.Resolve(r.Context(), name)
	writeJSON(w, http.StatusOK, lineResponse{Query: name, Line: line, Display: display.Line(line)})
}

type encountersResponse struct {
	Name      string   `json:"name"`
	Locations []string `json:"locations"`
}

func (s *Server) handleEncounters(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	locs, err := s.dex.Encounters(r.Context(), name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if locs == nil {
		locs = []string{}
	}
	writeJSON(w, http.StatusOK, encountersResponse{Name: name, Locations: locs})
}

func (s *Server) handleGeneration(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.PathValue("n"))
	if err != nil || n < 1 {
		writeError(w, http.StatusBadRequest, "generation must be a positive integer")
		return
	}
	rng, err := s.dex.GenerationRange(r.Context(), n)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rng)
}

func (s *Server) handleCatch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	name := q.Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	maxHP, err1 := strconv.Atoi(q.Get("max_hp"))
	hp, err2 := strconv.Atoi(q.Get("hp"))
	if err1 != nil || err2 != nil {
		writeError(w, http.StatusBadRequest, "max_hp and hp must be integers")
		return
	}
	rep, err := s.dex.Catch(r.Context(), name, dex.CatchInput{
		MaxHP:     maxHP,
		CurrentHP: hp,
		Ball:      q.Get("ball"),
		Status:    q.Get("status"),
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleMove(w http.ResponseWriter, r *http.Request) {
	mv, err := s.dex.Move(r.Context(), r.PathValue("name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mv)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	it, err := s.dex.Item(r.Context(), r.PathValue("name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (s *Server) handleAbility(w http.ResponseWriter, r *http.Request) {
	ab, err := s.dex.Ability(r.Context(), r.PathValue("name"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ab)
}
