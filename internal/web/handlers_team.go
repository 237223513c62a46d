package web

import (
	"net/http"
	"strings"

	"poketrainers/internal/advisor"
)

type teamBody struct {
	Team []string `json:"team"`
}

type dedupResponse struct {
	Team    []string `json:"team"`
	Removed []string `json:"removed"`
}

func (s *Server) handleDedup(w http.ResponseWriter, r *http.Request) {
	var req teamBody
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	res := s.dedup.Report(r.Context(), req.Team)
	s.metrics.removed.Add(float64(len(res.Removed)))
	removed := res.Removed
	if removed == nil {
		removed = []string{}
	}
	writeJSON(w, http.StatusOK, dedupResponse{Team: res.Team, Removed: removed})
}

type suggestRequest struct {
	Theme string   `json:"theme"`
	Owned []string `json:"owned"`
}

// handleSuggest builds around the signed-in trainer's deck when no owned
// list is given.
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	var req suggestRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	owned := req.Owned
	if len(owned) == 0 {
		if sess, _, ok := s.sessionFor(r); ok {
			if u, err := s.accounts.Get(sess.email); err == nil {
				owned = u.Deck
			}
		}
	}
	sug := s.advisor.SuggestTeam(r.Context(), req.Theme, owned)
	s.metrics.removed.Add(float64(len(sug.Removed)))
	writeJSON(w, http.StatusOK, sug)
}

type markdownResponse struct {
	Markdown string `json:"markdown"`
}

func (s *Server) handleGuide(w http.ResponseWriter, r *http.Request) {
	topic := strings.TrimSpace(r.URL.Query().Get("topic"))
	if topic == "" {
		writeError(w, http.StatusBadRequest, "topic is required")
		return
	}
	writeJSON(w, http.StatusOK, markdownResponse{Markdown: advisor.StrategyGuide(topic, r.URL.Query().Get("level"))})
}

func (s *Server) handleSynergy(w http.ResponseWriter, r *http.Request) {
	var req teamBody
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, markdownResponse{Markdown: advisor.Synergy(req.Team)})
}

func (s *Server) handleBuild(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, advisor.Build(r.PathValue("name")))
}
