package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/cinerec/backend/internal/engine"
	"github.com/cinerec/backend/internal/recommend"
)

type Server struct {
	Engine *engine.Engine
	Logger *logrus.Entry
	Router chi.Router
}

func NewServer(eng *engine.Engine, logger *logrus.Entry) *Server {
	s := &Server{
		Engine: eng,
		Logger: logger,
		Router: chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Get("/recommendations", s.handleRecommendations)
		r.Get("/movies", s.handleMovies)
		r.Get("/movie", s.handleMovie)
		r.Get("/status", s.handleStatus)
		r.Post("/reload", s.handleReload)
	})
}

func (s *Server) Start(port string) error {
	s.Logger.Infof("Starting API Server on %s", port)
	return http.ListenAndServe(port, s.Router)
}

// Responses

type ErrorResponse struct {
	Error string `json:"error"`
}

type RecommendationsResponse struct {
	Title   string             `json:"title"`
	Model   string             `json:"model"`
	Results []recommend.Result `json:"results"`
}

type MoviesResponse struct {
	Count  int      `json:"count"`
	Titles []string `json:"titles"`
}

type MovieResponse struct {
	Title     string   `json:"title"`
	Overview  string   `json:"overview"`
	Genres    []string `json:"genres"`
	Keywords  []string `json:"keywords"`
	PosterURL string   `json:"poster_url,omitempty"`
}

type StatusResponse struct {
	Ready bool         `json:"ready"`
	Stats engine.Stats `json:"stats"`
}

// Handlers

func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'title' is required"})
		return
	}

	variant := recommend.Baseline
	if m := r.URL.Query().Get("model"); m != "" {
		variant = recommend.Variant(m)
		if variant != recommend.Baseline && variant != recommend.Hybrid {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Unknown model, expected 'baseline' or 'hybrid'"})
			return
		}
	}

	n := s.Engine.Config.Recommend.DefaultTopN
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'n' must be a positive integer"})
			return
		}
		n = parsed
	}
	if max := s.Engine.Config.Recommend.MaxTopN; n > max {
		n = max
	}

	results, err := s.Engine.Recommend(variant, title, n)
	switch {
	case errors.Is(err, recommend.ErrTitleNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "title not recognized"})
		return
	case errors.Is(err, engine.ErrNotReady):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "corpus not loaded yet"})
		return
	case err != nil:
		s.Logger.WithError(err).Error("Recommendation failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, RecommendationsResponse{
		Title:   title,
		Model:   string(variant),
		Results: results,
	})
}

func (s *Server) handleMovies(w http.ResponseWriter, r *http.Request) {
	titles := s.Engine.Movies()
	writeJSON(w, http.StatusOK, MoviesResponse{Count: len(titles), Titles: titles})
}

func (s *Server) handleMovie(w http.ResponseWriter, r *http.Request) {
	title := r.URL.Query().Get("title")
	if title == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "Query 'title' is required"})
		return
	}

	doc, err := s.Engine.Movie(title)
	switch {
	case errors.Is(err, recommend.ErrTitleNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "title not recognized"})
		return
	case errors.Is(err, engine.ErrNotReady):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: "corpus not loaded yet"})
		return
	}

	resp := MovieResponse{
		Title:    doc.Title,
		Overview: doc.Overview,
		Genres:   doc.GenresParsed,
		Keywords: doc.KeywordsParsed,
	}
	if s.Engine.Posters != nil && s.Engine.Posters.Enabled() {
		url, err := s.Engine.Posters.Lookup(r.Context(), title)
		if err != nil {
			s.Logger.WithError(err).Warn("Poster lookup failed")
		} else {
			resp.PosterURL = url
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	stats, ready := s.Engine.Stats()
	writeJSON(w, http.StatusOK, StatusResponse{Ready: ready, Stats: stats})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Reload(); err != nil {
		s.Logger.WithError(err).Error("Reload failed")
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}
	stats, _ := s.Engine.Stats()
	writeJSON(w, http.StatusOK, map[string]interface{}{"status": "reloaded", "movies": stats.Movies})
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
