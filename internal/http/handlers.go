package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/sankalpcc/pavilion/internal/club"
	"github.com/sankalpcc/pavilion/internal/matches"
	"github.com/sankalpcc/pavilion/internal/playcricket"
)

// respondJSON writes v as the JSON response body.
func respondJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to write response", "error", err)
	}
}

// writeFeedError maps a fixtures/results failure onto the HTTP surface:
// missing credentials are the caller's problem, upstream and transport
// failures are a bad gateway, anything else means the store is unreachable.
func writeFeedError(w http.ResponseWriter, err error) {
	if errors.Is(err, playcricket.ErrNoAPIKey) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var upstream *playcricket.UpstreamError
	var transport *playcricket.TransportError
	if errors.As(err, &upstream) || errors.As(err, &transport) {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
}

// feedOptionsFromRequest parses the limit and season query parameters.
// Absent or unparsable values fall back to the defaults.
func feedOptionsFromRequest(r *http.Request) matches.FeedOptions {
	var opts matches.FeedOptions
	if v := r.URL.Query().Get("limit"); v != "" {
		if limit, err := strconv.Atoi(v); err == nil {
			opts.Limit = limit
		} else {
			log.Warn("Invalid 'limit' parameter provided. Defaulting.", "limit_param", v)
		}
	}
	if v := r.URL.Query().Get("season"); v != "" {
		if season, err := strconv.Atoi(v); err == nil {
			opts.Season = season
		} else {
			log.Warn("Invalid 'season' parameter provided. Defaulting.", "season_param", v)
		}
	}
	return opts
}

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// PreflightHandler answers CORS preflight requests; the headers themselves
// come from the middleware.
func (s *Server) PreflightHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}
}

// TestStoreHandler reports store reachability and the collection list.
func (s *Server) TestStoreHandler() http.HandlerFunc {
	type diagnostics struct {
		Backend          string   `json:"backend"`
		Database         string   `json:"database"`
		DatabaseURL      string   `json:"database_url"`
		DatabaseName     string   `json:"database_name"`
		ConnectionStatus string   `json:"connection_status"`
		Collections      []string `json:"collections"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		resp := diagnostics{
			Backend:          "running",
			Database:         "not available",
			DatabaseURL:      "not set",
			DatabaseName:     "not set",
			ConnectionStatus: "not connected",
			Collections:      []string{},
		}
		if s.Cfg.Turso.PrimaryURL != "" {
			resp.DatabaseURL = "set"
		}
		if s.Cfg.DBName != "" {
			resp.DatabaseName = "set"
		}

		if err := s.Store.Ping(); err != nil {
			log.Error("Store ping failed", "error", err)
			resp.Database = "error: " + err.Error()
			respondJSON(w, resp)
			return
		}
		resp.ConnectionStatus = "connected"

		collections, err := s.Store.Collections()
		if err != nil {
			log.Error("Failed to list collections", "error", err)
			resp.Database = "connected but error: " + err.Error()
			respondJSON(w, resp)
			return
		}
		resp.Database = "connected and working"
		resp.Collections = collections
		respondJSON(w, resp)
	}
}

func (s *Server) ClearStoreHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Info("Received request to clear entire store")
		s.Store.Clear()
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "Store cleared!")
		log.Info("Store cleared successfully")
	}
}

func (s *Server) GetClubConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cfg, err := s.Store.GetConfig()
		if err != nil {
			log.Error("Failed to get club config from store", "error", err)
			http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
			return
		}
		respondJSON(w, cfg)
	}
}

func (s *Server) SaveClubConfigHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var upd club.ConfigUpdate
		if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		cfg, err := s.Store.SaveConfig(upd)
		if err != nil {
			log.Error("Failed to save club config", "error", err)
			http.Error(w, "Store unavailable", http.StatusServiceUnavailable)
			return
		}
		log.Info("Saved club config", "id", cfg.ID)
		respondJSON(w, cfg)
	}
}

func (s *Server) FixturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := s.Matches.Fixtures(feedOptionsFromRequest(r))
		if err != nil {
			log.Error("Failed to load fixtures", "error", err)
			writeFeedError(w, err)
			return
		}
		respondJSON(w, feed)
	}
}

func (s *Server) ResultsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := s.Matches.Results(feedOptionsFromRequest(r))
		if err != nil {
			log.Error("Failed to load results", "error", err)
			writeFeedError(w, err)
			return
		}
		respondJSON(w, feed)
	}
}

// ListPlayersHandler never fails the page: a store error degrades to the
// built-in sample roster, as does an empty store.
func (s *Server) ListPlayersHandler() http.HandlerFunc {
	type response struct {
		Items []club.Player `json:"items"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := s.Store.ListPlayers()
		if err != nil {
			log.Error("Failed to list players, serving samples", "error", err)
			s.Metrics.IncRosterFallback()
			players = club.SamplePlayers()
		}
		if len(players) == 0 {
			players = club.SamplePlayers()
		}
		respondJSON(w, response{Items: players})
	}
}

func (s *Server) AddPlayerHandler() http.HandlerFunc {
	type response struct {
		ID string `json:"id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var p club.Player
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if p.Name == "" || p.Role == "" {
			http.Error(w, "Missing required fields: name, role", http.StatusBadRequest)
			return
		}
		id, err := s.Store.AddPlayer(p)
		if err != nil {
			log.Error("Failed to add player", "error", err)
			http.Error(w, "Failed to add player", http.StatusInternalServerError)
			return
		}
		respondJSON(w, response{ID: id})
	}
}

// ListFoundersHandler degrades to the built-in founders when the store is
// empty, and to an empty list when it errors.
func (s *Server) ListFoundersHandler() http.HandlerFunc {
	type response struct {
		Items []club.Founder `json:"items"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		founders, err := s.Store.ListFounders()
		if err != nil {
			log.Error("Failed to list founders, serving empty list", "error", err)
			s.Metrics.IncRosterFallback()
			respondJSON(w, response{Items: []club.Founder{}})
			return
		}
		if len(founders) == 0 {
			founders = club.SampleFounders()
		}
		respondJSON(w, response{Items: founders})
	}
}

func (s *Server) AddFounderHandler() http.HandlerFunc {
	type response struct {
		ID string `json:"id"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var f club.Founder
		if err := json.NewDecoder(r.Body).Decode(&f); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if f.Name == "" {
			http.Error(w, "Missing required field: name", http.StatusBadRequest)
			return
		}
		id, err := s.Store.AddFounder(f)
		if err != nil {
			log.Error("Failed to add founder", "error", err)
			http.Error(w, "Failed to add founder", http.StatusInternalServerError)
			return
		}
		respondJSON(w, response{ID: id})
	}
}

// NotifyFixturesHandler posts the upcoming fixtures digest to Slack.
func (s *Server) NotifyFixturesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feed, err := s.Matches.Fixtures(feedOptionsFromRequest(r))
		if err != nil {
			log.Error("Failed to load fixtures for digest", "error", err)
			writeFeedError(w, err)
			return
		}
		if err := s.Notifier.SendFixturesDigest(feed, isDryRunFromContext(r)); err != nil {
			log.Error("Failed to send fixtures digest", "error", err)
			http.Error(w, "Failed to send fixtures digest", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("OK"))
	}
}
