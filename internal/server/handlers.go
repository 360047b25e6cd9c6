package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Davidi18/wordpress-mcp/internal/content"
	"github.com/Davidi18/wordpress-mcp/internal/mcpserver"
	"github.com/Davidi18/wordpress-mcp/internal/tenant"
	"github.com/Davidi18/wordpress-mcp/internal/wordpress"
)

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err.Error())
	}
}

type errorBody struct {
	Error string `json:"error"`
}

// writeError maps resolution and upstream failures onto HTTP statuses.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	AddError(r.Context(), err)

	var nf *tenant.NotFoundError
	if errors.As(err, &nf) {
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: nf.Error()})
		return
	}
	var ue *wordpress.UpstreamError
	if errors.As(err, &ue) {
		status := http.StatusBadGateway
		if ue.StatusCode >= 400 && ue.StatusCode < 500 {
			status = ue.StatusCode
		}
		s.writeJSON(w, status, errorBody{Error: ue.Error()})
		return
	}
	s.writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}

// handleHealth reports liveness plus the visible client count and source.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	records := s.resolver.Known(r.Context())
	source := "env"
	if len(records) > 0 && records[0].Source == tenant.SourceDatabase {
		source = "database"
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"clients": len(records),
		"source":  source,
	})
}

// handleClients lists configured clients without credentials.
func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, mcpserver.ClientSummaries(s.resolver.Known(r.Context())))
}

// handleFind runs the content resolution cascade from query parameters.
func (s *Server) handleFind(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	id, _ := strconv.Atoi(q.Get("id"))
	loc := content.Locator{
		ID:     id,
		Slug:   q.Get("slug"),
		URL:    q.Get("url"),
		Search: q.Get("search"),
	}
	if loc.Empty() {
		s.writeJSON(w, http.StatusBadRequest,
			errorBody{Error: "at least one of id, slug, url, or search is required"})
		return
	}

	wp, err := s.clientFor(r, q.Get("client"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	resolver := content.NewResolver(wp, s.logger)
	s.writeJSON(w, http.StatusOK, resolver.Find(r.Context(), loc))
}

// handleSiteData returns site settings plus special pages in one call.
func (s *Server) handleSiteData(w http.ResponseWriter, r *http.Request) {
	wp, err := s.clientFor(r, r.URL.Query().Get("client"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	data, err := mcpserver.CollectSiteData(r.Context(), wp)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, data)
}

func (s *Server) clientFor(r *http.Request, identifier string) (*wordpress.Client, error) {
	rec, err := s.resolver.Resolve(r.Context(), identifier)
	if err != nil {
		return nil, err
	}
	AddLogField(r.Context(), "client", rec.Label())
	return wordpress.New(rec)
}
