package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
	"github.com/kailas-cloud/promptlab/internal/domain/prompt/patch"
	"github.com/kailas-cloud/promptlab/internal/metrics"
	collectionuc "github.com/kailas-cloud/promptlab/internal/usecase/collection"
	healthuc "github.com/kailas-cloud/promptlab/internal/usecase/health"
	promptuc "github.com/kailas-cloud/promptlab/internal/usecase/prompt"
)

// maxBodyBytes bounds request bodies: the largest prompt content plus JSON overhead.
const maxBodyBytes = domprompt.MaxContentSize + 16<<10

// ReassignedHeader carries the number of prompts moved by DELETE /collections/{id}.
const ReassignedHeader = "X-Reassigned-Prompts"

// Server serves the promptlab REST API.
type Server struct {
	prompts         *promptuc.Service
	collections     *collectionuc.Service
	health          *healthuc.Service
	metrics         http.Handler
	errorHandlers   []errorHandler
	defaultPageSize int
	maxPageSize     int
}

// NewServer creates an HTTP API server.
func NewServer(
	prompts *promptuc.Service,
	collections *collectionuc.Service,
	health *healthuc.Service,
) *Server {
	return &Server{
		prompts:         prompts,
		collections:     collections,
		health:          health,
		metrics:         promhttp.Handler(),
		errorHandlers:   defaultErrorHandlers,
		defaultPageSize: 20,
		maxPageSize:     100,
	}
}

// WithPagination overrides the default and maximum page sizes.
func (s *Server) WithPagination(defaultSize, maxSize int) *Server {
	if defaultSize > 0 {
		s.defaultPageSize = defaultSize
	}
	if maxSize > 0 {
		s.maxPageSize = maxSize
	}
	return s
}

// WithMetricsHandler replaces the /metrics handler.
func (s *Server) WithMetricsHandler(h http.Handler) *Server {
	if h != nil {
		s.metrics = h
	}
	return s
}

// Routes registers all API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/prompts", func(r chi.Router) {
		r.Get("/", s.ListPrompts)
		r.Post("/", s.CreatePrompt)
		r.Get("/{id}", s.GetPrompt)
		r.Put("/{id}", s.UpdatePrompt)
		r.Patch("/{id}", s.PatchPrompt)
		r.Delete("/{id}", s.DeletePrompt)
	})

	r.Route("/collections", func(r chi.Router) {
		r.Get("/", s.ListCollections)
		r.Post("/", s.CreateCollection)
		r.Get("/{id}", s.GetCollection)
		r.Delete("/{id}", s.DeleteCollection)
		r.Get("/{id}/prompts", s.ListCollectionPrompts)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorCodeBadRequest, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorCodeBadRequest, "method not allowed")
	})
}

// ListPrompts handles GET /prompts.
func (s *Server) ListPrompts(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := s.pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	q := r.URL.Query()
	prompts, err := s.prompts.List(r.Context(), promptuc.Filter{
		CollectionID: q.Get("collection_id"),
		Query:        q.Get("search"),
	})
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, page(promptsToResponse(prompts), promptKey, cursor, limit))
}

// CreatePrompt handles POST /prompts.
func (s *Server) CreatePrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if !s.decodeStrict(w, r, &req) {
		return
	}

	p, err := s.prompts.Create(r.Context(), promptInput(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", "/prompts/"+p.ID())
	writeJSON(w, http.StatusCreated, promptToResponse(p))
}

// GetPrompt handles GET /prompts/{id}.
func (s *Server) GetPrompt(w http.ResponseWriter, r *http.Request) {
	p, err := s.prompts.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, promptToResponse(p))
}

// UpdatePrompt handles PUT /prompts/{id}.
func (s *Server) UpdatePrompt(w http.ResponseWriter, r *http.Request) {
	var req PromptRequest
	if !s.decodeStrict(w, r, &req) {
		return
	}

	p, err := s.prompts.Update(r.Context(), chi.URLParam(r, "id"), promptInput(req))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, promptToResponse(p))
}

// PatchPrompt handles PATCH /prompts/{id}.
func (s *Server) PatchPrompt(w http.ResponseWriter, r *http.Request) {
	var fields map[string]any
	if !s.decode(w, r, &fields, false) {
		return
	}

	pt, err := patch.FromFields(fields)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	p, err := s.prompts.Patch(r.Context(), chi.URLParam(r, "id"), pt)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, promptToResponse(p))
}

// DeletePrompt handles DELETE /prompts/{id}.
func (s *Server) DeletePrompt(w http.ResponseWriter, r *http.Request) {
	if err := s.prompts.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCollections handles GET /collections.
func (s *Server) ListCollections(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := s.pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	cols, err := s.collections.List(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]CollectionResponse, len(cols))
	for i, c := range cols {
		items[i] = collectionToResponse(c)
	}
	writeJSON(w, http.StatusOK, page(items, collectionKey, cursor, limit))
}

// CreateCollection handles POST /collections.
func (s *Server) CreateCollection(w http.ResponseWriter, r *http.Request) {
	var req CollectionRequest
	if !s.decodeStrict(w, r, &req) {
		return
	}

	col, err := s.collections.Create(r.Context(), req.Name, req.Description)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	w.Header().Set("Location", "/collections/"+col.ID())
	writeJSON(w, http.StatusCreated, collectionToResponse(col))
}

// GetCollection handles GET /collections/{id}.
func (s *Server) GetCollection(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	col, err := s.collections.Get(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	prompts, err := s.collections.Prompts(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	resp := collectionToResponse(col)
	count := len(prompts)
	resp.PromptCount = &count
	writeJSON(w, http.StatusOK, resp)
}

// ListCollectionPrompts handles GET /collections/{id}/prompts.
func (s *Server) ListCollectionPrompts(w http.ResponseWriter, r *http.Request) {
	cursor, limit, err := s.pageParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, ErrorCodeValidationFailed, err.Error())
		return
	}

	prompts, err := s.collections.Prompts(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page(promptsToResponse(prompts), promptKey, cursor, limit))
}

// DeleteCollection handles DELETE /collections/{id}.
func (s *Server) DeleteCollection(w http.ResponseWriter, r *http.Request) {
	moved, err := s.collections.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	metrics.ReassignedPromptsTotal.Add(float64(moved))
	w.Header().Set(ReassignedHeader, strconv.Itoa(moved))
	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status:      string(report.Status),
		Checks:      checks,
		Prompts:     report.Prompts,
		Collections: report.Collections,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	s.metrics.ServeHTTP(w, r)
}

func (s *Server) decodeStrict(w http.ResponseWriter, r *http.Request, dst any) bool {
	return s.decode(w, r, dst, true)
}

// decode reads a JSON body into dst. On failure it writes a 400 and returns false.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, dst any, strict bool) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		msg := "invalid request body: " + err.Error()
		if errors.Is(err, io.EOF) {
			msg = "request body is required"
		}
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, msg)
		return false
	}
	if dec.More() {
		writeError(w, http.StatusBadRequest, ErrorCodeBadRequest, "request body must contain a single JSON object")
		return false
	}
	return true
}

func promptInput(req PromptRequest) promptuc.Input {
	return promptuc.Input{
		Title:        req.Title,
		Content:      req.Content,
		Description:  req.Description,
		CollectionID: req.CollectionID,
	}
}

func promptKey(p PromptResponse) string { return p.ID }

func collectionKey(c CollectionResponse) string { return c.ID }
