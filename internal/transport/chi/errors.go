package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/kailas-cloud/promptlab/internal/domain"
	"github.com/kailas-cloud/promptlab/internal/logger"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// defaultErrorHandlers maps domain sentinels to HTTP responses. Order matters:
// the specific not-found sentinels come before anything more general.
var defaultErrorHandlers = []errorHandler{
	sentinelHandler(domain.ErrPromptNotFound, http.StatusNotFound, ErrorCodePromptNotFound),
	sentinelHandler(domain.ErrCollectionNotFound, http.StatusNotFound, ErrorCodeCollectionNotFound),
	sentinelHandler(domain.ErrInvalidPrompt, http.StatusBadRequest, ErrorCodeValidationFailed),
	sentinelHandler(domain.ErrInvalidCollection, http.StatusBadRequest, ErrorCodeValidationFailed),
	sentinelHandler(domain.ErrInvalidPatch, http.StatusBadRequest, ErrorCodeValidationFailed),
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
// Validation errors carry a client-safe message; not-found errors are reduced to the sentinel text.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		msg := sentinel.Error()
		if status == http.StatusBadRequest {
			msg = err.Error()
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())
	for _, h := range s.errorHandlers {
		if h(w, err) {
			log.Debug("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, ErrorCodeInternalError, "internal error")
}
