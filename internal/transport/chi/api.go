package chi

import (
	"time"

	domcol "github.com/kailas-cloud/promptlab/internal/domain/collection"
	domprompt "github.com/kailas-cloud/promptlab/internal/domain/prompt"
)

// ErrorCode is the machine-readable error code in an ErrorResponse.
type ErrorCode string

// Error codes returned by the API.
const (
	ErrorCodeBadRequest         ErrorCode = "bad_request"
	ErrorCodeUnauthorized       ErrorCode = "unauthorized"
	ErrorCodeValidationFailed   ErrorCode = "validation_failed"
	ErrorCodePromptNotFound     ErrorCode = "prompt_not_found"
	ErrorCodeCollectionNotFound ErrorCode = "collection_not_found"
	ErrorCodeInternalError      ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// PromptRequest is the body of POST /prompts and PUT /prompts/{id}.
type PromptRequest struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Description  string `json:"description,omitempty"`
	CollectionID string `json:"collection_id,omitempty"`
}

// PromptResponse is the wire form of a prompt.
type PromptResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Description  string    `json:"description"`
	CollectionID string    `json:"collection_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CollectionRequest is the body of POST /collections.
type CollectionRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CollectionResponse is the wire form of a collection.
type CollectionResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	PromptCount *int      `json:"prompt_count,omitempty"`
}

// ListResponse is a cursor-paginated page of items.
type ListResponse[T any] struct {
	Items      []T     `json:"items"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status      string            `json:"status"`
	Checks      map[string]string `json:"checks"`
	Prompts     int               `json:"prompts"`
	Collections int               `json:"collections"`
}

func promptToResponse(p domprompt.Prompt) PromptResponse {
	return PromptResponse{
		ID:           p.ID(),
		Title:        p.Title(),
		Content:      p.Content(),
		Description:  p.Description(),
		CollectionID: p.CollectionID(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
	}
}

func collectionToResponse(c domcol.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID(),
		Name:        c.Name(),
		Description: c.Description(),
		CreatedAt:   c.CreatedAt(),
	}
}

func promptsToResponse(prompts []domprompt.Prompt) []PromptResponse {
	out := make([]PromptResponse, len(prompts))
	for i, p := range prompts {
		out[i] = promptToResponse(p)
	}
	return out
}
