package promptlab

import "time"

// Prompt is a stored prompt template.
type Prompt struct {
	ID           string
	Title        string
	Content      string
	Description  string
	CollectionID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Collection groups prompts.
type Collection struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// PromptInput carries the editable fields for Create and Update.
// An empty CollectionID places the prompt in the Uncategorized collection.
type PromptInput struct {
	Title        string
	Content      string
	Description  string
	CollectionID string
}

// PromptPatch is a partial prompt update. Nil fields are unchanged.
// A non-nil empty CollectionID moves the prompt to Uncategorized.
type PromptPatch struct {
	Title        *string
	Content      *string
	Description  *string
	CollectionID *string
}

// ListFilter narrows PromptService.List. Zero values match everything.
type ListFilter struct {
	CollectionID string
	// Query is a case-insensitive substring matched against title and description.
	Query string
}

// HealthStatus represents the aggregated store health.
type HealthStatus struct {
	Status      string            // "ok", "degraded"
	Checks      map[string]string // component → "ok"/"error"
	Prompts     int
	Collections int
}
