package chi

import (
	"fmt"
	"net/http"
	"strconv"
)

// page slices items after the element whose key equals cursor.
// An unknown cursor starts from the beginning.
func page[T any](items []T, key func(T) string, cursor string, limit int) ListResponse[T] {
	start := 0
	if cursor != "" {
		for i, item := range items {
			if key(item) == cursor {
				start = i + 1
				break
			}
		}
	}

	end := min(start+limit, len(items))
	out := items[start:end]
	resp := ListResponse[T]{Items: out, HasMore: end < len(items)}
	if resp.HasMore && len(out) > 0 {
		next := key(out[len(out)-1])
		resp.NextCursor = &next
	}
	if resp.Items == nil {
		resp.Items = []T{}
	}
	return resp
}

// pageParams reads cursor and limit query parameters.
// Limits above the maximum are clamped; non-positive or non-numeric limits are rejected.
func (s *Server) pageParams(r *http.Request) (cursor string, limit int, err error) {
	q := r.URL.Query()
	cursor = q.Get("cursor")
	limit = s.defaultPageSize

	if raw := q.Get("limit"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 1 {
			return "", 0, fmt.Errorf("limit must be a positive integer, got %q", raw)
		}
		limit = n
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	return cursor, limit, nil
}
