package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/example/anime-catalog/internal/platform/api"
)

const maxRequestBodyBytes = 1 << 20 // 1 MiB

// decodeJSON reads up to maxRequestBodyBytes from r.Body and decodes JSON into dst.
// An empty body leaves dst untouched. On failure it writes a 400 response and
// returns false.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, rid string, dst *T) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		api.BadRequest(w, "INVALID_JSON", "Invalid JSON", rid, nil)
		return false
	}
	return true
}

// pathID parses the {id} route parameter. On failure it writes a 400
// response and returns false.
func pathID(w http.ResponseWriter, r *http.Request, rid string) (int, bool) {
	raw := strings.TrimSpace(chi.URLParam(r, "id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		api.BadRequest(w, "INVALID_ID", "id must be a positive integer", rid, map[string]any{"id": raw})
		return 0, false
	}
	return id, true
}

// queryPage parses ?page=, defaulting to 1.
func queryPage(w http.ResponseWriter, r *http.Request, rid string) (int, bool) {
	raw := strings.TrimSpace(r.URL.Query().Get("page"))
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		api.BadRequest(w, "INVALID_PAGE", "page must be a positive integer", rid, map[string]any{"page": raw})
		return 0, false
	}
	return page, true
}
