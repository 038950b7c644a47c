package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteError_Envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	BadGateway(rr, "UPSTREAM_CONTRACT", "upstream payload rejected", "rid-1", map[string]any{"path": "data[0].mal_id"})

	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "application/json")

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "UPSTREAM_CONTRACT", resp.Error.Code)
	assert.Equal(t, "rid-1", resp.Error.RequestID)
	assert.Equal(t, "data[0].mal_id", resp.Error.Details["path"])
}

func TestInternal_OmitsDetails(t *testing.T) {
	rr := httptest.NewRecorder()
	Internal(rr, "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "details")
	assert.NotContains(t, rr.Body.String(), "request_id")
}
