package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError_Body(t *testing.T) {
	recorder := httptest.NewRecorder()

	respondError(recorder, http.StatusNotFound, "not_found", "product not found")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Code)
	assert.Equal(t, "product not found", resp.Error)
}

func TestRespondJSON_EncodeFailureLogged(t *testing.T) {
	var buf bytes.Buffer
	prev := encodeLog
	encodeLog = zerolog.New(&buf)
	defer func() { encodeLog = prev }()

	respondJSON(httptest.NewRecorder(), http.StatusOK, make(chan int))

	assert.Contains(t, buf.String(), "failed to encode response")
}
