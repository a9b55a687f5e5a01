package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Read(t *testing.T) {
	_, def, err := loadDefinition(&RootOptions{})
	require.NoError(t, err)

	h := NewHandler(def, NewMetrics(), zerolog.Nop())

	tests := []struct {
		query    string
		status   int
		accepted bool
		state    int
		kind     string
	}{
		{query: "ab", status: http.StatusOK, accepted: true, state: 1},
		{query: "ba", status: http.StatusOK, accepted: false, state: 0},
		{query: "", status: http.StatusOK, accepted: false, state: 0},
		{query: "abc", status: http.StatusBadRequest, accepted: false, state: 1, kind: "InvalidSymbol"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/read?input="+tt.query, nil))

			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp ReadResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, tt.query, resp.Input)
			assert.Equal(t, tt.accepted, resp.Accepted)
			assert.Equal(t, tt.state, int(resp.State))
			assert.Equal(t, tt.kind, resp.Kind)
			assert.NotEmpty(t, resp.RequestID)
		})
	}
}

func TestHandler_Metrics(t *testing.T) {
	_, def, err := loadDefinition(&RootOptions{})
	require.NoError(t, err)

	h := NewHandler(def, NewMetrics(), zerolog.Nop())

	for _, word := range []string{"ab", "b", "a", "x"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/read?input="+word, nil))
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `dfa_reads_total{result="accepted"} 2`)
	assert.Contains(t, body, `dfa_reads_total{result="rejected"} 1`)
	assert.Contains(t, body, `dfa_reads_total{result="invalid"} 1`)
	assert.Contains(t, body, "dfa_read_input_bytes_count 4")
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	_, def, err := loadDefinition(&RootOptions{})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	NewHandler(def, NewMetrics(), zerolog.Nop()).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/read", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
