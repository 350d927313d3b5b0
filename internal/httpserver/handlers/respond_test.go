package handlers

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"clinicore/internal/apperr"
)

func TestStatusForKind(t *testing.T) {
	cases := map[apperr.Kind]int{
		apperr.KindValidation:      400,
		apperr.KindUnauthenticated: 401,
		apperr.KindForbidden:       403,
		apperr.KindNotFound:        404,
		apperr.KindConflict:        409,
		apperr.KindInternal:        500,
	}
	for kind, want := range cases {
		assert.Equal(t, want, statusForKind(kind))
	}
}

func TestRespondErrorUserMessage(t *testing.T) {
	w := httptest.NewRecorder()
	respondError(w, zap.NewNop().Sugar(), apperr.New(apperr.KindNotFound, "Pacientul nu a fost găsit"))

	assert.Equal(t, 404, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Pacientul nu a fost găsit", body["error"])
}

func TestRespondErrorHidesInternalCause(t *testing.T) {
	w := httptest.NewRecorder()
	respondError(w, zap.NewNop().Sugar(), errors.New("pq: connection refused"))

	assert.Equal(t, 500, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "A apărut o eroare internă", body["error"])
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestRemoteIP(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/patients", nil)
	r.RemoteAddr = "10.1.2.3:54321"
	assert.Equal(t, "10.1.2.3", remoteIP(r))

	r.RemoteAddr = "10.1.2.3"
	assert.Equal(t, "10.1.2.3", remoteIP(r))
}
