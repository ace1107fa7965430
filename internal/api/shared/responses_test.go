package shared_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskboard/internal/api/shared"
	"github.com/phrazzld/taskboard/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRespondWithData(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithData(rec, req, http.StatusCreated, map[string]string{"id": "t-1"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]interface{}{"id": "t-1"}, body["data"])
	assert.NotContains(t, body, "message")
}

func TestRespondWithData_EmptySliceIsKept(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithData(rec, req, http.StatusOK, []string{})

	assert.JSONEq(t, `{"success":true,"data":[]}`, rec.Body.String())
}

func TestRespondWithMessage(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/tasks/1", nil)
	rec := httptest.NewRecorder()

	shared.RespondWithMessage(rec, req, http.StatusOK, "Task deleted successfully")

	assert.JSONEq(t, `{"success":true,"message":"Task deleted successfully"}`, rec.Body.String())
}

func TestRespondWithError_IncludesTraceID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/tasks/1", nil)
	req = req.WithContext(shared.WithTraceID(req.Context(), "trace-123"))
	rec := httptest.NewRecorder()

	shared.RespondWithError(rec, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Task not found","trace_id":"trace-123"}`, rec.Body.String())
}

func TestRespondWithErrorAndLog(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		opts      []shared.ResponseOption
		wantLevel string
	}{
		{name: "server error logs at error", status: http.StatusInternalServerError, wantLevel: "ERROR"},
		{name: "client error logs at debug", status: http.StatusBadRequest, wantLevel: "DEBUG"},
		{
			name:      "elevated client error logs at warn",
			status:    http.StatusNotFound,
			opts:      []shared.ResponseOption{shared.WithElevatedLogLevel()},
			wantLevel: "WARN",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			log, buf := logger.GetTestLogger(t)
			req := httptest.NewRequest(http.MethodPost, "/tasks", nil)
			req = req.WithContext(logger.WithLogger(req.Context(), log))
			rec := httptest.NewRecorder()

			err := errors.New("write /var/lib/taskboard/tasks.json: disk full")
			shared.RespondWithErrorAndLog(rec, req, tc.status, "An unexpected error occurred", err, tc.opts...)

			assert.Equal(t, tc.status, rec.Code)
			assert.NotContains(t, rec.Body.String(), "disk full")

			entries, logErr := buf.GetLogEntries()
			require.NoError(t, logErr)
			require.Len(t, entries, 1)
			assert.Equal(t, tc.wantLevel, entries[0]["level"])
			assert.Equal(t, "write [REDACTED_PATH]: disk full", entries[0]["error"])
		})
	}
}

func TestTraceID(t *testing.T) {
	assert.Equal(t, "", shared.GetTraceID(context.Background()))

	ctx := shared.SetTraceID(context.Background())
	id := shared.GetTraceID(ctx)
	assert.Len(t, id, 32)
	assert.NotContains(t, id, "-")
	assert.NotEqual(t, id, shared.NewTraceID())
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Title string `json:"title"`
	}

	t.Run("valid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"a"}`))
		var p payload
		require.NoError(t, shared.DecodeJSON(httptest.NewRecorder(), req, &p))
		assert.Equal(t, "a", p.Title)
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(""))
		var p payload
		assert.ErrorIs(t, shared.DecodeJSON(httptest.NewRecorder(), req, &p), shared.ErrInvalidBody)
	})

	t.Run("trailing content", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"a"} junk`))
		var p payload
		assert.ErrorIs(t, shared.DecodeJSON(httptest.NewRecorder(), req, &p), shared.ErrInvalidBody)
	})

	t.Run("second JSON value", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"a"}{"title":"b"}`))
		var p payload
		assert.ErrorIs(t, shared.DecodeJSON(httptest.NewRecorder(), req, &p), shared.ErrInvalidBody)
	})

	t.Run("trailing newline is fine", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader("{\"title\":\"a\"}\n"))
		var p payload
		require.NoError(t, shared.DecodeJSON(httptest.NewRecorder(), req, &p))
		assert.Equal(t, "a", p.Title)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":`))
		var p payload
		err := shared.DecodeJSON(httptest.NewRecorder(), req, &p)
		assert.ErrorIs(t, err, shared.ErrInvalidBody)
	})
}

func TestValidateRequest_UsesJSONFieldNames(t *testing.T) {
	type payload struct {
		Duration int `json:"duration" validate:"required,gt=0"`
	}

	err := shared.ValidateRequest(&payload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'duration'")
}
