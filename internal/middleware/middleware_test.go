package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Eursukkul/hustle-events/internal/draft"
	"github.com/Eursukkul/hustle-events/internal/dto"
	"github.com/Eursukkul/hustle-events/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, dto.ErrorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewErrorHandler(zerolog.Nop())(err, c)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestErrorHandler_Validation(t *testing.T) {
	err := &draft.ValidationError{Fields: map[string]string{"title": "is required"}}

	rec, resp := handle(t, err)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "is required", resp.Fields["title"])
}

func TestErrorHandler_NotFound(t *testing.T) {
	for _, err := range []error{
		service.ErrEventNotFound,
		service.ErrProfileNotFound,
		fmt.Errorf("load: %w", service.ErrDraftNotFound),
	} {
		rec, _ := handle(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code, err.Error())
	}
}

func TestErrorHandler_Conflict(t *testing.T) {
	rec, _ := handle(t, service.ErrSubmissionInProgress)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestErrorHandler_Persistence(t *testing.T) {
	err := &service.PersistenceError{Op: "create event", Err: errors.New("connection refused")}

	rec, resp := handle(t, err)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.True(t, resp.Retryable)
}

func TestErrorHandler_HTTPError(t *testing.T) {
	rec, resp := handle(t, echo.NewHTTPError(http.StatusBadRequest, "invalid event id"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid event id", resp.Message)
}

func TestErrorHandler_Unknown(t *testing.T) {
	rec, resp := handle(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal Server Error", resp.Message)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ping", entry["uri"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestValidator(t *testing.T) {
	err := Validator{}.Validate(&draft.Profile{Name: "Jane", Email: "nope", Experience: "advanced"})

	var verr *draft.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")

	assert.NoError(t, Validator{}.Validate(&draft.Profile{Name: "Jane", Email: "jane@example.com", Experience: "advanced"}))
}
