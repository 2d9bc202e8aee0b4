package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Eursukkul/hustle-events/internal/draft"
	"github.com/Eursukkul/hustle-events/internal/dto"
	"github.com/Eursukkul/hustle-events/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// NewErrorHandler maps domain errors onto HTTP responses. Anything it does not
// recognise is logged and reported as a 500.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := classify(err)
		if code >= http.StatusInternalServerError {
			log.Error().Err(err).
				Str("method", c.Request().Method).
				Str("uri", c.Request().RequestURI).
				Int("status", code).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, resp)
	}
}

func classify(err error) (int, dto.ErrorResponse) {
	var (
		verr *draft.ValidationError
		perr *service.PersistenceError
		herr *echo.HTTPError
	)

	switch {
	case errors.As(err, &verr):
		return http.StatusUnprocessableEntity, dto.ErrorResponse{Message: "validation failed", Fields: verr.Fields}
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrProfileNotFound),
		errors.Is(err, service.ErrDraftNotFound):
		return http.StatusNotFound, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrInvalidEventID):
		return http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()}
	case errors.Is(err, service.ErrSubmissionInProgress):
		return http.StatusConflict, dto.ErrorResponse{Message: err.Error()}
	case errors.As(err, &perr):
		return http.StatusServiceUnavailable, dto.ErrorResponse{
			Message:   "storage temporarily unavailable, please try again",
			Retryable: perr.Retryable(),
		}
	case errors.As(err, &herr):
		msg, ok := herr.Message.(string)
		if !ok {
			msg = fmt.Sprint(herr.Message)
		}
		return herr.Code, dto.ErrorResponse{Message: msg}
	}
	return http.StatusInternalServerError, dto.ErrorResponse{Message: http.StatusText(http.StatusInternalServerError)}
}
