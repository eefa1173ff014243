package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/vibetracker/internal/common"
	"github.com/dmitrijs2005/vibetracker/internal/logging"
	"github.com/dmitrijs2005/vibetracker/internal/server/services"
	"github.com/labstack/echo/v4"
)

// ErrorMessage is the body of every failed response.
type ErrorMessage struct {
	Error string `json:"error"`
}

// Message is the body of successful responses that carry no record.
type Message struct {
	Message string `json:"message"`
}

const (
	msgInvalidJSON      = "Invalid JSON body"
	msgInternal         = "Internal Server Error"
	msgDeleteFailed     = "Delete failed"
	msgUpdateFailed     = "Update failed"
	msgLoadVibesFailed  = "Failed to load vibes"
	msgLoadGoalsFailed  = "Failed to load goals"
	msgVibeNotFound     = "Vibe not found"
	msgGoalNotFound     = "Goal not found"
	msgGoalConflict     = "Goal was modified concurrently"
	msgExportDisabled   = "Export is disabled"
	msgExportFailed     = "Export failed"
	msgStoreUnavailable = "Database unavailable"
)

func NewErrorMessage(code int, reason string, cause error) *echo.HTTPError {
	he := echo.NewHTTPError(code, ErrorMessage{Error: reason})
	if cause != nil {
		he = he.SetInternal(cause)
	}
	return he
}

func BadRequest(reason string, err error) *echo.HTTPError {
	return NewErrorMessage(http.StatusBadRequest, reason, err)
}

func NotFound(reason string) *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, reason, nil)
}

func Conflict(reason string, err error) *echo.HTTPError {
	return NewErrorMessage(http.StatusConflict, reason, err)
}

func ServiceUnavailable(reason string, err error) *echo.HTTPError {
	return NewErrorMessage(http.StatusServiceUnavailable, reason, err)
}

func InternalServerError(reason string, err error) *echo.HTTPError {
	return NewErrorMessage(http.StatusInternalServerError, reason, err)
}

// fromServiceError maps a service failure to its HTTP form. notFound is the
// message for a missing record, failure the generic one for store errors.
func fromServiceError(err error, notFound, failure string) *echo.HTTPError {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return BadRequest(verr.Message, err)
	case errors.Is(err, common.ErrorValidation):
		return BadRequest(err.Error(), err)
	case errors.Is(err, common.ErrorNotFound):
		return NotFound(notFound)
	case errors.Is(err, common.ErrVersionConflict):
		return Conflict(msgGoalConflict, err)
	case errors.Is(err, common.ErrExportDisabled):
		return ServiceUnavailable(msgExportDisabled, err)
	default:
		return InternalServerError(failure, err)
	}
}

// ErrorHandler writes {"error": ...} for every failure and logs the cause of
// server-side ones. Errors raised by echo itself (unknown route, wrong
// method) keep their status and text.
func ErrorHandler(logger logging.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if !errors.As(err, &he) {
			he = InternalServerError(msgInternal, err)
		}

		body := he.Message
		switch m := body.(type) {
		case ErrorMessage:
		case string:
			body = ErrorMessage{Error: m}
		default:
			body = ErrorMessage{Error: http.StatusText(he.Code)}
		}

		req := c.Request()
		if he.Code >= http.StatusInternalServerError {
			cause := he.Internal
			if cause == nil {
				cause = err
			}
			logger.Error(req.Context(), "request failed",
				"method", req.Method, "path", req.URL.Path, "status", he.Code, "error", cause)
		}

		if req.Method == http.MethodHead {
			err = c.NoContent(he.Code)
		} else {
			err = c.JSON(he.Code, body)
		}
		if err != nil {
			logger.Error(req.Context(), "failed to write error response", "error", err)
		}
	}
}
