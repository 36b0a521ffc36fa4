package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/janedoe/codestream/internal/apperror"
	"github.com/labstack/echo/v4"
)

// APIResponse is the uniform envelope every endpoint answers with.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respond sends a success envelope with the given status and payload.
func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, APIResponse{Success: true, Data: data})
}

// respondOK sends a bare success envelope with no payload.
func respondOK(c echo.Context) error {
	return c.JSON(http.StatusOK, APIResponse{Success: true})
}

// respondError maps a domain error to its HTTP status: validation -> 400,
// not found -> 404, everything else -> 500. Store faults are logged with
// their cause but surfaced generically.
func respondError(c echo.Context, err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrValidation):
			return c.JSON(http.StatusBadRequest, APIResponse{Success: false, Error: appErr.Message})
		case errors.Is(err, apperror.ErrNotFound):
			return c.JSON(http.StatusNotFound, APIResponse{Success: false, Error: appErr.Message})
		}
	}
	log.Printf("%s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	return c.JSON(http.StatusInternalServerError, APIResponse{Success: false, Error: "internal server error"})
}

// HTTPErrorHandler renders echo-level errors (unknown routes, rejected
// auth, malformed bodies) in the same envelope as the handlers.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	status := http.StatusInternalServerError
	message := "internal server error"
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(status)
		}
	}
	if jsonErr := c.JSON(status, APIResponse{Success: false, Error: message}); jsonErr != nil {
		log.Printf("writing error response: %v", jsonErr)
	}
}
