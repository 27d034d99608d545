package common

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	// UserIDKey carries the authenticated admin's user id in the request context.
	UserIDKey contextKey = "user_id"
)

// GetUserIDFromContext extracts the user ID from the request context
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return userID, ok
}

// WithUserID returns a context carrying the authenticated user id.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, userID)
}

// AjaxResponse is the admin-ajax envelope. On success Data holds the action's
// payload; on failure it holds a human-readable message string.
type AjaxResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// SendAjaxSuccess sends a successful admin-ajax envelope
func SendAjaxSuccess(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, AjaxResponse{Success: true, Data: data})
}

// SendAjaxError sends a failed admin-ajax envelope. Failures are part of the
// action protocol, not transport errors, so the status stays 200.
func SendAjaxError(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, AjaxResponse{Success: false, Data: message})
}
