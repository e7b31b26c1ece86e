package api

import (
	"errors"
	"net/http"

	"github.com/snapgram/snapgram/internal/actions"
)

// statusFor maps orchestrator errors to HTTP status codes. Anything outside
// the action taxonomy is a storage or programming failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, actions.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, actions.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, actions.ErrNotOwner):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, actions.ErrUnauthenticated):
		return "Unauthenticated"
	case errors.Is(err, actions.ErrNotFound):
		return "Not Found"
	case errors.Is(err, actions.ErrNotOwner):
		return "Forbidden"
	default:
		return "Internal Server Error"
	}
}
