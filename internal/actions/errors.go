package actions

import "errors"

// Hard failures returned as errors past the orchestrator boundary. Validation
// and write-side storage failures come back inside a Result instead so the
// caller's flow can continue.
var (
	// ErrUnauthenticated means no acting identity could be resolved
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrNotFound means a referenced entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrNotOwner means the acting user does not own or author the target
	ErrNotOwner = errors.New("not owner")
)

// Result is the uniform outcome of every action. Exactly one of Redirect or
// Message is set on success; Errors carries field-level validation messages.
type Result struct {
	Message  string              `json:"message,omitempty"`
	Redirect string              `json:"redirect,omitempty"`
	Errors   map[string][]string `json:"errors,omitempty"`
}
