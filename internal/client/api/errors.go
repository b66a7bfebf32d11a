package api

// Error is a structured failure reported by the remote API ({message}).
// The message is user-facing and surfaced as-is.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string { return e.Message }
