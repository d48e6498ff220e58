package session

import "context"

// DefaultEvent is the signal raised when the caller does not name one.
const DefaultEvent = "continue"

// StatusError is the sentinel status returned when the platform answered
// with no response body at all. It is a normal result, not an error, so
// callers can branch on it without unwrapping anything.
const StatusError = "Error"

// SignalOutcome carries the result of a non-blocking signal dispatch.
type SignalOutcome struct {
	Status string
	Err    error
}

// SessionHandle wraps whatever the platform returns when a new session is
// opened. Ref is a locally generated reference for correlating the handle
// in logs and responses; ID and Token come from the platform.
type SessionHandle struct {
	Ref     string `json:"ref"`
	ID      string `json:"id"`
	Token   string `json:"token,omitempty"`
	Success bool   `json:"success"`
}

// ISignalClient is the capability set a request handler needs from the
// platform adapter: raise a signal on a live session (blocking or not),
// compute the signal URL without calling anyone, and open a new session.
type ISignalClient interface {
	Signal(ctx context.Context, sessionID, event string) (string, error)
	SignalAsync(ctx context.Context, sessionID, event string) <-chan SignalOutcome
	SignalURL(sessionID, event string) string
	CreateSession(ctx context.Context, params map[string]string) (*SessionHandle, error)
}

type SignalRequest struct {
	SessionID string `json:"session_id" uri:"session_id"`
	Event     string `json:"event" form:"event"`
}

type SignalResponse struct {
	SessionID string `json:"session_id"`
	Event     string `json:"event"`
	Status    string `json:"status"`
}

type SignalURLResponse struct {
	SessionID string `json:"session_id"`
	Event     string `json:"event"`
	URL       string `json:"url"`
}

type CreateRequest struct {
	Params map[string]string `json:"params"`
}

type ISessionUsecase interface {
	Signal(ctx context.Context, request SignalRequest) (SignalResponse, error)
	SignalAsync(ctx context.Context, request SignalRequest) (SignalResponse, error)
	SignalURL(ctx context.Context, request SignalRequest) (SignalURLResponse, error)
	CreateSession(ctx context.Context, request CreateRequest) (*SessionHandle, error)
}
