// Package apperror defines the gateway's wire error taxonomy. Handler and
// middleware errors reach the client through the ingress middleware's
// terminal handler as one of these values. Two bodies are written directly
// instead: the receipt-wait timeout body (api.finishAsync, which adds the
// transaction hash) and the unhealthy health-probe body.
package apperror

import "net/http"

// Error is a result value carrying everything the ingress terminal step
// needs to render a response: HTTP status, the taxonomy name on the wire,
// a message, and whether that message is safe to show the caller.
type Error struct {
	Status    int
	Name      string
	Message   string
	Exposable bool
	Cause     error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func new(status int, name, message string, exposable bool, cause error) *Error {
	return &Error{Status: status, Name: name, Message: message, Exposable: exposable, Cause: cause}
}

// BadRequest reports input validation failures caught at the ingress
// boundary before any chain call is made.
func BadRequest(message string) *Error {
	return new(http.StatusBadRequest, "BadRequest", message, true, nil)
}

// Unauthorized reports a missing or unrecognised API key.
func Unauthorized() *Error {
	return new(http.StatusUnauthorized, "Unauthorized", "missing or invalid API key", true, nil)
}

// NotFound reports an unknown route, token id, or operation id.
func NotFound(message string) *Error {
	return new(http.StatusNotFound, "NotFound", message, true, nil)
}

// Conflict reports a duplicate or incompatible operation, e.g. pausing a
// non-pausable token.
func Conflict(message string) *Error {
	return new(http.StatusConflict, "Conflict", message, true, nil)
}

// RateLimitExceeded reports that the caller's sliding window budget is
// exhausted.
func RateLimitExceeded() *Error {
	return new(http.StatusTooManyRequests, "RateLimitExceeded", "rate limit exceeded", true, nil)
}

// Internal reports an unexpected exception. The cause is never exposed to
// the caller. The terminal handler does not log it; only a recovered panic
// is logged (by middleware.Recovery) with the request's correlation ID.
func Internal(cause error) *Error {
	return new(http.StatusInternalServerError, "InternalError", "internal server error", false, cause)
}

// UpstreamUnavailable reports that the RPC node could not be reached.
func UpstreamUnavailable(cause error) *Error {
	return new(http.StatusServiceUnavailable, "UpstreamUnavailable", "upstream RPC unavailable", true, cause)
}

// UpstreamTimeout reports that a transaction was broadcast but no receipt
// was observed within the configured deadline. This value carries no
// transaction hash; the async handlers write their own 503 UpstreamTimeout
// body (api.finishAsync) so that the hash reaches the caller.
func UpstreamTimeout() *Error {
	return new(http.StatusServiceUnavailable, "UpstreamTimeout", "timed out waiting for transaction receipt", true, nil)
}

// As extracts an *Error from err, or synthesizes an InternalError wrapping
// it when err is not already one of ours.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	if ae, ok := err.(*Error); ok {
		return ae
	}
	return Internal(err)
}
