package onesignal

import "errors"

// Domain errors for OneSignal API calls, designed for error wrapping and
// classification with errors.Is. There are exactly two runtime failure
// classes: the HTTP exchange failed, or it completed with a body that is not
// JSON. Everything else — including a well-formed JSON error body from the
// service — resolves as success, so callers can tell network failure from
// contract violation without the client guessing at remote semantics.
var (
	// ErrRequestFailed wraps transport-level failures (DNS, connection
	// refused, TLS, timeouts). The underlying error is joined in and stays
	// reachable via errors.Is / errors.As.
	ErrRequestFailed = errors.New("notification request failed")

	// ErrWrongJSONFormat signals a response body that could not be parsed as
	// JSON. The message is kept verbatim for callers that match on it.
	ErrWrongJSONFormat = errors.New("Wrong JSON Format")

	// ErrInvalidConfig signals missing or malformed client configuration.
	ErrInvalidConfig = errors.New("invalid onesignal configuration")
)
