package error

import "net/http"

// MissingCredentialError means the Tropo API token was blank when an
// operation needed it. This is a configuration defect, not a retryable
// runtime condition.
type MissingCredentialError string

func (err MissingCredentialError) Error() string {
	return string(err)
}

func (err MissingCredentialError) ErrCode() string {
	return "MISSING_CREDENTIAL"
}

func (err MissingCredentialError) StatusCode() int {
	return http.StatusInternalServerError
}

// MalformedResponseError means the platform answered with a body that has
// no status element where one was expected.
type MalformedResponseError string

func (err MalformedResponseError) Error() string {
	return string(err)
}

func (err MalformedResponseError) ErrCode() string {
	return "MALFORMED_RESPONSE"
}

func (err MalformedResponseError) StatusCode() int {
	return http.StatusBadGateway
}

// TransportError wraps a network-level failure of an outbound platform
// call. It is propagated to the caller as-is; no retry happens here.
type TransportError struct {
	Op    string
	Cause error
}

func (err *TransportError) Error() string {
	return "tropo " + err.Op + " request failed: " + err.Cause.Error()
}

func (err *TransportError) Unwrap() error {
	return err.Cause
}

func (err *TransportError) ErrCode() string {
	return "TRANSPORT_FAILURE"
}

func (err *TransportError) StatusCode() int {
	return http.StatusBadGateway
}
