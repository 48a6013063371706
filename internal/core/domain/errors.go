package domain

import "errors"

// RequestError reports a failed backend call. Message is the text shown to
// the visitor: the backend's "detail" field when it sent one, otherwise the
// operation's fixed fallback. Both HTTP-level failures and malformed success
// bodies surface through this type.
type RequestError struct {
	Message string
	// StatusCode is the backend's HTTP status; 0 when the request never
	// completed (transport failure).
	StatusCode int
}

func (e *RequestError) Error() string {
	return e.Message
}

// AsRequestError unwraps err into a RequestError when possible.
func AsRequestError(err error) (*RequestError, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
