package response

import "records-srv/pkg/errors"

// Resp is the JSON envelope every endpoint responds with.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain sentinel errors to their HTTP representation.
type ErrorMapping map[error]*errors.HTTPError
