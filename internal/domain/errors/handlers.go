package errors

import "contactbook/internal/errors"

// Response is the body of every error reply: {"message": "..."}.
type Response struct {
	Message string `json:"message"`
}

// AsAppError finds the first AppError in err's chain.
func AsAppError(err error) (AppError, bool) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}
