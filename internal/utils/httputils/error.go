package httputils

import (
	"net/http"

	"github.com/go-faster/errors"
)

type HTTPError struct {
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

func BadRequest(message string) *HTTPError {
	return &HTTPError{Code: http.StatusBadRequest, Message: message}
}

func HandleError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		JSONError(w, httpErr.Code, httpErr.Message)
	} else {
		JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
