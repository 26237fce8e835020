package httputils

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/wgomg/sumrank/internal/utils"
)

func DecodeJSON(r *http.Request, v any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType != "application/json" {
		return &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if tooLarge := bodyTooLarge(err); tooLarge != nil {
			return tooLarge
		}
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}

func LogRequestBody(r *http.Request, logger *utils.Logger, reqID string) ([]byte, error) {
	if !logger.RawBodyLog {
		return nil, nil
	}

	bodyBytes, err := io.ReadAll(r.Body)
	if err != nil {
		if tooLarge := bodyTooLarge(err); tooLarge != nil {
			return nil, tooLarge
		}
		return nil, errors.Wrap(err, "read request body")
	}

	r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

	logger.Debug(&reqID, "Raw request body: %s", string(bodyBytes))

	return bodyBytes, nil
}

// bodyTooLarge maps a LimitBody overflow to 413, or returns nil.
func bodyTooLarge(err error) *HTTPError {
	var maxBytesErr *http.MaxBytesError
	if !errors.As(err, &maxBytesErr) {
		return nil
	}
	return &HTTPError{
		Code:    http.StatusRequestEntityTooLarge,
		Message: "Request body too large",
	}
}
