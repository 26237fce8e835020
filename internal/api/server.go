package api

import (
	"fmt"
	"net/http"

	"github.com/wgomg/sumrank/internal/utils/httputils"
)

func NewRouter(handler *Handler, maxBodyBytes int64) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "Summarization Service is running\n")
	})

	RegisterRoutes(mux, handler)

	return httputils.WithRequestID(httputils.LimitBody(maxBodyBytes, mux))
}
