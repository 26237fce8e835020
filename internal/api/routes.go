package api

import "net/http"

func RegisterRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /summarize", handler.HandleSummarize)
	mux.HandleFunc("POST /summarize/batch", handler.HandleBatch)
	mux.HandleFunc("GET /stats", handler.HandleStats)
}
