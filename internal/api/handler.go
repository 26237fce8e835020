package api

import (
	"net/http"

	"github.com/go-faster/errors"

	"github.com/wgomg/sumrank/internal/config"
	"github.com/wgomg/sumrank/internal/engine"
	"github.com/wgomg/sumrank/internal/summarizer"
	"github.com/wgomg/sumrank/internal/utils"
	"github.com/wgomg/sumrank/internal/utils/httputils"
)

const emptyInputMessage = "Please enter text to summarize."

type Handler struct {
	logger      *utils.Logger
	cache       *engine.Cache
	cfg         *config.Config
	extractText func(document string) (string, error)
}

func NewHandler(logger *utils.Logger, cache *engine.Cache, cfg *config.Config) *Handler {
	return &Handler{
		logger:      logger,
		cache:       cache,
		cfg:         cfg,
		extractText: utils.ExtractText,
	}
}

func (h *Handler) HandleSummarize(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	if _, err := httputils.LogRequestBody(r, h.logger, reqID); err != nil {
		h.logger.Error(&reqID, "Failed to read request body: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var payload SummarizeRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	eng, err := h.engine(payload.Engine, h.options(&payload))
	if err != nil {
		h.logger.Error(&reqID, "Failed to create engine: %v", err)
		httputils.HandleError(w, mapError(err))
		return
	}

	text, err := h.prepare(payload.Text, payload.HTML)
	if err != nil {
		h.logger.Error(&reqID, "Failed to extract text: %v", err)
		httputils.HandleError(w, mapError(err))
		return
	}

	h.logger.Info(&reqID, "Summarizing %d words with engine=%s", utils.CountWords(text), eng.Name())
	h.logger.Debug(&reqID, "Content preview: %s", utils.Truncate(text, 200))

	summary, err := eng.Summarize(r.Context(), text)
	if err != nil {
		h.logger.Error(&reqID, "Summarization failed: %v", err)
		httputils.HandleError(w, mapError(err))
		return
	}

	h.logger.Info(&reqID, "Summary ready: sentences=%d, selected=%d, iterations=%d, bypassed=%v",
		summary.SentenceCount, len(summary.Selected), summary.Iterations, summary.Bypassed)

	if err := httputils.SuccessResponse(w, "Text summarized successfully", newSummaryResponse(eng.Name(), summary)); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	reqID := httputils.RequestID(r.Context())

	var payload BatchRequest
	if err := httputils.DecodeJSON(r, &payload); err != nil {
		h.logger.Error(&reqID, "JSON decode error: %v", err)
		httputils.HandleError(w, err)
		return
	}

	if len(payload.Texts) == 0 {
		httputils.HandleError(w, httputils.BadRequest("texts must not be empty"))
		return
	}
	if len(payload.Texts) > h.cfg.Batch.MaxItems {
		httputils.HandleError(w, httputils.BadRequest("too many texts in batch"))
		return
	}

	eng, err := h.engine(payload.Engine, h.cfg.Options())
	if err != nil {
		h.logger.Error(&reqID, "Failed to create engine: %v", err)
		httputils.HandleError(w, mapError(err))
		return
	}

	texts := make([]string, len(payload.Texts))
	prepareErrs := make([]error, len(payload.Texts))
	for i, text := range payload.Texts {
		texts[i], prepareErrs[i] = h.prepare(text, payload.HTML)
		if prepareErrs[i] != nil {
			h.logger.Error(&reqID, "Failed to extract text for item %d: %v", i, prepareErrs[i])
		}
	}

	h.logger.Info(&reqID, "Summarizing batch of %d texts with engine=%s", len(texts), eng.Name())

	results, err := engine.SummarizeBatch(r.Context(), eng, texts, h.cfg.Batch.WorkerCount)
	if err != nil {
		h.logger.Error(&reqID, "Batch summarization aborted: %v", err)
		httputils.HandleError(w, err)
		return
	}

	var failed int
	items := make([]BatchItem, len(results))
	for i, result := range results {
		items[i] = BatchItem{Index: result.Index}
		// the engine saw "" for items that failed extraction
		if prepareErrs[i] != nil {
			result.Err = prepareErrs[i]
		}
		if result.Err != nil {
			failed++
			items[i].Error = mapError(result.Err).Error()
			continue
		}
		items[i].Summary = newSummaryResponse(eng.Name(), result.Summary)
	}

	response := map[string]any{
		"total":     len(items),
		"processed": len(items) - failed,
		"failed":    failed,
		"items":     items,
	}

	if err := httputils.SuccessResponse(w, "Batch summarization completed", response); err != nil {
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := StatsResponse{
		CacheSize:    h.cache.Size(),
		CacheHitRate: h.cache.HitRate(),
		Engine:       h.cfg.Summarizer.Engine,
	}

	if err := httputils.SuccessResponse(w, "Cache statistics", stats); err != nil {
		reqID := httputils.RequestID(r.Context())
		h.logger.Error(&reqID, "Error sending response: %v", err)
	}
}

func (h *Handler) engine(name string, opts summarizer.Options) (engine.Engine, error) {
	if name == "" {
		name = h.cfg.Summarizer.Engine
	}
	return engine.New(name, opts, h.cache, h.logger)
}

func (h *Handler) options(payload *SummarizeRequest) summarizer.Options {
	opts := h.cfg.Options()
	if payload.MaxIterations != nil {
		opts.MaxIterations = *payload.MaxIterations
	}
	if payload.DampingFactor != nil {
		opts.DampingFactor = *payload.DampingFactor
	}
	if payload.Delta != nil {
		opts.Delta = *payload.Delta
	}
	if payload.Ratio != nil {
		opts.Ratio = *payload.Ratio
	}
	if payload.MinSentences != nil {
		opts.MinSentences = *payload.MinSentences
	}
	return opts
}

func (h *Handler) prepare(text string, isHTML bool) (string, error) {
	if !isHTML {
		return text, nil
	}
	extracted, err := h.extractText(text)
	if err != nil {
		return "", httputils.BadRequest("Invalid HTML: " + err.Error())
	}
	return extracted, nil
}

func mapError(err error) error {
	switch {
	case errors.Is(err, summarizer.ErrEmptyInput):
		return httputils.BadRequest(emptyInputMessage)
	case errors.Is(err, summarizer.ErrInvalidOptions), errors.Is(err, engine.ErrUnknownEngine):
		return httputils.BadRequest(err.Error())
	}
	return err
}
