package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskboard/internal/api/shared"
	"github.com/phrazzld/taskboard/internal/feed"
)

// StreamingHandler serves the informational feed.
type StreamingHandler struct {
	source feed.Source
	logger *slog.Logger
}

// NewStreamingHandler creates a new StreamingHandler
func NewStreamingHandler(source feed.Source, logger *slog.Logger) *StreamingHandler {
	if source == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("source cannot be nil for StreamingHandler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamingHandler{
		source: source,
		logger: logger.With(slog.String("component", "streaming_handler")),
	}
}

// GetStreaming handles GET /streaming requests.
func (h *StreamingHandler) GetStreaming(w http.ResponseWriter, r *http.Request) {
	items, err := h.source.Items(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	if items == nil {
		items = []feed.Item{}
	}

	shared.RespondWithData(w, r, http.StatusOK, items)
}
