package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
	"github.com/MKhiriev/go-doc-vault/models"
)

const (
	// watchTimeout is how long a single long-poll may hang before the
	// relay answers with an empty change set.
	watchTimeout = 25 * time.Second

	// watchPollInterval is the change-log re-read cadence within one
	// long-poll.
	watchPollInterval = time.Second
)

type watchResponse struct {
	Cursor uint64        `json:"cursor"`
	Nodes  []models.Node `json:"nodes"`
}

// watchNodes long-polls the change log under a path. The response
// carries the new cursor; clients pass it back as "after" so each write
// is reported once.
func (h *Handler) watchNodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		log.Warn().Msg("missing path query parameter")
		http.Error(w, "missing path query parameter", http.StatusBadRequest)
		return
	}

	after := uint64(0)
	if rawAfter := r.URL.Query().Get("after"); rawAfter != "" {
		parsed, err := strconv.ParseUint(rawAfter, 10, 64)
		if err != nil {
			log.Err(err).Str("path", path).Msg("invalid after query parameter")
			http.Error(w, "invalid after query parameter", http.StatusBadRequest)
			return
		}
		after = parsed
	}

	deadline := time.NewTimer(watchTimeout)
	defer deadline.Stop()
	poll := time.NewTicker(watchPollInterval)
	defer poll.Stop()

	for {
		nodes, cursor, err := h.nodes.ChangesAfter(ctx, path, after)
		if err != nil {
			log.Err(err).Str("path", path).Msg("unexpected error occurred during change read")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
			return
		}

		if len(nodes) > 0 {
			utils.WriteJSON(w, watchResponse{Cursor: cursor, Nodes: nodes}, http.StatusOK)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-deadline.C:
			// nothing happened: hand the cursor back so the client
			// resumes from the same spot
			utils.WriteJSON(w, watchResponse{Cursor: after, Nodes: []models.Node{}}, http.StatusOK)
			return
		case <-poll.C:
		}
	}
}
