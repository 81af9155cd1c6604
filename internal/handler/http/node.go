package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
	"github.com/MKhiriev/go-doc-vault/internal/utils"
)

// maxNodeValueSize bounds a single node write. Documents are line-based
// text; anything larger is a client bug or abuse.
const maxNodeValueSize = 4 << 20

func (h *Handler) getNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		log.Warn().Msg("missing path query parameter")
		http.Error(w, "missing path query parameter", http.StatusBadRequest)
		return
	}

	node, err := h.nodes.GetNode(ctx, path)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Error(w, "node not found", http.StatusNotFound)
			return
		}

		log.Err(err).Str("path", path).Msg("unexpected error occurred during node read")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, node, http.StatusOK)
}

func (h *Handler) putNode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	path := r.URL.Query().Get("path")
	if path == "" {
		log.Warn().Msg("missing path query parameter")
		http.Error(w, "missing path query parameter", http.StatusBadRequest)
		return
	}

	expectedVersion, err := strconv.ParseUint(r.Header.Get("X-Expected-Version"), 10, 64)
	if err != nil {
		log.Err(err).Str("path", path).Msg("invalid X-Expected-Version header")
		http.Error(w, "invalid X-Expected-Version header", http.StatusBadRequest)
		return
	}

	value, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxNodeValueSize))
	if err != nil {
		log.Err(err).Str("path", path).Msg("failed to read request body")
		http.Error(w, "request body too large or unreadable", http.StatusBadRequest)
		return
	}

	node, err := h.nodes.PutNode(ctx, path, value, expectedVersion)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			log.Debug().Str("path", path).Uint64("expected_version", expectedVersion).Msg("conditional write rejected")
			http.Error(w, "version conflict", http.StatusConflict)
			return
		}

		log.Err(err).Str("path", path).Msg("unexpected error occurred during node write")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, node, http.StatusOK)
}

func (h *Handler) listNodes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	prefix := r.URL.Query().Get("prefix")
	if prefix == "" {
		log.Warn().Msg("missing prefix query parameter")
		http.Error(w, "missing prefix query parameter", http.StatusBadRequest)
		return
	}

	nodes, err := h.nodes.ListNodes(ctx, prefix)
	if err != nil {
		log.Err(err).Str("prefix", prefix).Msg("unexpected error occurred during node listing")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, nodes, http.StatusOK)
}
