package http

import (
	"github.com/MKhiriev/go-doc-vault/internal/config"
	"github.com/MKhiriev/go-doc-vault/internal/logger"
	"github.com/MKhiriev/go-doc-vault/internal/store"
)

// Handler serves the relay API: session issuing plus blind node reads,
// conditional writes, and change watching. It holds no key material and
// never inspects node values.
type Handler struct {
	nodes store.NodeRepository
	app   config.ServerApp

	logger *logger.Logger
}

func NewHandler(nodes store.NodeRepository, app config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		nodes:  nodes,
		app:    app,
		logger: logger,
	}
}
