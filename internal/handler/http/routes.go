package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)
	router.Use(withGZip)

	// routes without authorization: opening a session, version probing,
	// and reads of nodes (every stored value is ciphertext or public key
	// material, so reads leak nothing)
	router.Group(func(r chi.Router) {
		r.Post("/api/session", h.createSession)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/node", h.getNode)
		r.Get("/api/nodes", h.listNodes)
	})

	// writes and long-polls are attributed to a session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Put("/api/node", h.putNode)
		r.Get("/api/watch", h.watchNodes)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
