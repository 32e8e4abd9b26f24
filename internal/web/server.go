package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jaminalder/codex-klondike/internal/app"
)

// NewServer wires routes and returns an http.Handler.
func NewServer(s *app.Service) http.Handler {
	r := chi.NewRouter()
	h := &handlers{svc: s, tpl: loadTemplates()}
	s.SetRenderer(func(ses app.Session) []byte { return h.renderBoard(ses, "") })
	r.Get("/", h.index)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/draw", h.draw)
		r.Post("/undo", h.undo)
		r.Post("/move", h.move)
		r.Post("/foundation", h.foundation)
		r.Post("/reset", h.reset)
		r.Get("/events", h.events)
	})
	return r
}
