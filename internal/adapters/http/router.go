package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"svw.info/sokoban/internal/usecase"
	"svw.info/sokoban/web"
)

// NewRouter wires the level browser, static assets and the JSON API.
func NewRouter(uc *usecase.Service, logger *slog.Logger) http.Handler {
	h := New(uc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Handle("/static/*", http.StripPrefix("/static/", web.Static()))
	r.Get("/", h.Index(web.Templates()))
	h.Register(r)
	return r
}
