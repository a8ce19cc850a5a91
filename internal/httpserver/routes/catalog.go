package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/streamarchive/catalogd/internal/httpserver/deps"
	"github.com/streamarchive/catalogd/internal/httpserver/handlers"
)

func init() { Register(registerCatalog) }

func registerCatalog(r chi.Router, d deps.Deps) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/", handlers.Collections(d))
		r.Get("/{kind}", handlers.ListEntries(d))
		r.Get("/{kind}/{id}", handlers.GetEntry(d))
	})
}
