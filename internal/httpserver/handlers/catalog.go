package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/streamarchive/catalogd/internal/catalog"
	"github.com/streamarchive/catalogd/internal/httpserver/deps"
	"github.com/streamarchive/catalogd/internal/logger"
)

// Collections serves the known collection names.
func Collections(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, d.Catalog.Collections())
	}
}

// ListEntries serves a collection listing: visible entries only, most
// recent first. A scan failure (unreadable directory) is a 500; broken
// entry files inside a readable directory never fail the listing.
func ListEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")

		entries, err := d.Catalog.List(kind)
		if err != nil {
			d.Logger.Warn("collection scan failed",
				logger.String("kind", kind),
				logger.Error(err))
			WriteError(w, http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}

// GetEntry serves a single entry by id. Hidden entries are served too;
// the hidden flag only affects listings. A missing file is a 404, a file
// that exists but will not load is a 500.
func GetEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := chi.URLParam(r, "kind")
		id := chi.URLParam(r, "id")

		entry, err := d.Catalog.Get(kind, id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				WriteError(w, http.StatusNotFound)
				return
			}
			d.Logger.Error("entry load failed",
				logger.String("kind", kind),
				logger.String("id", id),
				logger.Error(err))
			WriteError(w, http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, entry)
	}
}
