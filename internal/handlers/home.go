package handlers

import (
	"net/http"

	"herbarium/internal/views/pages"
)

// Home renders the admin landing page with a count per resource family.
func (h *Handlers) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	h.renderPage(w, r, "Herbarium", pages.AdminIndex(h.indexEntries(r.Context())))
}
