package handlers

import "net/http"

// HandleSheetRedirect sends the visitor to the spreadsheet itself.
func (h *Handler) HandleSheetRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.service.SheetEditURL(), http.StatusFound)
}
