package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
)

func (h *Handler) credit(w http.ResponseWriter, r *http.Request) {
	holding, err := h.ledger.Credit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, "credit", holding)
}

func (h *Handler) creditEvents(w http.ResponseWriter, r *http.Request) {
	events, err := h.archive.EventsByCredit(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, apperr.Internal(err, "failed to load credit events"))
		return
	}
	h.writeJSON(w, http.StatusOK, "credit events", events)
}
