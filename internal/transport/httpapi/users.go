package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/registry"
)

type registerResponse struct {
	registry.Result
	Token string `json:"token"`
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var reg registry.Registration
	if err := decode(w, r, &reg); err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.registry.Register(r.Context(), reg)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	token, err := h.tokens.Issue(res.User)
	if err != nil {
		h.writeError(w, r, apperr.Internal(err, "failed to issue token"))
		return
	}

	h.writeJSON(w, http.StatusCreated, "user registered", registerResponse{Result: res, Token: token})
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	user, err := h.registry.Profile(r.Context(), p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, "profile", user)
}

func (h *Handler) userLedger(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	view, err := h.ledger.UserLedger(r.Context(), p.UserID, mux.Vars(r)["username"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, "ledger", view)
}

func (h *Handler) chainLedger(w http.ResponseWriter, r *http.Request) {
	p, _ := principalFrom(r.Context())
	view, err := h.ledger.ChainLedger(r.Context(), p.UserID, mux.Vars(r)["username"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, "on-chain ledger", view)
}
