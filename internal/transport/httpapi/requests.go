package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

type issueBody struct {
	Amount   int64    `json:"amount"`
	Metadata metadata `json:"metadata"`
}

type creditBody struct {
	CreditID string   `json:"creditId"`
	Metadata metadata `json:"metadata"`
}

// resolve runs an accept or reject on behalf of the caller and writes the request.
func resolve[T any](h *Handler, w http.ResponseWriter, r *http.Request, message string, fn func(actorID, requestID string) (T, error)) {
	p, _ := principalFrom(r.Context())
	req, err := fn(p.UserID, mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, message, req)
}

func list[T any](h *Handler, w http.ResponseWriter, r *http.Request, fn func(userID string) ([]T, error)) {
	p, _ := principalFrom(r.Context())
	items, err := fn(p.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if items == nil {
		items = []T{}
	}
	h.writeJSON(w, http.StatusOK, "requests", items)
}

func (h *Handler) createIssue(w http.ResponseWriter, r *http.Request) {
	var body issueBody
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, _ := principalFrom(r.Context())
	req, err := h.lifecycle.CreateIssueRequest(r.Context(), p.UserID, body.Amount, body.Metadata.String())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, "issue request created", req)
}

func (h *Handler) pendingIssues(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, func(userID string) ([]model.IssueRequest, error) {
		return h.lifecycle.PendingIssueRequests(r.Context(), userID)
	})
}

func (h *Handler) acceptIssue(w http.ResponseWriter, r *http.Request) {
	resolve(h, w, r, "credit issued", func(actorID, requestID string) (model.IssueRequest, error) {
		return h.lifecycle.AcceptIssueRequest(r.Context(), actorID, requestID)
	})
}

func (h *Handler) rejectIssue(w http.ResponseWriter, r *http.Request) {
	resolve(h, w, r, "issue request rejected", func(actorID, requestID string) (model.IssueRequest, error) {
		return h.lifecycle.RejectIssueRequest(r.Context(), actorID, requestID)
	})
}

func (h *Handler) createBuy(w http.ResponseWriter, r *http.Request) {
	var body creditBody
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, _ := principalFrom(r.Context())
	req, err := h.lifecycle.CreateBuyRequest(r.Context(), p.UserID, body.CreditID, body.Metadata.String())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, "buy request created", req)
}

func (h *Handler) pendingBuys(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, func(userID string) ([]model.BuyRequest, error) {
		return h.lifecycle.PendingBuyRequests(r.Context(), userID)
	})
}

func (h *Handler) acceptBuy(w http.ResponseWriter, r *http.Request) {
	resolve(h, w, r, "credit transferred", func(actorID, requestID string) (model.BuyRequest, error) {
		return h.lifecycle.AcceptBuyRequest(r.Context(), actorID, requestID)
	})
}

func (h *Handler) rejectBuy(w http.ResponseWriter, r *http.Request) {
	resolve(h, w, r, "buy request rejected", func(actorID, requestID string) (model.BuyRequest, error) {
		return h.lifecycle.RejectBuyRequest(r.Context(), actorID, requestID)
	})
}

func (h *Handler) createRetire(w http.ResponseWriter, r *http.Request) {
	var body creditBody
	if err := decode(w, r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	p, _ := principalFrom(r.Context())
	req, err := h.lifecycle.CreateRetireRequest(r.Context(), p.UserID, body.CreditID, body.Metadata.String())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, "retire request created", req)
}

func (h *Handler) retireRequests(w http.ResponseWriter, r *http.Request) {
	list(h, w, r, func(userID string) ([]model.RetireRequest, error) {
		return h.lifecycle.RetireRequests(r.Context(), userID)
	})
}

func (h *Handler) acceptRetire(w http.ResponseWriter, r *http.Request) {
	resolve(h, w, r, "credit retired", func(actorID, requestID string) (model.RetireRequest, error) {
		return h.lifecycle.AcceptRetireRequest(r.Context(), actorID, requestID)
	})
}

func (h *Handler) rejectRetire(w http.ResponseWriter, r *http.Request) {
	resolve(h, w, r, "retire request rejected", func(actorID, requestID string) (model.RetireRequest, error) {
		return h.lifecycle.RejectRetireRequest(r.Context(), actorID, requestID)
	})
}
