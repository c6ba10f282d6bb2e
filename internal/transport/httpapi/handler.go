// Package httpapi serves the ledger's REST API.
package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/h2credit-ledger/internal/apperr"
	"github.com/goodnatureofminers/h2credit-ledger/internal/model"
)

type Handler struct {
	lifecycle Lifecycle
	ledger    Ledger
	registry  Registry
	archive   Archive
	tokens    *TokenIssuer
	metrics   Metrics
	logger    *zap.Logger
}

func NewHandler(
	lifecycle Lifecycle,
	ledger Ledger,
	registry Registry,
	archive Archive,
	tokens *TokenIssuer,
	metrics Metrics,
	logger *zap.Logger,
) (*Handler, error) {
	switch {
	case lifecycle == nil:
		return nil, errors.New("lifecycle engine is required")
	case ledger == nil:
		return nil, errors.New("ledger aggregator is required")
	case registry == nil:
		return nil, errors.New("registry is required")
	case archive == nil:
		return nil, errors.New("event archive is required")
	case tokens == nil:
		return nil, errors.New("token issuer is required")
	case metrics == nil:
		return nil, errors.New("http metrics is required")
	}

	return &Handler{
		lifecycle: lifecycle,
		ledger:    ledger,
		registry:  registry,
		archive:   archive,
		tokens:    tokens,
		metrics:   metrics,
		logger:    logger,
	}, nil
}

// Router builds the API routes. An empty origin list allows any origin.
func (h *Handler) Router(corsOrigins []string) http.Handler {
	r := mux.NewRouter()
	r.Use(h.observe)
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h.writeError(w, req, apperr.NotFound("route not found"))
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		h.writeJSON(w, http.StatusMethodNotAllowed, "method not allowed", nil)
	})

	r.HandleFunc("/users", h.register).Methods(http.MethodPost)
	r.HandleFunc("/me", h.authenticate(h.me)).Methods(http.MethodGet)
	r.HandleFunc("/users/{username}/ledger", h.authenticate(h.userLedger)).Methods(http.MethodGet)
	r.HandleFunc("/users/{username}/onchain", h.authenticate(h.chainLedger)).Methods(http.MethodGet)

	h.gated(r, http.MethodPost, "/requests/issue", h.createIssue, model.RolePlant)
	h.gated(r, http.MethodGet, "/requests/issue", h.pendingIssues, model.RoleAuditor)
	h.gated(r, http.MethodPost, "/requests/issue/{id}/accept", h.acceptIssue, model.RoleAuditor)
	h.gated(r, http.MethodPost, "/requests/issue/{id}/reject", h.rejectIssue, model.RoleAuditor)

	h.gated(r, http.MethodPost, "/requests/buy", h.createBuy, model.RoleIndustry)
	h.gated(r, http.MethodGet, "/requests/buy", h.pendingBuys, model.RolePlant)
	h.gated(r, http.MethodPost, "/requests/buy/{id}/accept", h.acceptBuy, model.RolePlant)
	h.gated(r, http.MethodPost, "/requests/buy/{id}/reject", h.rejectBuy, model.RolePlant)

	h.gated(r, http.MethodPost, "/requests/retire", h.createRetire, model.RoleIndustry)
	h.gated(r, http.MethodGet, "/requests/retire", h.retireRequests, model.RoleAuditor)
	h.gated(r, http.MethodPost, "/requests/retire/{id}/accept", h.acceptRetire, model.RoleAuditor)
	h.gated(r, http.MethodPost, "/requests/retire/{id}/reject", h.rejectRetire, model.RoleAuditor)

	r.HandleFunc("/credits/{id}", h.authenticate(h.credit)).Methods(http.MethodGet)
	r.HandleFunc("/credits/{id}/events", h.authenticate(h.creditEvents)).Methods(http.MethodGet)

	options := cors.Options{
		AllowedOrigins: corsOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}
	if len(corsOrigins) == 0 {
		options.AllowedOrigins = []string{"*"}
	}
	return cors.New(options).Handler(r)
}

func (h *Handler) gated(r *mux.Router, method, path string, next http.HandlerFunc, role model.Role) {
	r.HandleFunc(path, h.authenticate(h.requireRole(next, role))).Methods(method)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.code = code
	s.ResponseWriter.WriteHeader(code)
}

// observe records every matched request under its route template.
func (h *Handler) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		h.metrics.Observe(r.Method, route, rec.code, started)
	})
}
