// Package transport exposes the explorer over REST routes mounted on a grpc-gateway mux.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/goodnatureofminers/tangleinsight-backend/internal/tangle/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

const maxTransactionsPerRequest = 1000

// ExplorerHandler serves the explorer REST routes.
type ExplorerHandler struct {
	explorer Explorer
	logger   *zap.Logger
}

// NewExplorerHandler returns an ExplorerHandler instance.
func NewExplorerHandler(explorer Explorer, logger *zap.Logger) *ExplorerHandler {
	return &ExplorerHandler{explorer: explorer, logger: logger.Named("rest")}
}

// Register mounts the routes on mux.
func (h *ExplorerHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/v1/{network}/search/{type}/{value}", h.Search},
		{http.MethodPost, "/v1/{network}/transactions", h.Transactions},
		{http.MethodGet, "/v1/{network}/bundles/{hash}", h.Bundle},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return nil
}

// Search resolves criteria into transaction hashes.
func (h *ExplorerHandler) Search(w http.ResponseWriter, r *http.Request, params map[string]string) {
	criteriaType, err := model.ParseCriteriaType(params["type"])
	if err != nil {
		h.fail(w, err)
		return
	}
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			h.fail(w, fmt.Errorf("%w: limit %q", model.ErrMalformedCriteria, raw))
			return
		}
	}

	res, err := h.explorer.Resolve(r.Context(), model.Network(params["network"]), criteriaType,
		params["value"], limit, r.URL.Query().Get("cursor"))
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, toSearchResponse(res))
}

// Transactions returns the payloads of the requested hashes.
func (h *ExplorerHandler) Transactions(w http.ResponseWriter, r *http.Request, params map[string]string) {
	var req transactionsRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&req); err != nil {
		h.fail(w, fmt.Errorf("%w: body: %v", model.ErrMalformedCriteria, err))
		return
	}
	if len(req.Hashes) > maxTransactionsPerRequest {
		h.fail(w, fmt.Errorf("%w: at most %d hashes per request", model.ErrMalformedCriteria, maxTransactionsPerRequest))
		return
	}

	payloads, err := h.explorer.FetchPayloads(r.Context(), model.Network(params["network"]), req.Hashes)
	if err != nil {
		h.fail(w, err)
		return
	}
	resp := transactionsResponse{Transactions: make([]payloadResponse, 0, len(payloads))}
	for _, p := range payloads {
		resp.Transactions = append(resp.Transactions, toPayloadResponse(p))
	}
	h.write(w, http.StatusOK, resp)
}

// Bundle reconstructs the bundle group of a transaction.
func (h *ExplorerHandler) Bundle(w http.ResponseWriter, r *http.Request, params map[string]string) {
	network := model.Network(params["network"])
	payloads, err := h.explorer.FetchPayloads(r.Context(), network, []string{params["hash"]})
	if err != nil {
		h.fail(w, err)
		return
	}
	if len(payloads) != 1 || payloads[0].State == model.StateUnknown {
		h.write(w, http.StatusNotFound, errorResponse{Error: "transaction not found"})
		return
	}

	group, err := h.explorer.ReconstructBundle(r.Context(), network, payloads[0])
	if err != nil {
		h.fail(w, err)
		return
	}
	h.write(w, http.StatusOK, toBundleResponse(group))
}

func (h *ExplorerHandler) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrUnknownNetwork):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrMalformedCriteria), errors.Is(err, model.ErrMalformedCursor):
		status = http.StatusBadRequest
	default:
		h.logger.Error("request failed", zap.Error(err))
	}
	h.write(w, status, errorResponse{Error: err.Error()})
}

func (h *ExplorerHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}
