package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/ishanbagra18/zero-waste/internal/engine"
	"github.com/ishanbagra18/zero-waste/internal/model"
)

// ClaimsHandler handles the claim lifecycle endpoints.
type ClaimsHandler struct {
	DB *sql.DB
}

type claimStatusRequest struct {
	Status string `json:"status"`
}

// Claim handles POST /api/items/{id}/claim.
func (h *ClaimsHandler) Claim(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := engine.InitiateClaim(r.Context(), h.DB, id, actor)
	if err != nil {
		engineError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// UpdateClaimStatus handles PATCH /api/items/{id}/claim-status.
func (h *ClaimsHandler) UpdateClaimStatus(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req claimStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := engine.ResolveClaim(r.Context(), h.DB, id, actor, req.Status)
	if err != nil {
		engineError(w, err)
		return
	}
	jsonResponse(w, http.StatusOK, item)
}

// Mine handles GET /api/items/claims/mine.
func (h *ClaimsHandler) Mine(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFromContext(r.Context())
	if !ok {
		jsonError(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	items, err := engine.ClaimedItems(r.Context(), h.DB, actor)
	if err != nil {
		engineError(w, err)
		return
	}
	if items == nil {
		items = []model.Item{}
	}
	jsonResponse(w, http.StatusOK, items)
}
