package handler

import (
	"log/slog"
	"net/http"

	"fruitstars/internal/httputil"
	"fruitstars/internal/service"
	"fruitstars/internal/service/suggest"
)

// SuggestionHandler handles placement suggestion requests
type SuggestionHandler struct {
	treeService    *service.TreeService
	suggestService *suggest.Service
	authorizer     *service.RoleAuthorizer
	logger         *slog.Logger
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(
	treeService *service.TreeService,
	suggestService *suggest.Service,
	authorizer *service.RoleAuthorizer,
	logger *slog.Logger,
) *SuggestionHandler {
	return &SuggestionHandler{
		treeService:    treeService,
		suggestService: suggestService,
		authorizer:     authorizer,
		logger:         logger,
	}
}

// SuggestPlacement proposes a destination folder and label for a new file.
// The suggestion never mutates the tree; the client feeds an accepted answer
// through the normal upload endpoint.
// POST /api/suggestions
func (h *SuggestionHandler) SuggestPlacement(w http.ResponseWriter, r *http.Request) {
	// Suggestions feed the upload flow, so they are gated like a mutation
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req suggest.Request
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	suggestion, err := h.suggestService.Suggest(r.Context(), h.treeService.Tree(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, suggestion)
}
