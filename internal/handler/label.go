package handler

import (
	"log/slog"
	"net/http"

	"fruitstars/internal/httputil"
	"fruitstars/internal/service"
)

// LabelHandler serves the fixed label catalog.
type LabelHandler struct {
	treeService *service.TreeService
	authorizer  *service.RoleAuthorizer
	logger      *slog.Logger
}

// NewLabelHandler creates a new label handler
func NewLabelHandler(treeService *service.TreeService, authorizer *service.RoleAuthorizer, logger *slog.Logger) *LabelHandler {
	return &LabelHandler{
		treeService: treeService,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// ListLabels returns the label catalog
// GET /api/labels
func (h *LabelHandler) ListLabels(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireReader(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.treeService.Labels())
}
