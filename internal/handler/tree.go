package handler

import (
	"log/slog"
	"net/http"

	"fruitstars/internal/httputil"
	"fruitstars/internal/service"
)

// TreeHandler serves the full-tree and search views.
type TreeHandler struct {
	treeService *service.TreeService
	authorizer  *service.RoleAuthorizer
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService *service.TreeService, authorizer *service.RoleAuthorizer, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// GetTree returns the full nested folder tree
// GET /api/tree
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireReader(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.treeService.Tree())
}

// Search runs a tree-wide, case-insensitive name search
// GET /api/search?q=
func (h *TreeHandler) Search(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireReader(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	results := h.treeService.Search(r.URL.Query().Get("q"))
	httputil.RespondJSON(w, http.StatusOK, results)
}
