package handler

import (
	"log/slog"
	"net/http"

	"fruitstars/internal/httputil"
	"fruitstars/internal/service"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	treeService *service.TreeService
	authorizer  *service.RoleAuthorizer
	logger      *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(treeService *service.TreeService, authorizer *service.RoleAuthorizer, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		treeService: treeService,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// GetFolder retrieves a folder by ID with its breadcrumb path
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireReader(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	detail, err := h.treeService.GetFolder(id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, detail)
}

// GetFolderLabels returns the derived label set of a folder's direct files
// GET /api/folders/{id}/labels
func (h *FolderHandler) GetFolderLabels(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireReader(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	labels, err := h.treeService.FolderLabels(id)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, labels)
}

// ListDestinations returns every folder a file can be moved into
// GET /api/folders/destinations
func (h *FolderHandler) ListDestinations(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireReader(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, h.treeService.MoveDestinations())
}

// CreateFolder creates a new folder under a parent
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req service.CreateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.treeService.CreateFolder(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, folder)
}

// UpdateFolder applies a partial update to a folder
// PATCH /api/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	var req service.UpdateFolderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	folder, err := h.treeService.UpdateFolder(r.Context(), id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// DeleteFolder removes a folder and its entire subtree
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "folder ID is required")
		return
	}

	if err := h.treeService.DeleteFolder(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
