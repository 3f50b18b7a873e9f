package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"fruitstars/internal/httputil"
	"fruitstars/internal/service"
)

// FileHandler handles file HTTP requests
type FileHandler struct {
	treeService *service.TreeService
	authorizer  *service.RoleAuthorizer
	logger      *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(treeService *service.TreeService, authorizer *service.RoleAuthorizer, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		treeService: treeService,
		authorizer:  authorizer,
		logger:      logger,
	}
}

// AddFile adds file metadata to a folder
// POST /api/files
func (h *FileHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	var req service.AddFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.treeService.AddFile(r.Context(), &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, file)
}

// DeleteFile removes a file from its parent folder
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file ID is required")
		return
	}

	if err := h.treeService.DeleteFile(r.Context(), id); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// MoveFile relocates a file into a target folder
// POST /api/files/{id}/move
func (h *FileHandler) MoveFile(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file ID is required")
		return
	}

	var req service.MoveFileRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.treeService.MoveFile(r.Context(), id, &req); err != nil {
		handleError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddLabel attaches a catalog label to a file, idempotently
// POST /api/files/{id}/labels
func (h *FileHandler) AddLabel(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireEditor(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "file ID is required")
		return
	}

	var req service.AddLabelRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	file, err := h.treeService.AddLabel(r.Context(), id, &req)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// ListExpiring returns files whose expiration date falls within the window
// GET /api/files/expiring?days=N
func (h *FileHandler) ListExpiring(w http.ResponseWriter, r *http.Request) {
	if err := h.authorizer.RequireReader(httputil.GetRole(r)); err != nil {
		handleError(w, h.logger, err)
		return
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			httputil.RespondError(w, http.StatusBadRequest, "days must be an integer")
			return
		}
		days = parsed
	}

	files, err := h.treeService.ExpiringFiles(days)
	if err != nil {
		handleError(w, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}
