package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/msomdec/daily-log/internal/service"
	"go.uber.org/zap"
)

// WorkLogHandler serves the owner-scoped work log endpoints. Every handler
// must run behind RequireAuth.
type WorkLogHandler struct {
	logs   *service.WorkLogService
	logger *zap.Logger
}

// NewWorkLogHandler creates a new WorkLogHandler.
func NewWorkLogHandler(logs *service.WorkLogService, logger *zap.Logger) *WorkLogHandler {
	return &WorkLogHandler{logs: logs, logger: logger}
}

// HandleCreate adds an entry for the authenticated user.
// POST /api/logs
func (h *WorkLogHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req workLogRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, h.logger, "decode work log", err)
		return
	}

	log, err := h.logs.Add(r.Context(), ownerID, toWorkLogInput(req))
	if err != nil {
		writeServiceError(w, h.logger, "add work log", err)
		return
	}

	writeJSON(w, http.StatusCreated, toWorkLogDTO(log))
}

// HandleList returns the authenticated user's entries, newest date first.
// GET /api/logs
func (h *WorkLogHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	logs, err := h.logs.List(r.Context(), ownerID)
	if err != nil {
		writeServiceError(w, h.logger, "list work logs", err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkLogDTOs(logs))
}

// HandleUpdate replaces an entry owned by the authenticated user.
// PUT /api/logs/{id}
func (h *WorkLogHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req workLogRequest
	if err := readJSON(w, r, &req); err != nil {
		writeServiceError(w, h.logger, "decode work log", err)
		return
	}

	log, err := h.logs.Update(r.Context(), ownerID, chi.URLParam(r, "id"), toWorkLogInput(req))
	if err != nil {
		writeServiceError(w, h.logger, "update work log", err)
		return
	}

	writeJSON(w, http.StatusOK, toWorkLogDTO(log))
}

// HandleDelete removes an entry owned by the authenticated user.
// DELETE /api/logs/{id}
func (h *WorkLogHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := h.logs.Delete(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.logger, "delete work log", err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "Log deleted successfully"})
}

func toWorkLogInput(req workLogRequest) service.WorkLogInput {
	return service.WorkLogInput{
		Date:      req.Date,
		Work:      req.Work,
		IsHoliday: req.IsHoliday,
	}
}
