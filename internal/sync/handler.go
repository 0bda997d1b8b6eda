package sync

import (
	"net/http"

	httputil "pmshub/pkg/http"
	"pmshub/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type SyncHandler struct {
	service SyncService
	log     *logger.Logger
}

func NewSyncHandler(service SyncService, log *logger.Logger) *SyncHandler {
	return &SyncHandler{
		service: service,
		log:     log,
	}
}

func (h *SyncHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/connections/id/:id/sync", h.SyncConnection)
	router.POST("/api/v1/sync", h.SyncAll)
}

func (h *SyncHandler) SyncConnection(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID, err := httputil.ExtractUserID(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SyncConnection", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	data, err := h.service.SyncConnection(r.Context(), userID, ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SyncConnection", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, data); err != nil {
		h.log.Error("failed to write success response", "handler", "SyncConnection", "operation", "WriteSuccess", "error", err)
	}
}

func (h *SyncHandler) SyncAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := httputil.ExtractUserID(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SyncAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	result, err := h.service.SyncAll(r.Context(), userID)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SyncAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, result); err != nil {
		h.log.Error("failed to write success response", "handler", "SyncAll", "operation", "WriteSuccess", "error", err)
	}
}
