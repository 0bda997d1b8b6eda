package handler

import (
	"net/http"

	"pmshub/internal/records/service"
	httputil "pmshub/pkg/http"
	"pmshub/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type RecordsHandler struct {
	service service.RecordsService
	log     *logger.Logger
}

func NewRecordsHandler(service service.RecordsService, log *logger.Logger) *RecordsHandler {
	return &RecordsHandler{
		service: service,
		log:     log,
	}
}

func (h *RecordsHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/v1/data", h.GetData)
}

func (h *RecordsHandler) GetData(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID, err := httputil.ExtractUserID(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetData", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	from, to, err := httputil.ExtractDateRange(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetData", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	dataset, err := h.service.GetData(r.Context(), userID, from, to)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetData", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, dataset); err != nil {
		h.log.Error("failed to write success response", "handler", "GetData", "operation", "WriteSuccess", "error", err)
	}
}
