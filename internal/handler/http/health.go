package http

import (
	"net/http"

	"github.com/skti-dev/bncc-backend/internal/logger"
	"github.com/skti-dev/bncc-backend/internal/utils"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{
		"message": "API de questões educacionais",
		"version": h.cfg.Version,
		"status":  "online",
	}, http.StatusOK)
}

// health reports liveness of the API and its database. The endpoint answers
// 200 even when Mongo is down so the two statuses stay independently
// observable.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	mongoStatus := "ok"
	if err := h.pinger.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("mongodb health check failed")
		mongoStatus = "unavailable"
	}

	utils.WriteJSON(w, map[string]string{
		"api_status":     "ok",
		"mongodb_status": mongoStatus,
		"version":        h.cfg.Version,
	}, http.StatusOK)
}
