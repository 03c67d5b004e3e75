package chat

import (
	"PlantyChat/entity"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

const healthStatus = "Chat proxy running"

func Health(_ *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, entity.HealthStatus{Status: healthStatus})
	}
}
