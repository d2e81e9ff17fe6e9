package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"companies-engine/internal/events"
)

type HealthHandler struct {
	DB  *sql.DB
	Hub *events.Hub
}

func (h HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	body := map[string]any{
		"ok":          true,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"subscribers": h.Hub.Subscribers(),
	}
	if err := h.DB.PingContext(ctx); err != nil {
		status = http.StatusServiceUnavailable
		body["ok"] = false
		body["store"] = "unavailable"
	}
	WriteJSON(w, status, body)
}
