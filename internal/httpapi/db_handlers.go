package httpapi

import (
	"database/sql"
	"net"
	"net/http"

	"go.uber.org/zap"

	"companies-engine/internal/logging"
	"companies-engine/internal/store"
)

type DBHandler struct {
	DB *sql.DB
}

// Checkpoint flushes the SQLite WAL.
func (h DBHandler) Checkpoint(w http.ResponseWriter, r *http.Request) {
	if err := store.Checkpoint(r.Context(), h.DB); err != nil {
		logging.FromContext(r.Context()).Error("checkpoint failed", zap.Error(err))
		WriteError(w, r, http.StatusInternalServerError, "checkpoint_failed", "checkpoint failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LocalOnly rejects callers that are not on a loopback address.
func LocalOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if ip := net.ParseIP(host); ip == nil || !ip.IsLoopback() {
			WriteError(w, r, http.StatusForbidden, "forbidden", "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}
