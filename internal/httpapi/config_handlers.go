package httpapi

import (
	"net/http"
	"path/filepath"

	"companies-engine/internal/config"
)

// ConfigHandler reports the running configuration. Changes need a restart.
type ConfigHandler struct {
	Config      config.Config
	UserCfgPath string
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Config)
}

func (h ConfigHandler) Path(w http.ResponseWriter, r *http.Request) {
	abs := h.UserCfgPath
	if abs != "" {
		abs, _ = filepath.Abs(h.UserCfgPath)
	}
	WriteJSON(w, http.StatusOK, map[string]any{"path": abs})
}

func (h ConfigHandler) Validate(w http.ResponseWriter, r *http.Request) {
	_, vr := config.NormalizeAndValidate(h.Config)
	if vr.Errors == nil {
		vr.Errors = []string{}
	}
	if vr.Warnings == nil {
		vr.Warnings = []string{}
	}
	WriteJSON(w, http.StatusOK, vr)
}
