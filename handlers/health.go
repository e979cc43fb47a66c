package handlers

import (
	"net/http"

	"github.com/shepstack/supportai/utils"
)

// Health handles GET /healthz
func Health(w http.ResponseWriter, _ *http.Request) {
	_ = utils.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
