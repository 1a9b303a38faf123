package rest

import (
	"encoding/json"
	"net/http"

	"github.com/suvidhapay/wallet/pkg/logger"
)

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Log.Error("error while encoding response to JSON", logger.Error(err))
	}
}

// WriteError renders every failure as a single-key {"error": message} body.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}
