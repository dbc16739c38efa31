package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/iudanet/gophchat/pkg/api"
)

// writeError отвечает JSON в том же формате, что и handlers
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: message,
	})
}
