package middleware

import (
	"encoding/json"
	"net/http"
)

// writeMessage writes {"message": msg} with the given status. Middleware
// failures use the same body shape as handlers.
func writeMessage(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": msg})
}
