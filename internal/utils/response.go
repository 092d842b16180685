package utils

import (
	"encoding/json"
	"net/http"
	"strings"
)

// APIResponse is the envelope used by the JSON endpoints (delete, sign-up,
// auth-gate rejections). The listing and event-info endpoints return their own
// shapes directly.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(message string) APIResponse {
	return APIResponse{Success: true, Message: message}
}

func ErrorResponse(message string) APIResponse {
	return APIResponse{Success: false, Message: message}
}

// WriteJSON writes payload as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// WantsJSON reports whether the client asked for a JSON response. The auth
// gate uses this to choose between a 401 body and a login redirect.
func WantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
