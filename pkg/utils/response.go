// Package utils holds the JSON response helpers shared by every handler.
package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the envelope all handler errors are rendered as.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON 发送JSON响应
func RespondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("[http] failed to encode response: %v", err)
	}
}

// RespondError 发送错误响应
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}
