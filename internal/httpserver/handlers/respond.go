package handlers

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the error shape of the catalog API: the HTTP status
// code repeated in the body, nothing else.
type errorBody struct {
	Error int `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError emits the canonical error body for the given status code.
// Also used by the router's fallback handlers (404/405).
func WriteError(w http.ResponseWriter, status int) {
	writeJSON(w, status, errorBody{Error: status})
}
