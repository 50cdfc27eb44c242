package handlers

import (
	"encoding/json"
	"net/http"
)

type apiResponse struct {
	Success   bool   `json:"success"`
	Status    int    `json:"status"`
	Message   string `json:"message,omitempty"`
	SecureURL string `json:"secureUrl,omitempty"`
	Country   string `json:"country,omitempty"`
}

func setCORSHeaders(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func writeJSON(w http.ResponseWriter, status int, resp apiResponse) {
	setCORSHeaders(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, apiResponse{Success: false, Status: status, Message: message})
}
