package helper

import (
	"encoding/json"
	"net/http"
)

// RespondJSON writes v as a JSON response body with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// RespondError writes the API error envelope {"error": message}.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{"error": message})
}

// RespondMessage writes the API success envelope {"message": message}.
func RespondMessage(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]interface{}{"message": message})
}
