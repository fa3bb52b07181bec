package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/dingus-admin/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and an
// "application/json" content type.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSubmitResponse writes the {success, message} body the admin client
// understands. success is derived from statusCode.
func WriteSubmitResponse(w http.ResponseWriter, statusCode int, message string) (int, error) {
	ok := statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
	return WriteJSON(w, models.NewSubmitResponse(ok, message), statusCode)
}
