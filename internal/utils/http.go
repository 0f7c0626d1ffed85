package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// marshalFailureBody is written when a response value cannot be encoded.
// It keeps the envelope shape so clients never see a non-JSON error body.
const marshalFailureBody = `{"statusCode":500,"success":false,"message":"error writing data to JSON","data":null,"error":"Internal Server Error"}`

// WriteJSON serializes data to JSON and writes it with statusCode.
//
// It sets the "Content-Type" header to "application/json" before writing the
// status. If marshaling fails, it responds with 500 Internal Server Error and
// a fixed envelope body, and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, envelope, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(marshalFailureBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
