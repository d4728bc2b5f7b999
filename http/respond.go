package http

import (
	"bytes"
	"encoding/json"
	"log"
	"math"
	"net/http"
)

// writeJSON encodes v into a buffer first so no header is written if the
// encoding fails.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

// round2 rounds for display only; services keep full precision.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
