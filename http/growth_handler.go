package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"sip-agent/domain"
	"sip-agent/service"
)

type GrowthHandler struct {
	service *service.GrowthService
}

func NewGrowthHandler(service *service.GrowthService) *GrowthHandler {
	return &GrowthHandler{service: service}
}

func (h *GrowthHandler) BuildSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validar Content-Type
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.GrowthScheduleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.BuildSchedule(input)
	if err != nil {
		log.Printf("Error building growth schedule: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	for i := range result.Schedule {
		row := &result.Schedule[i]
		row.FutureValue = round2(row.FutureValue)
		row.TotalContributed = round2(row.TotalContributed)
		row.TotalGrowth = round2(row.TotalGrowth)
	}
	result.ContributedPct = round2(result.ContributedPct)
	result.GrowthPct = round2(result.GrowthPct)

	writeJSON(w, http.StatusOK, result)
}
