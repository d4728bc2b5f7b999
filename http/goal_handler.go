package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"sip-agent/domain"
	"sip-agent/service"
)

type GoalHandler struct {
	service *service.GoalService
}

func NewGoalHandler(service *service.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

func (h *GoalHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		http.Error(w, "Content-Type must be application/json", http.StatusUnsupportedMediaType)
		return
	}

	var input domain.GoalInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Printf("Error decoding request body: %v", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.Plan(input)
	if err != nil {
		log.Printf("Error planning goal: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, domain.GoalResult{
		RequiredMonthlyContribution: round2(result.RequiredMonthlyContribution),
		TotalContributed:            round2(result.TotalContributed),
		TotalGrowth:                 round2(result.TotalGrowth),
	})
}
