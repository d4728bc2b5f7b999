package http

import (
	"encoding/json"
	"net/http"

	"sip-agent/domain"
	"sip-agent/service"
)

type SIPHandler struct {
	service *service.SIPService
}

func NewSIPHandler(service *service.SIPService) *SIPHandler {
	return &SIPHandler{service: service}
}

func (h *SIPHandler) Calculate(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var input domain.SIPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result := h.service.Compute(input)

	writeJSON(w, http.StatusOK, domain.SIPResult{
		FutureValue:      round2(result.FutureValue),
		TotalContributed: round2(result.TotalContributed),
		TotalGrowth:      round2(result.TotalGrowth),
	})
}
