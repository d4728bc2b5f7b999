package http

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"sip-agent/domain"
	"sip-agent/service"
)

type ScenarioHandler struct {
	service *service.ScenarioService
}

func NewScenarioHandler(service *service.ScenarioService) *ScenarioHandler {
	return &ScenarioHandler{service: service}
}

type scenarioListResponse struct {
	Scenarios []domain.Scenario `json:"scenarios"`
	Empty     bool              `json:"empty"`
}

// Scenarios dispatches on method: POST saves, GET lists, DELETE removes.
func (h *ScenarioHandler) Scenarios(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.save(w, r)
	case http.MethodGet:
		h.list(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *ScenarioHandler) save(w http.ResponseWriter, r *http.Request) {
	var input domain.SIPInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	scenario, err := h.service.Save(input)
	if err != nil {
		log.Printf("Error saving scenario: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, scenario)
}

func (h *ScenarioHandler) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scenarioListResponse{
		Scenarios: h.service.List(),
		Empty:     h.service.IsEmpty(),
	})
}

func (h *ScenarioHandler) remove(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid scenario id", http.StatusBadRequest)
		return
	}

	// Removing an unknown id is a no-op, not an error
	if err := h.service.Remove(id); err != nil {
		log.Printf("Error removing scenario %d: %v", id, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
