package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"sip-agent/domain"
	"sip-agent/repository"
	"sip-agent/service"
)

func newScenarioHandler() *ScenarioHandler {
	sipService := service.NewSIPService(repository.NewMemoryCache())
	store := repository.NewScenarioStoreMemory()
	return NewScenarioHandler(service.NewScenarioService(sipService, store))
}

func saveScenario(t *testing.T, handler *ScenarioHandler) domain.Scenario {
	t.Helper()

	body := []byte(`{
		"monthly_contribution": 5000,
		"annual_rate_percent": 12,
		"years": 10
	}`)

	req := httptest.NewRequest(http.MethodPost, "/sip/scenarios", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	handler.Scenarios(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	var scenario domain.Scenario
	if err := json.NewDecoder(w.Body).Decode(&scenario); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return scenario
}

func listScenarios(t *testing.T, handler *ScenarioHandler) scenarioListResponse {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/sip/scenarios", nil)
	w := httptest.NewRecorder()

	handler.Scenarios(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var list scenarioListResponse
	if err := json.NewDecoder(w.Body).Decode(&list); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	return list
}

func TestScenariosHandler_SaveListRemove(t *testing.T) {

	handler := newScenarioHandler()

	list := listScenarios(t, handler)
	if !list.Empty || len(list.Scenarios) != 0 {
		t.Fatalf("expected empty list, got %+v", list)
	}

	scenario := saveScenario(t, handler)
	if scenario.FutureValue <= 0 {
		t.Errorf("expected future value > 0, got %.2f", scenario.FutureValue)
	}

	list = listScenarios(t, handler)
	if list.Empty || len(list.Scenarios) != 1 {
		t.Fatalf("expected one scenario, got %+v", list)
	}
	if list.Scenarios[0].ID != scenario.ID {
		t.Errorf("expected saved scenario in list")
	}

	req := httptest.NewRequest(
		http.MethodDelete,
		fmt.Sprintf("/sip/scenarios?id=%d", scenario.ID),
		nil,
	)
	w := httptest.NewRecorder()
	handler.Scenarios(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	list = listScenarios(t, handler)
	if !list.Empty {
		t.Errorf("expected empty list after removal, got %+v", list)
	}
}

func TestScenariosHandler_RemoveUnknownID(t *testing.T) {

	handler := newScenarioHandler()
	saveScenario(t, handler)

	req := httptest.NewRequest(http.MethodDelete, "/sip/scenarios?id=999", nil)
	w := httptest.NewRecorder()
	handler.Scenarios(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected 204 for unknown id, got %d", w.Code)
	}

	if list := listScenarios(t, handler); len(list.Scenarios) != 1 {
		t.Errorf("expected list unchanged, got %d scenarios", len(list.Scenarios))
	}
}

func TestScenariosHandler_InvalidID(t *testing.T) {

	handler := newScenarioHandler()

	req := httptest.NewRequest(http.MethodDelete, "/sip/scenarios?id=abc", nil)
	w := httptest.NewRecorder()
	handler.Scenarios(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestScenariosHandler_MethodNotAllowed(t *testing.T) {

	handler := newScenarioHandler()

	req := httptest.NewRequest(http.MethodPut, "/sip/scenarios", nil)
	w := httptest.NewRecorder()
	handler.Scenarios(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
