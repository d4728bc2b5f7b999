package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sip-agent/domain"
	"sip-agent/repository"
	"sip-agent/service"
)

func newGrowthHandler() *GrowthHandler {
	return NewGrowthHandler(
		service.NewGrowthService(service.NewSIPService(repository.NewMemoryCache())),
	)
}

func TestBuildScheduleHandler_OK(t *testing.T) {

	handler := newGrowthHandler()

	body := []byte(`{
		"monthly_contribution": 1000,
		"annual_rate_percent": 8,
		"years": 5
	}`)

	req := httptest.NewRequest(http.MethodPost, "/sip/growth-schedule", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var result domain.GrowthScheduleResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}

	if len(result.Schedule) != 5 {
		t.Errorf("expected 5 rows, got %d", len(result.Schedule))
	}
}

func TestBuildScheduleHandler_UnsupportedMediaType(t *testing.T) {

	handler := newGrowthHandler()

	req := httptest.NewRequest(http.MethodPost, "/sip/growth-schedule", bytes.NewBuffer([]byte(`{}`)))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	if w.Code != http.StatusUnsupportedMediaType {
		t.Errorf("expected 415, got %d", w.Code)
	}
}

func TestBuildScheduleHandler_InvalidInput(t *testing.T) {

	handler := newGrowthHandler()

	body := []byte(`{
		"monthly_contribution": -5,
		"annual_rate_percent": 8,
		"years": 5
	}`)

	req := httptest.NewRequest(http.MethodPost, "/sip/growth-schedule", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.BuildSchedule(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
