package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fixedCounter int

func (c fixedCounter) Len() int { return int(c) }

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(testLogger(), fixedCounter(4), "1.2.3")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var response HealthResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Status != "healthy" || response.Version != "1.2.3" || response.Sessions != 4 {
		t.Errorf("unexpected health response %+v", response)
	}
}
