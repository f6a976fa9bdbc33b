package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/catalog"
	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
	"github.com/Lixing-Zhang/bandi-strawberry/pkg/logger"
)

func testLogger() *slog.Logger {
	return logger.New("error")
}

// newTestSession returns a fresh session seeded with the default catalog
func newTestSession() *session.Session {
	return session.NewStore(catalog.Default().Products, time.Hour).Create()
}

// newRequest builds a request carrying sess, encoding body as JSON unless it is a string
func newRequest(t *testing.T, method, target string, body interface{}, sess *session.Session) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("failed to marshal request: %v", err)
		}
	}

	req := httptest.NewRequest(method, target, &buf)
	if sess != nil {
		req = req.WithContext(session.NewContext(req.Context(), sess))
	}
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var response ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	return response.Error
}
