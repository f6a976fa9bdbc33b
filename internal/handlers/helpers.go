package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/bandi-strawberry/internal/session"
)

// maxBodyBytes bounds JSON request bodies
const maxBodyBytes = 1 << 20

var errNoSession = errors.New("request has no session")

// decodeJSON decodes a single JSON object from the request body
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// lockSession returns the request's session locked for the caller, who
// must Unlock it. It writes a 500 when the session middleware did not run.
func lockSession(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (*session.Session, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		logger.Error("session middleware not installed", "path", r.URL.Path, "error", errNoSession)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
		return nil, false
	}
	sess.Lock()
	return sess, true
}
