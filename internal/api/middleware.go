package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"requestdesk/internal/session"
	"requestdesk/pkg/logging"
)

const requestIDHeader = "X-Request-Id"

// RequestLogger attaches a request-scoped logger and logs one line per
// request once the response is written.
func RequestLogger(logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, requestID)

			entry := logger.WithFields(logrus.Fields{
				"request-id": requestID,
				"path":       r.URL.Path,
				"method":     r.Method,
			})
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(logging.WithLogger(r.Context(), entry)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			entry.WithFields(logrus.Fields{
				"status":   status,
				"duration": time.Since(start).String(),
				"htmx":     r.Header.Get("HX-Request") == "true",
			}).Info("request completed")
		})
	}
}

// Sessions resolves the caller's session from its cookie, starting a new one
// when the cookie is missing, invalid or points at an expired session.
//
// A fresh session always starts on the dashboard, so a lost session behaves
// like a page reload.
func Sessions(m *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := m.Load(w, r)
			if !ok {
				var err error
				sess, err = m.Issue(w)
				if err != nil {
					logging.FromContext(r.Context()).WithError(err).Error("issue session")
					WriteError(w, http.StatusInternalServerError, "INTERNAL", "failed to start session")
					return
				}
				logging.FromContext(r.Context()).WithField("session", sess.ID).Debug("session started")
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}
