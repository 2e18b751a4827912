package controller

import (
	"net/http"
	"time"

	"github.com/meita/saudi-banks/src/internal/logger"
)

// responseSummary is the part of a commons.Response worth logging; the bank
// list itself is left out of the log line.
type responseSummary interface {
	Summary() (success bool, code, message string)
}

// logRequest records the parsed request model rather than the raw query.
func logRequest(r *http.Request, payload any) {
	fields := logger.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"remote":  r.RemoteAddr,
		"payload": logger.SanitizePayload(payload),
	}

	logger.Info("http request", fields)
}

func logResponse(r *http.Request, status int, payload any, start time.Time) {
	fields := logger.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"durationMs": time.Since(start).Milliseconds(),
	}
	if s, ok := payload.(responseSummary); ok {
		success, code, message := s.Summary()
		fields["success"] = success
		fields["message"] = message
		if code != "" {
			fields["code"] = code
		}
	}

	logger.Info("http response", fields)
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"query":  r.URL.RawQuery,
	}
	for k, v := range extra {
		fields[k] = v
	}
	logger.Error("http handler error", err, fields)
}
