package catalog

import (
	"log/slog"
	"net/http"
	"time"
)

// LoggingTransport логирует исходящие запросы к каталогу
// Логирует метод, путь, статус, время выполнения, размер ответа
type LoggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
}

// NewLoggingTransport wraps next; nil next means http.DefaultTransport.
func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingTransport{next: next, logger: logger}
}

// RoundTrip implements http.RoundTripper.
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.next.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.logger.Log(req.Context(), slog.LevelError, "catalog request failed",
			"method", req.Method,
			"path", req.URL.EscapedPath(),
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, err
	}

	// Определяем уровень логирования на основе статуса
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 500 {
		logLevel = slog.LevelError
	} else if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}

	t.logger.Log(req.Context(), logLevel, "catalog request",
		"method", req.Method,
		"path", req.URL.EscapedPath(),
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
		"bytes", resp.ContentLength,
	)
	return resp, nil
}
