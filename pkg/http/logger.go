package http

import (
	"go.uber.org/zap"

	"taskboard/pkg/log"
	"taskboard/pkg/msg"
)

// HTTPLogger interface defines methods for logging HTTP requests and responses
type HTTPLogger interface {
	// LogRequest is called before the request is sent with all request data formed
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess is called immediately after receiving a successful response (non-error HTTP status)
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a transport failure or an error HTTP status
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)
}

type nopLogger struct{}

func (nopLogger) LogRequest(string, string, map[string]string, string) {}
func (nopLogger) LogResponseSuccess(string, string, map[string]string, string, int, string, int64) {
}
func (nopLogger) LogResponseError(string, string, map[string]string, string, int, string, int64, error) {
}

// ZapLogger writes HTTP traffic to the application zap logger.
// Bodies are logged at debug level only.
type ZapLogger struct{}

// NewZapLogger creates an HTTPLogger backed by pkg/log.
func NewZapLogger() *ZapLogger {
	return &ZapLogger{}
}

func (ZapLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debug(msg.GetMessage("http.request", method, url),
		zap.String("method", method),
		zap.String("url", url),
		zap.String("body", body),
	)
}

func (ZapLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Info(msg.GetMessage("http.response-success", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
	log.Debug("response body", zap.String("url", url), zap.String("body", responseBody))
}

func (ZapLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Error(msg.GetMessage("http.response-error", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response_body", responseBody),
		zap.Error(err),
	)
}
