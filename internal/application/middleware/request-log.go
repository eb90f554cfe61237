package middleware

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"taskboard/pkg/log"
	"taskboard/pkg/msg"
)

// SetupRequestLogger tags every request with an id and logs method, uri,
// status and latency once it is served.
func SetupRequestLogger(e *echo.Echo) {
	e.Use(echomw.RequestID())
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogError:     true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			}
			if v.Error == nil && v.Status < 500 {
				log.Debug(msg.GetMessage("backend.req-end", v.Method, v.URI, v.Status, v.Latency), fields...)
				return nil
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			log.Warn(msg.GetMessage("backend.req-fail", v.Method, v.URI, v.Status, v.Latency), fields...)
			return nil
		},
	}))
}
