package openmeteo

import (
	"go.uber.org/zap"

	"meteo-api/pkg/http"
	"meteo-api/pkg/log"
	"meteo-api/pkg/msg"
)

// maxLoggedBody caps the response body attached to failure logs
const maxLoggedBody = 512

type zapHTTPLogger struct{}

func NewZapHTTPLogger() http.HTTPLogger {
	return zapHTTPLogger{}
}

func (zapHTTPLogger) LogRequest(method, url string, _ map[string]string) {
	log.Debug(msg.GetMessage("upstream.request", method, url),
		zap.String("method", method),
		zap.String("url", url),
	)
}

func (zapHTTPLogger) LogResponseSuccess(method, url string, _ map[string]string, httpStatus int, _ string, latency int64) {
	log.Info(msg.GetMessage("upstream.success", method, url, httpStatus, latency),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
	)
}

func (zapHTTPLogger) LogResponseError(method, url string, _ map[string]string, httpStatus int, responseBody string, latency int64, err error) {
	if len(responseBody) > maxLoggedBody {
		responseBody = responseBody[:maxLoggedBody]
	}

	log.Warn(msg.GetMessage("upstream.failure", method, url, httpStatus, latency, err),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", httpStatus),
		zap.Int64("latency_ms", latency),
		zap.String("response", responseBody),
		zap.Error(err),
	)
}
