package http

// HTTPLogger receives the lifecycle of every request sent by a Client
type HTTPLogger interface {
	// LogRequest is called before the request is sent
	LogRequest(method, url string, headers map[string]string)

	// LogResponseSuccess is called after receiving a 2xx response
	LogResponseSuccess(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64)

	// LogResponseError is called after a non-2xx response or a transport failure (httpStatus 0)
	LogResponseError(method, url string, headers map[string]string, httpStatus int, responseBody string, latency int64, err error)
}

type noopLogger struct{}

func (noopLogger) LogRequest(string, string, map[string]string) {}

func (noopLogger) LogResponseSuccess(string, string, map[string]string, int, string, int64) {
}

func (noopLogger) LogResponseError(string, string, map[string]string, int, string, int64, error) {
}
