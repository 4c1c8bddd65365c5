package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newGatedEcho(headers []string) *echo.Echo {
	e := echo.New()
	SetupErrorHandler(e)
	gated := GatedGroup(e.Group(""), headers)
	gated.GET("/stations", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	return e
}

func TestRapidAPIProxy(t *testing.T) {
	e := newGatedEcho([]string{"x-rapidapi-host", "x-rapidapi-user"})

	tests := []struct {
		name    string
		headers map[string]string
		want    int
	}{
		{name: "no header", want: http.StatusUnauthorized},
		{name: "host header", headers: map[string]string{"X-RapidAPI-Host": "meteo.p.rapidapi.com"}, want: http.StatusOK},
		{name: "user header", headers: map[string]string{"x-rapidapi-user": "someone"}, want: http.StatusOK},
		{name: "empty value", headers: map[string]string{"x-rapidapi-user": " "}, want: http.StatusUnauthorized},
		{name: "unrelated header", headers: map[string]string{"x-api-key": "secret"}, want: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/stations", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusUnauthorized {
				assert.Contains(t, rec.Body.String(), `"error"`)
			}
		})
	}
}

func TestGatedGroupLeavesUnknownPathsUngated(t *testing.T) {
	e := newGatedEcho([]string{"x-rapidapi-host"})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stations", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRapidAPIProxyWithoutConfiguredHeaders(t *testing.T) {
	e := newGatedEcho(nil)

	req := httptest.NewRequest(http.MethodGet, "/stations", nil)
	req.Header.Set("x-rapidapi-host", "meteo.p.rapidapi.com")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestErrorHandlerRendersEchoErrors(t *testing.T) {
	e := echo.New()
	SetupErrorHandler(e)
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusServiceUnavailable, "db down") })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestSetupRequestIDKeepsIncomingID(t *testing.T) {
	e := echo.New()
	SetupRequestID(e)
	e.GET("/ping", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Len(t, rec.Header().Get(echo.HeaderXRequestID), 36)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(echo.HeaderXRequestID, "from-proxy")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "from-proxy", rec.Header().Get(echo.HeaderXRequestID))
}

func TestSkipRequestLog(t *testing.T) {
	e := echo.New()
	for path, want := range map[string]bool{
		"/ping":               true,
		"/api/health":         true,
		"/swagger/index.html": true,
		"/stations":           false,
		"/station/nearby":     false,
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, path, nil), httptest.NewRecorder())
		assert.Equal(t, want, skipRequestLog(c), path)
	}
}
