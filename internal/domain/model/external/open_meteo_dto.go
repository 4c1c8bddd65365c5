package external

// OpenMeteoPayload is the provider JSON document, relayed without a fixed schema.
type OpenMeteoPayload map[string]any

// APIErrorResponse represents error responses from the Open-Meteo API
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
