package model

// HealthStatus represents the possible health status values
type HealthStatus string

const (
	StatusUp   HealthStatus = "UP"
	StatusDown HealthStatus = "DOWN"
)

// PingResponse is the body of the liveness probe.
type PingResponse struct {
	Status string `json:"status"`
}

// ComponentHealthStatus represents the health of one application component
type ComponentHealthStatus struct {
	Status  HealthStatus      `json:"status"`
	Details map[string]string `json:"details"`
}

// HealthResponse represents the health of the whole application
type HealthResponse struct {
	Status   HealthStatus          `json:"status"`
	Registry ComponentHealthStatus `json:"registry"`
	Upstream ComponentHealthStatus `json:"upstream"`
}
