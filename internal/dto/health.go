package dto

// HealthResponse reports the state of the service dependencies
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
