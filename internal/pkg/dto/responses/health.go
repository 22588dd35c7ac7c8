package responses

import "time"

type HealthCheck struct {
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Uptime       string            `json:"uptime"`
	Version      string            `json:"version"`
	Dependencies map[string]string `json:"dependencies"`
}
