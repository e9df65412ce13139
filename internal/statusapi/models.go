package statusapi

import (
	"time"

	"disco/internal/driver"
)

// ApiResponse is the envelope of every response.
type ApiResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Running   bool      `json:"running"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

type StatusResponse struct {
	driver.Snapshot
	Uptime string `json:"uptime"`
}

type ColorResponse struct {
	Clear  string  `json:"clear"`
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Factor float64 `json:"factor"`
}
