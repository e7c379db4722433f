package minio

import "time"

const (
	// HealthCheckTimeout bounds connection health probes.
	HealthCheckTimeout = 5 * time.Second
)
