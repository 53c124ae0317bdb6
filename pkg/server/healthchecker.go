package server

import "context"

// HealthChecker reports whether a dependency of the service can serve requests
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// HealthCheckers is healthy only when every member is
type HealthCheckers []HealthChecker

func (hcs HealthCheckers) Healthy(ctx context.Context) bool {
	for _, hc := range hcs {
		if !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
