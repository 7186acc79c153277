package monitoring

import (
	"context"
	"log/slog"
	"time"
)

const healthcheckTimeout = 5 * time.Second

// Probe reports whether a model backend is reachable. Probes run within
// the span of the health request; nothing polls in the background.
type Probe func(ctx context.Context) bool

// AlwaysHealthy covers in-process backends with no transport to fail.
func AlwaysHealthy(_ context.Context) bool { return true }

// CheckAll runs every registered probe with a bounded deadline and returns
// the per-backend verdicts.
func CheckAll(ctx context.Context, probes map[string]Probe) map[string]bool {
	results := make(map[string]bool, len(probes))
	for name, probe := range probes {
		probeCtx, cancel := context.WithTimeout(ctx, healthcheckTimeout)
		healthy := probe(probeCtx)
		cancel()

		if !healthy {
			slog.Warn("[HealthCheck] Backend is unhealthy", slog.String("backend", name))
		}
		results[name] = healthy
	}
	return results
}
