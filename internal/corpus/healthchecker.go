package corpus

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// HealthChecker reports whether a corpus snapshot is loaded. The service must
// not answer questions before the first successful load, so this checker
// gates overall service health.
type HealthChecker struct {
	holder *Holder
	log    zerolog.Logger
}

// NewHealthChecker creates a checker over the snapshot holder.
func NewHealthChecker(holder *Holder, log zerolog.Logger) *HealthChecker {
	return &HealthChecker{holder: holder, log: log}
}

// Name returns the checker name.
func (hc *HealthChecker) Name() string {
	return "corpus"
}

// IsHealthy is true once a snapshot has been published. It reads the holder
// directly; there is no probe to run or cache.
func (hc *HealthChecker) IsHealthy() bool {
	return hc.holder.Load() != nil
}

// Start logs health transitions at the polling cadence. Health itself
// derives from the published snapshot pointer.
func (hc *HealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := hc.IsHealthy()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := hc.IsHealthy()
			if cur != prev {
				if cur {
					hc.log.Info().Str("checker", hc.Name()).Msg("corpus loaded")
				} else {
					hc.log.Error().Stack().Str("checker", hc.Name()).Msg("corpus missing")
				}
				prev = cur
			}
		}
	}
}
