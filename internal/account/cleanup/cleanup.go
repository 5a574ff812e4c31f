package cleanup

import (
	"context"
	"time"

	"github.com/profiled/accounts/internal/common/logger"
)

type Pruner interface {
	PruneExpired(ctx context.Context) (int, error)
}

// StartSessionCleanup periodically prunes expired session tokens until
// the context is cancelled.
func StartSessionCleanup(ctx context.Context, pruner Pruner, interval time.Duration, log *logger.Logger) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Infof("session cleanup started (interval: %v)", interval)

		for {
			select {
			case <-ctx.Done():
				log.Infof("session cleanup stopped")
				return
			case <-ticker.C:
				pruned, err := pruner.PruneExpired(ctx)
				if err != nil {
					log.Errorf("session cleanup run failed: %v", err)
					continue
				}
				if pruned > 0 {
					log.Infof("session cleanup removed %d expired tokens", pruned)
				}
			}
		}
	}()
}
