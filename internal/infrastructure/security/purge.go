package security

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"github.com/niyatanya/habit-tracker/internal/domain/auth"
	"github.com/niyatanya/habit-tracker/internal/pkg/logger"
)

// PurgeSchedule is how often expired in-memory revocations are dropped
const PurgeSchedule = "@every 10m"

type purger interface {
	Purge() int
}

// SchedulePurge registers a periodic Purge of store on c when the store
// needs one. Redis expires keys itself, so it reports false for it.
func SchedulePurge(c *cron.Cron, store auth.SessionStore, logger logger.Logger) (bool, error) {
	p, ok := store.(purger)
	if !ok {
		return false, nil
	}

	_, err := c.AddFunc(PurgeSchedule, func() {
		if n := p.Purge(); n > 0 {
			logger.Debug("Purged expired sessions: ", n)
		}
	})
	if err != nil {
		return false, fmt.Errorf("failed to schedule session purge: %w", err)
	}
	return true, nil
}
