package youtube

import (
	"fmt"
	"sync"
	"time"

	"github.com/arim/yt-utility-go/internal/constants"
	"go.uber.org/zap"
)

// QuotaExceededError is returned before a call would push daily usage past
// the configured safety margin.
type QuotaExceededError struct {
	Used      int
	Limit     int
	Requested int
	ResetTime time.Time
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("quota exceeded: used %d/%d, requested %d, resets %s",
		e.Used, e.Limit, e.Requested, e.ResetTime.Format(time.RFC3339))
}

// quotaTracker accounts Data API units locally. The API resets quota at
// midnight Pacific, so the tracker does too.
type quotaTracker struct {
	mu     sync.Mutex
	used   int
	reset  time.Time
	logger *zap.Logger
}

func newQuotaTracker(logger *zap.Logger) *quotaTracker {
	return &quotaTracker{
		reset:  nextQuotaReset(),
		logger: logger,
	}
}

func nextQuotaReset() time.Time {
	pt, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		pt = time.FixedZone("PT", -8*60*60)
	}
	now := time.Now().In(pt)
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, pt)
}

func (q *quotaTracker) check(cost int) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if time.Now().After(q.reset) {
		q.used = 0
		q.reset = nextQuotaReset()
		q.logger.Info("YouTube API quota auto-reset", zap.Time("nextReset", q.reset))
	}

	limit := constants.QuotaConfig.DailyLimit - constants.QuotaConfig.SafetyMargin
	if q.used+cost > limit {
		return &QuotaExceededError{
			Used:      q.used,
			Limit:     constants.QuotaConfig.DailyLimit,
			Requested: cost,
			ResetTime: q.reset,
		}
	}
	return nil
}

func (q *quotaTracker) consume(cost int) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.used += cost
	remaining := constants.QuotaConfig.DailyLimit - q.used

	q.logger.Debug("YouTube API quota consumed",
		zap.Int("cost", cost),
		zap.Int("used", q.used),
		zap.Int("remaining", remaining))

	if remaining < constants.QuotaConfig.SafetyMargin {
		q.logger.Warn("YouTube API quota running low",
			zap.Int("remaining", remaining),
			zap.Time("resetTime", q.reset))
	}
}
