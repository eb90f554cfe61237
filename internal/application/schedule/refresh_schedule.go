package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"taskboard/pkg/log"
	"taskboard/pkg/msg"
)

// RefreshScheduler periodically asks the board to re-fetch the task list.
type RefreshScheduler struct {
	cron     *cron.Cron
	interval time.Duration
	refresh  func()
}

// NewRefreshScheduler builds a scheduler calling refresh every interval.
// A zero interval disables it: Start becomes a no-op.
func NewRefreshScheduler(interval time.Duration, refresh func()) *RefreshScheduler {
	return &RefreshScheduler{
		cron:     cron.New(),
		interval: interval,
		refresh:  refresh,
	}
}

// Enabled reports whether Start schedules anything.
func (s *RefreshScheduler) Enabled() bool {
	return s.interval > 0
}

// Start registers the refresh job and starts the cron loop.
func (s *RefreshScheduler) Start() error {
	if !s.Enabled() {
		return nil
	}
	if s.interval < time.Second {
		return fmt.Errorf("%s", msg.GetMessage("schedule.error.invalid-interval", s.interval.String()))
	}

	if _, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.ExecuteScheduledRefresh); err != nil {
		return fmt.Errorf("failed to schedule auto refresh: %w", err)
	}

	s.cron.Start()
	log.Info(msg.GetMessage("board.refresh-scheduled", s.interval.String()))
	return nil
}

// ExecuteScheduledRefresh runs one refresh.
func (s *RefreshScheduler) ExecuteScheduledRefresh() {
	requestID := uuid.New().String()

	log.Debug(msg.GetMessage("schedule.refresh.start"), zap.String("request_id", requestID))
	s.refresh()
	log.Debug(msg.GetMessage("schedule.refresh.end"), zap.String("request_id", requestID))
}

// Stop stops the cron loop and waits for a running refresh to return.
func (s *RefreshScheduler) Stop() {
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}
}
