package scheduler

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"slack-daily-agent/pkg/logger"
)

// DefaultPollInterval is deliberately coarse: the design tolerates firing
// anywhere within an hour of the configured minute.
const DefaultPollInterval = time.Hour

var timeFormat = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// Scheduler fires a callback once immediately and then once per day at a
// configured HH:MM, checking for due work at a coarse poll interval.
type Scheduler struct {
	hour         int
	minute       int
	pollInterval time.Duration
	now          func() time.Time
}

type Option func(*Scheduler)

func WithPollInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		s.pollInterval = d
	}
}

func WithNow(now func() time.Time) Option {
	return func(s *Scheduler) {
		s.now = now
	}
}

// New validates scheduleTime ("HH:MM", 24h) and returns a scheduler armed
// for that time of day.
func New(scheduleTime string, opts ...Option) (*Scheduler, error) {
	m := timeFormat.FindStringSubmatch(scheduleTime)
	if m == nil {
		return nil, fmt.Errorf("invalid schedule time %q, expected HH:MM", scheduleTime)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	s := &Scheduler{
		hour:         hour,
		minute:       minute,
		pollInterval: DefaultPollInterval,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Run invokes fire once, then daily at the configured time, blocking until
// ctx is cancelled. Returns ctx.Err() on cancellation.
func (s *Scheduler) Run(ctx context.Context, fire func()) error {
	fire()

	next := s.nextAfter(s.now())
	logger.Info("Scheduled daily send",
		logger.String("at", fmt.Sprintf("%02d:%02d", s.hour, s.minute)),
		logger.Any("next_run", next),
	)

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			now := s.now()
			if now.Before(next) {
				continue
			}
			fire()
			next = s.nextAfter(now)
		}
	}
}

// nextAfter returns the first configured fire time strictly after t.
func (s *Scheduler) nextAfter(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), t.Day(), s.hour, s.minute, 0, 0, t.Location())
	if !next.After(t) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
