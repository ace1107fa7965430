package sweep

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard/internal/domain"
)

// ExpiredTaskSweeper is the operation the sweeper drives on every tick.
type ExpiredTaskSweeper interface {
	SweepExpired(ctx context.Context) ([]*domain.Task, error)
}

// SweeperConfig holds configuration for the sweeper
type SweeperConfig struct {
	// Interval is the time between sweeps.
	// If zero or negative, defaults to one minute.
	Interval time.Duration
}

// DefaultSweeperConfig returns a SweeperConfig with reasonable defaults
func DefaultSweeperConfig() SweeperConfig {
	return SweeperConfig{
		Interval: time.Minute,
	}
}

// Sweeper calls SweepExpired on a fixed interval.
type Sweeper struct {
	target ExpiredTaskSweeper
	config SweeperConfig
	logger *slog.Logger
}

// NewSweeper creates a new Sweeper
func NewSweeper(target ExpiredTaskSweeper, config SweeperConfig, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "timeout_sweeper")

	if config.Interval <= 0 {
		logger.Warn("invalid sweep interval specified, using default",
			"specified_interval", config.Interval,
			"default_interval", DefaultSweeperConfig().Interval)
		config.Interval = DefaultSweeperConfig().Interval
	}

	return &Sweeper{
		target: target,
		config: config,
		logger: logger,
	}
}

// Interval returns the effective time between sweeps.
func (s *Sweeper) Interval() time.Duration {
	return s.config.Interval
}

// Run sweeps once per interval until ctx is cancelled. A failed sweep is
// logged and the loop carries on with the next tick. Run always returns nil;
// the error return lets it slot into an errgroup.
func (s *Sweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	s.logger.Info("timeout sweeper started", "interval", s.config.Interval.String())

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("timeout sweeper stopped")
			return nil

		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce performs a single sweep and returns the number of tasks it moved
// to Timeout.
func (s *Sweeper) RunOnce(ctx context.Context) int {
	expired, err := s.target.SweepExpired(ctx)
	if err != nil {
		s.logger.Error("timeout sweep failed", "error", err, "timed_out_count", len(expired))
		return len(expired)
	}

	if len(expired) > 0 {
		s.logger.Info("timed out expired tasks", "count", len(expired))
	} else {
		s.logger.Debug("timeout sweep found no expired tasks")
	}
	return len(expired)
}
