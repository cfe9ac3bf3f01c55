// Package worker contains the background delivery: a fixed-interval
// runner that keeps the default global admin account reconciled.
package worker

import (
	"context"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/usecase"

	"go.uber.org/fx"
)

const defaultReconcileInterval = time.Minute

// ServerParams holds dependencies for the reconciliation worker.
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	DGAA   usecase.DGAAUsecase
}

type reconcileWorker struct {
	interval time.Duration
	logger   *slog.Logger
	dgaa     usecase.DGAAUsecase
	cancel   context.CancelFunc
}

// NewServer creates the reconciliation worker. It runs one reconcile pass
// immediately on start, then repeats on the configured interval.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	interval := params.Cfg.DGAA.Interval
	if interval <= 0 {
		interval = defaultReconcileInterval
	}

	srv := &reconcileWorker{
		interval: interval,
		logger:   params.Logger,
		dgaa:     params.DGAA,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the reconciliation loop until the context is cancelled.
func (s *reconcileWorker) Serve(ctx context.Context) error {
	ctx, s.cancel = context.WithCancel(ctx)

	s.logger.Info("Starting admin reconciliation worker", slog.Duration("interval", s.interval))
	s.reconcile(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			s.reconcile(ctx)
		}
	}
}

func (s *reconcileWorker) reconcile(ctx context.Context) {
	// A failed pass is retried on the next tick; the loop never dies.
	if err := s.dgaa.Reconcile(ctx); err != nil {
		s.logger.Error("Admin reconciliation failed", slog.Any("error", err))
	}
}

func (s *reconcileWorker) stop(ctx context.Context) error {
	s.logger.Info("Shutting down admin reconciliation worker")
	if s.cancel != nil {
		s.cancel()
	}

	return nil
}
