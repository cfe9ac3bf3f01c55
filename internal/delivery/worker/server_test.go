package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReconciler struct {
	calls atomic.Int64
}

func (r *countingReconciler) Reconcile(ctx context.Context) error {
	r.calls.Add(1)

	return nil
}

func TestReconcileWorker_RunsImmediatelyAndOnTicks(t *testing.T) {
	reconciler := &countingReconciler{}
	srv := &reconcileWorker{
		interval: 10 * time.Millisecond,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		dgaa:     reconciler,
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	assert.Eventually(t, func() bool {
		return reconciler.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}
