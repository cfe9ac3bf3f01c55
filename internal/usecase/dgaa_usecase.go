package usecase

import "context"

// DGAAUsecase maintains the default global application admin account.
type DGAAUsecase interface {
	// Reconcile ensures exactly one account with the configured DGAA email
	// exists and holds the DGAA role. Idempotent; safe to run on a timer.
	Reconcile(ctx context.Context) error
}
