// Package delivery defines the contract every transport surface of the
// application fulfils, so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a server that accepts work until its context is cancelled
// or it is shut down through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
