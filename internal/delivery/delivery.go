// Package delivery defines the contract every transport adapter satisfies.
package delivery

import "context"

// Delivery is a long-running server bound to the application lifecycle. Serve
// blocks until the server stops or the context is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
