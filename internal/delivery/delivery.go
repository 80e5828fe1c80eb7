// Package delivery defines the contract every transport entry point satisfies.
package delivery

import "context"

// Delivery is a long-running transport (an HTTP server here) driven by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
