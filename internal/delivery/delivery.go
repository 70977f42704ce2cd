// Package delivery defines the contract every transport entrypoint fulfills.
package delivery

import "context"

// Delivery is a serveable transport (HTTP today). cmd wires one or more of
// these into the fx lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
