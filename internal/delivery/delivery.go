// Package delivery defines the contract every transport (HTTP API, worker) satisfies.
package delivery

import "context"

// Delivery is a long-running transport serving requests until shutdown.
type Delivery interface {
	Serve(ctx context.Context) error
}
