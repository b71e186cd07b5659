// Package delivery defines the inbound adapters that drive the usecases.
package delivery

import "context"

// Delivery is a long-running inbound server.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
