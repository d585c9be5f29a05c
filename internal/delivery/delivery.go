// Package delivery holds the process entry points (HTTP servers, queue consumers, relays).
package delivery

import "context"

// Delivery is a long running entry point started by the application.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
