// Package delivery defines the contract shared by every inbound transport of
// the application, HTTP servers and background runners alike.
package delivery

import "context"

// Delivery is a long-running transport serving requests or events until the
// context is cancelled or the process stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
