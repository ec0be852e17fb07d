// Package delivery defines the contract every transport server fulfils.
package delivery

import "context"

// Delivery is a running transport for the application, such as the HTTP
// server. Serve blocks until the server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
