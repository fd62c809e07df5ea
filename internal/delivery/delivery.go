// Package delivery defines the contract implemented by every inbound transport.
package delivery

import "context"

// Delivery is a server that accepts inbound traffic until its context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
