// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) managed by
// the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
