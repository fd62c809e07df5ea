// Package lifecycle holds shared constants for application startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown steps such as the initial
// database ping and the HTTP server drain.
const DefaultTimeout = 10 * time.Second
