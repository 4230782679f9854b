// Package lifecycle holds timing constants shared by start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every fx start or stop hook (DB ping, server shutdown, queue close).
const DefaultTimeout = 10 * time.Second
