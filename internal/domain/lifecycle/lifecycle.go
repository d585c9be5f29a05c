// Package lifecycle holds shared timing constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long a server or client may take to shut down.
const DefaultTimeout = 10 * time.Second
