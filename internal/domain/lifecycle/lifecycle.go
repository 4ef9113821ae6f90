// Package lifecycle holds shared process lifecycle settings.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown and start-up hooks.
const DefaultTimeout = 15 * time.Second
