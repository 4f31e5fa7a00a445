// Package lifecycle holds shared values for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook and graceful shutdown.
const DefaultTimeout = 10 * time.Second
