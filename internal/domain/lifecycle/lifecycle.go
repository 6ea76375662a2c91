// Package lifecycle holds shared timing constants for fx start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook (DB ping, HTTP shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
