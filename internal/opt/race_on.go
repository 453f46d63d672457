//go:build race

package opt

// Race_ under race detector: callers skip active spinning, since the
// instrumented atomics make each spin iteration far more expensive.
const Race_ = true
