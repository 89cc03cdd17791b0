// Package metrics defines the instrumentation surface for parse
// outcomes. Like logging, recording is injected by the embedder; the
// core never touches a counter directly.
package metrics

import "time"

type Recorder interface {
	IncCounter(name string, labels map[string]string)
	ObserveLatency(name string, duration time.Duration, labels map[string]string)
}
