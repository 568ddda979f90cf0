package trace

import "github.com/ozkanacar/bolumrag/internal/logging"

// Sink consumes trace events. Implementations are invoked synchronously
// from the pipeline goroutine.
type Sink interface {
	Record(event Event) error
}

// Bus fans events out to every registered sink in registration order. A
// failing sink is logged and skipped; tracing never fails the pipeline.
type Bus struct {
	sinks []Sink
}

// NewBus returns a bus with the given sinks, in order.
func NewBus(sinks ...Sink) *Bus {
	return &Bus{sinks: sinks}
}

// Register appends a sink to the fan-out order.
func (b *Bus) Register(sink Sink) {
	b.sinks = append(b.sinks, sink)
}

// Publish delivers the event to every sink.
func (b *Bus) Publish(event Event) {
	for _, sink := range b.sinks {
		if err := sink.Record(event); err != nil {
			logging.LogEvent("trace sink failed for stage %s: %v", event.Stage, err)
		}
	}
}
