// internal/kern/event.go

package kern

// EventKind represents the type of kernel trace event.
type EventKind int

const (
	EventIdle EventKind = iota
	EventSpawn
	EventDispatch
	EventRequeue
	EventYield
	EventPrint
	EventExit
	EventBlock
)

func (ek EventKind) String() string {
	switch ek {
	case EventIdle:
		return "Idle"
	case EventSpawn:
		return "Spawn"
	case EventDispatch:
		return "Dispatch"
	case EventRequeue:
		return "Requeue"
	case EventYield:
		return "Yield"
	case EventPrint:
		return "Print"
	case EventExit:
		return "Exit"
	case EventBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Event is emitted on every scheduling decision and handled kernel call.
type Event struct {
	Tick    uint64
	Kind    EventKind
	TaskID  TaskID // zero when no task is involved (idle)
	PC      uint64
	Message string // task name on spawn, payload on print
}

// Sink receives kernel trace events. Record must not mutate kernel state;
// the concrete rendering (console, metrics, memory) is the sink's business.
type Sink interface {
	Record(ev Event)
}

// NopSink discards all events.
type NopSink struct{}

func (NopSink) Record(Event) {}

// MultiSink fans each event out to every sink in order.
type MultiSink []Sink

func (m MultiSink) Record(ev Event) {
	for _, s := range m {
		if s != nil {
			s.Record(ev)
		}
	}
}

// Recorder is an in-memory sink. The kernel is single-threaded, so no
// locking is needed; Snapshot copies so callers cannot alter history.
type Recorder struct {
	events []Event
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Record(ev Event) {
	r.events = append(r.events, ev)
}

// Snapshot returns a copy of all recorded events in emission order.
func (r *Recorder) Snapshot() []Event {
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Filter returns the recorded events of one kind, in emission order.
func (r *Recorder) Filter(kind EventKind) []Event {
	var out []Event
	for _, ev := range r.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}
