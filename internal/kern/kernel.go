// internal/kern/kernel.go

package kern

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// Kernel implements a single-CPU round-robin scheduler with a tick-based
// preemption timer. It is explicitly single-threaded: every mutation happens
// inside a caller-driven Tick, Spawn, or Schedule call, and nothing here is
// safe for concurrent use.
type Kernel struct {
	nextID  TaskID
	ready   *linkedlistqueue.Queue // FIFO of *Task, all in StateReady
	running *Task                  // the single CPU slot, nil when idle
	ticks   uint64
	slice   uint64 // preemption period in ticks

	prog Program
	sink Sink
}

// New creates a Kernel with the given preemption period, task-logic
// collaborator, and trace sink. A nil prog means tasks never issue calls;
// a nil sink discards all events.
func New(cfg Config, prog Program, sink Sink) *Kernel {
	if prog == nil {
		prog = func(TaskID, uint64) (Call, bool) { return Call{}, false }
	}
	if sink == nil {
		sink = NopSink{}
	}
	slice := cfg.SliceTicks
	if slice == 0 {
		slice = defaultSliceTicks
	}

	return &Kernel{
		nextID: 1,
		ready:  linkedlistqueue.New(),
		slice:  slice,
		prog:   prog,
		sink:   sink,
	}
}

// Spawn creates a new Ready task at the tail of the ready queue and returns
// its id. Ids are assigned monotonically and never reused.
func (k *Kernel) Spawn(name string, priority int) TaskID {
	t := newTask(k.nextID, name, priority)
	k.nextID++
	k.ready.Enqueue(t)

	k.sink.Record(Event{Tick: k.ticks, Kind: EventSpawn, TaskID: t.ID, Message: t.Name})
	return t.ID
}

// Schedule rotates the CPU slot: the current task, if it is still Running,
// goes back to the tail of the ready queue; the head of the queue, if any,
// becomes the new running task. A task already moved to Blocked or Exited by
// the dispatcher has left the slot and is not requeued. Schedule never fails.
func (k *Kernel) Schedule() {
	if cur := k.running; cur != nil {
		k.running = nil
		if cur.State == StateRunning {
			cur.State = StateReady
			k.ready.Enqueue(cur)
			k.sink.Record(Event{Tick: k.ticks, Kind: EventRequeue, TaskID: cur.ID, PC: cur.PC})
		}
	}

	if v, ok := k.ready.Dequeue(); ok {
		next := v.(*Task)
		next.State = StateRunning
		k.running = next
		k.sink.Record(Event{Tick: k.ticks, Kind: EventDispatch, TaskID: next.ID, PC: next.PC})
	} else {
		k.sink.Record(Event{Tick: k.ticks, Kind: EventIdle})
	}
}

// Tick advances the simulation by one unit of time. It returns false once
// both the CPU slot and the ready queue are empty, meaning no work remains.
func (k *Kernel) Tick() bool {
	k.ticks++

	// fixed-length time slice: preempt regardless of what the task is doing.
	if k.ticks%k.slice == 0 {
		k.Schedule()
	}

	if t := k.running; t != nil {
		t.PC++
		if call, ok := k.prog(t.ID, t.PC); ok {
			k.HandleCall(call)
		}
		return true
	}

	if k.ready.Empty() {
		return false
	}
	// slot vacated with work still queued: refill without waiting for the
	// next preemption boundary.
	k.Schedule()
	return true
}

// HandleCall interprets a kernel call against the task in the CPU slot.
// With an empty slot, Exit, Print and Block are no-ops and Yield degenerates
// to an idle Schedule; none of them ever panic.
func (k *Kernel) HandleCall(c Call) {
	switch c.Kind {
	case CallYield:
		var id TaskID
		var pc uint64
		if t := k.running; t != nil {
			id, pc = t.ID, t.PC
		}
		k.sink.Record(Event{Tick: k.ticks, Kind: EventYield, TaskID: id, PC: pc})
		k.Schedule()

	case CallExit:
		if t := k.running; t != nil {
			k.running = nil
			t.State = StateExited
			k.sink.Record(Event{Tick: k.ticks, Kind: EventExit, TaskID: t.ID, PC: t.PC})
		}

	case CallPrint:
		if t := k.running; t != nil {
			k.sink.Record(Event{Tick: k.ticks, Kind: EventPrint, TaskID: t.ID, PC: t.PC, Message: c.Message})
		}

	case CallBlock:
		if t := k.running; t != nil {
			k.running = nil
			t.State = StateBlocked
			k.sink.Record(Event{Tick: k.ticks, Kind: EventBlock, TaskID: t.ID, PC: t.PC})
			// unlike Exit, Block refills the slot in the same tick.
			k.Schedule()
		}
	}
}

// Running returns the task in the CPU slot, or nil when idle.
func (k *Kernel) Running() *Task { return k.running }

// ReadySnapshot returns the ready queue contents in dispatch order.
func (k *Kernel) ReadySnapshot() []*Task {
	vals := k.ready.Values()
	out := make([]*Task, 0, len(vals))
	for _, v := range vals {
		out = append(out, v.(*Task))
	}
	return out
}

// Ticks returns the number of ticks elapsed so far.
func (k *Kernel) Ticks() uint64 { return k.ticks }
