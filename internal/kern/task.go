package kern

import "fmt"

// TaskID uniquely identifies a task in the kernel.
type TaskID uint64

// State is the lifecycle state of a task.
type State int

const (
	StateReady State = iota
	StateRunning
	StateBlocked
	StateExited
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StateRunning:
		return "Running"
	case StateBlocked:
		return "Blocked"
	case StateExited:
		return "Exited"
	default:
		return "Unknown"
	}
}

const (
	MinPriority = 0
	MaxPriority = 40
)

// Task represents one schedulable task unit.
type Task struct {
	ID       TaskID
	Name     string
	State    State
	PC       uint64 // program counter, advances by one per running tick
	Priority int    // recorded for future policies; the round-robin ignores it
}

// newTask creates a Ready task with a zeroed program counter.
// IDs are assigned by Kernel.Spawn only, never by callers.
func newTask(id TaskID, name string, priority int) *Task {
	// clamp priority within the legal region.
	if priority < MinPriority {
		priority = MinPriority
	} else if priority > MaxPriority {
		priority = MaxPriority
	}

	return &Task{
		ID:       id,
		Name:     name,
		State:    StateReady,
		PC:       0,
		Priority: priority,
	}
}

func (t *Task) String() string {
	return fmt.Sprintf("[Task %d] (%s): State=%s, PC=%d", t.ID, t.Name, t.State, t.PC)
}
