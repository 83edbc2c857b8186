package main

import (
	"fmt"

	"minikern/internal/kern"
)

// consoleSink renders kernel trace events as console lines.
type consoleSink struct{}

func (consoleSink) Record(ev kern.Event) {
	switch ev.Kind {
	case kern.EventSpawn:
		fmt.Printf("[KERNEL] Spawning: [Task %d] (%s)\n", ev.TaskID, ev.Message)
	case kern.EventDispatch:
		fmt.Printf("[SCHEDULER] Dispatching: Task %d (PC=%d)\n", ev.TaskID, ev.PC)
	case kern.EventRequeue:
		fmt.Printf("[SCHEDULER] Time slice ended for %d. Re-queuing.\n", ev.TaskID)
	case kern.EventIdle:
		fmt.Println("[SCHEDULER] Ready queue empty. Idling.")
	case kern.EventYield:
		fmt.Printf("[KERNEL] Task %d requested a Yield.\n", ev.TaskID)
	case kern.EventPrint:
		fmt.Printf("[KERNEL/OUT] Task %d says: %s\n", ev.TaskID, ev.Message)
	case kern.EventExit:
		fmt.Printf("[KERNEL] Task %d EXITED.\n", ev.TaskID)
	case kern.EventBlock:
		fmt.Printf("[KERNEL] Task %d BLOCKED. Requires a new schedule.\n", ev.TaskID)
	}
}
