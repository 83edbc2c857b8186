// Package script holds ready-made task workloads for the demo binary.
package script

import "minikern/internal/kern"

// Demo returns the canned three-task workload: a task that prints at its
// halfway point and exits, a worker that yields early and exits late, and an
// I/O-ish task that blocks and never comes back.
func Demo() []kern.TaskSpec {
	return []kern.TaskSpec{
		{
			Name:     "Init_Task",
			Priority: 10,
			Script: []kern.ScriptStep{
				{PC: 5, Call: "print", Message: "Task 1 is halfway!"},
				{PC: 10, Call: "exit"},
			},
		},
		{
			Name:     "WebApp_Worker",
			Priority: 5,
			Script: []kern.ScriptStep{
				{PC: 3, Call: "yield"},
				{PC: 8, Call: "print", Message: "Task 2 is doing work."},
				{PC: 12, Call: "exit"},
			},
		},
		{
			Name:     "File_IO_Task",
			Priority: 8,
			Script: []kern.ScriptStep{
				{PC: 4, Call: "block"},
			},
		},
	}
}
