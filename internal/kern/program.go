package kern

import "fmt"

// Program is the task-logic collaborator: given a task id and its program
// counter, it may return the kernel call the task issues at that point. It
// stands in for real executable code and must be deterministic; the kernel
// consults it exactly once per running tick.
type Program func(id TaskID, pc uint64) (Call, bool)

// ScriptTable is a Program backed by per-task call tables.
type ScriptTable map[TaskID]map[uint64]Call

// Step looks up the scripted call for a task at a program counter.
func (st ScriptTable) Step(id TaskID, pc uint64) (Call, bool) {
	c, ok := st[id][pc]
	return c, ok
}

// BuildScripts turns config task entries into a ScriptTable, assigning ids
// by position: the first entry scripts task 1, the second task 2, and so on.
func BuildScripts(specs []TaskSpec) (ScriptTable, error) {
	table := make(ScriptTable, len(specs))
	for i, spec := range specs {
		id := TaskID(i + 1)
		steps := make(map[uint64]Call, len(spec.Script))
		for _, step := range spec.Script {
			kind, err := ParseCallKind(step.Call)
			if err != nil {
				return nil, fmt.Errorf("task %q: pc %d: %w", spec.Name, step.PC, err)
			}
			if _, dup := steps[step.PC]; dup {
				return nil, fmt.Errorf("task %q: duplicate script entry for pc %d", spec.Name, step.PC)
			}
			steps[step.PC] = Call{Kind: kind, Message: step.Message}
		}
		table[id] = steps
	}
	return table, nil
}
