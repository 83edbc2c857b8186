package kern

import "fmt"

// CallKind represents the type of kernel call a running task can issue.
type CallKind int

const (
	CallYield CallKind = iota
	CallPrint
	CallExit
	CallBlock
)

func (ck CallKind) String() string {
	switch ck {
	case CallYield:
		return "Yield"
	case CallPrint:
		return "Print"
	case CallExit:
		return "Exit"
	case CallBlock:
		return "Block"
	default:
		return "Unknown"
	}
}

// Call is one service request from the running task. It is produced once
// per tick by the task-logic collaborator and consumed immediately.
type Call struct {
	Kind    CallKind
	Message string // payload for CallPrint, empty otherwise
}

// ParseCallKind maps the config spelling of a call to its kind.
func ParseCallKind(name string) (CallKind, error) {
	switch name {
	case "yield":
		return CallYield, nil
	case "print":
		return CallPrint, nil
	case "exit":
		return CallExit, nil
	case "block":
		return CallBlock, nil
	default:
		return 0, fmt.Errorf("unknown kernel call %q", name)
	}
}
