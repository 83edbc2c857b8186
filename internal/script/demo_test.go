package script

import (
	"testing"

	"minikern/internal/kern"
)

func TestDemoScriptsBuild(t *testing.T) {
	table, err := kern.BuildScripts(Demo())
	if err != nil {
		t.Fatalf("demo workload does not build: %v", err)
	}

	call, ok := table.Step(2, 3)
	if !ok || call.Kind != kern.CallYield {
		t.Fatalf("task 2 pc 3 = %v, %v, want yield", call, ok)
	}
	call, ok = table.Step(3, 4)
	if !ok || call.Kind != kern.CallBlock {
		t.Fatalf("task 3 pc 4 = %v, %v, want block", call, ok)
	}
}

func TestDemoWorkloadRunsToCompletion(t *testing.T) {
	specs := Demo()
	table, err := kern.BuildScripts(specs)
	if err != nil {
		t.Fatal(err)
	}
	rec := kern.NewRecorder()
	k := kern.New(kern.Config{SliceTicks: 3}, table.Step, rec)

	for _, s := range specs {
		k.Spawn(s.Name, s.Priority)
	}
	k.Schedule()

	terminated := false
	for i := 0; i < 100; i++ {
		if !k.Tick() {
			terminated = true
			break
		}
	}
	if !terminated {
		t.Fatal("demo workload did not terminate within 100 ticks")
	}
	if k.Running() != nil || len(k.ReadySnapshot()) != 0 {
		t.Fatal("termination reported with tasks still live")
	}

	if exits := rec.Filter(kern.EventExit); len(exits) != 2 {
		t.Errorf("exit events = %v, want two", exits)
	}
	if blocks := rec.Filter(kern.EventBlock); len(blocks) != 1 {
		t.Errorf("block events = %v, want one", blocks)
	}
	if prints := rec.Filter(kern.EventPrint); len(prints) != 2 {
		t.Errorf("print events = %v, want two", prints)
	}
}
