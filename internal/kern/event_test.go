package kern

import "testing"

func TestEventKindStrings(t *testing.T) {
	cases := map[EventKind]string{
		EventIdle:     "Idle",
		EventSpawn:    "Spawn",
		EventDispatch: "Dispatch",
		EventRequeue:  "Requeue",
		EventYield:    "Yield",
		EventPrint:    "Print",
		EventExit:     "Exit",
		EventBlock:    "Block",
		EventKind(99): "Unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestMultiSinkFansOut(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	m := MultiSink{a, nil, b}

	m.Record(Event{Kind: EventSpawn, TaskID: 1})

	if len(a.Snapshot()) != 1 || len(b.Snapshot()) != 1 {
		t.Fatalf("fan-out missed a sink: %v / %v", a.Snapshot(), b.Snapshot())
	}
}

func TestRecorderSnapshotIsCopy(t *testing.T) {
	rec := NewRecorder()
	rec.Record(Event{Kind: EventSpawn, TaskID: 1})

	snap := rec.Snapshot()
	snap[0].TaskID = 42

	if rec.Snapshot()[0].TaskID != 1 {
		t.Fatal("snapshot aliases recorder storage")
	}
}
