package kern

import "testing"

func TestBuildScriptsAssignsIDsByPosition(t *testing.T) {
	specs := []TaskSpec{
		{Name: "first", Script: []ScriptStep{{PC: 4, Call: "yield"}}},
		{Name: "second", Script: []ScriptStep{{PC: 1, Call: "print", Message: "hi"}}},
	}
	table, err := BuildScripts(specs)
	if err != nil {
		t.Fatal(err)
	}

	call, ok := table.Step(1, 4)
	if !ok || call.Kind != CallYield {
		t.Fatalf("task 1 pc 4 = %v, %v", call, ok)
	}
	call, ok = table.Step(2, 1)
	if !ok || call.Kind != CallPrint || call.Message != "hi" {
		t.Fatalf("task 2 pc 1 = %v, %v", call, ok)
	}

	if _, ok := table.Step(1, 5); ok {
		t.Error("unscripted pc produced a call")
	}
	if _, ok := table.Step(3, 4); ok {
		t.Error("unknown task produced a call")
	}
}

func TestBuildScriptsRejectsUnknownCall(t *testing.T) {
	_, err := BuildScripts([]TaskSpec{
		{Name: "bad", Script: []ScriptStep{{PC: 1, Call: "sleep"}}},
	})
	if err == nil {
		t.Fatal("unknown call name accepted")
	}
}

func TestBuildScriptsRejectsDuplicatePC(t *testing.T) {
	_, err := BuildScripts([]TaskSpec{
		{Name: "bad", Script: []ScriptStep{
			{PC: 1, Call: "yield"},
			{PC: 1, Call: "exit"},
		}},
	})
	if err == nil {
		t.Fatal("duplicate pc accepted")
	}
}

func TestParseCallKind(t *testing.T) {
	cases := map[string]CallKind{
		"yield": CallYield,
		"print": CallPrint,
		"exit":  CallExit,
		"block": CallBlock,
	}
	for name, want := range cases {
		got, err := ParseCallKind(name)
		if err != nil || got != want {
			t.Errorf("ParseCallKind(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseCallKind("fork"); err == nil {
		t.Error("ParseCallKind accepted an unknown name")
	}
}
