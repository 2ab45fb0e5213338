package storage

import (
	"testing"

	"github.com/partix-sim/partix/internal/world"
)

func sampleResult() *world.Result {
	return &world.Result{
		Times: []float64{0, 0.01, 0.02},
		States: [][]float64{
			{0, 5, 0, 0, 0, 0},
			{0, 4.9, 0, 0, -0.1, 0},
			{0, 4.7, 0, 0, -0.2, 0},
		},
		Metrics:    map[string]float64{"contacts": 2},
		StepsTaken: 2,
	}
}

func TestSaveListLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("bounce", 0.01, 0.02, 0.8, 1, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 1 || runs[0].ID != runID {
		t.Fatalf("List() = %+v, want one run %s", runs, runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatal(err)
	}
	if meta.Scene != "bounce" || meta.Particles != 1 {
		t.Errorf("metadata = %+v", meta)
	}
	if meta.Metrics["contacts"] != 2 {
		t.Errorf("metrics not persisted: %+v", meta.Metrics)
	}
}

func TestLoadStates(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	runID, err := st.Save("bounce", 0.01, 0.02, 0.8, 1, sampleResult())
	if err != nil {
		t.Fatal(err)
	}

	states, times, err := st.LoadStates(runID)
	if err != nil {
		t.Fatal(err)
	}
	if len(states) != 3 || len(times) != 3 {
		t.Fatalf("got %d states, %d times, want 3 each", len(states), len(times))
	}
	if states[1][1] != 4.9 {
		t.Errorf("states[1][1] = %v, want 4.9", states[1][1])
	}
	if times[2] != 0.02 {
		t.Errorf("times[2] = %v, want 0.02", times[2])
	}
}

func TestList_EmptyDir(t *testing.T) {
	st := New(t.TempDir() + "/missing")
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestLoad_Unknown(t *testing.T) {
	st := New(t.TempDir())
	st.Init()
	if _, err := st.Load("nope"); err == nil {
		t.Error("expected error for unknown run")
	}
}
