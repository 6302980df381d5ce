package runlogservice

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestService(t *testing.T) *RunlogService {
	t.Helper()

	svc, err := NewRunlogService(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("NewRunlogService: %v", err)
	}
	t.Cleanup(func() { svc.Close() })

	return svc
}

func TestRecordAndListRuns(t *testing.T) {
	svc := openTestService(t)

	started := time.Now().Add(-time.Minute).Truncate(time.Second)
	run := RunRecord{
		ID:         "run-1",
		Variant:    "venv",
		Package:    "notebook",
		VenvDir:    "jupyter-venv",
		StartedAt:  started,
		FinishedAt: started.Add(30 * time.Second),
		Status:     "ok",
	}
	steps := []StepRecord{
		{Name: "detect operating system", Status: "ok", Detail: "apt"},
		{Name: "create virtual environment", Status: "skipped", Detail: "already exists"},
		{Name: "install notebook package", Status: "ok", DurationMs: 12000},
	}

	if err := svc.RecordRun(run, steps); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := svc.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("ListRuns returned %d runs, want 1", len(runs))
	}

	got := runs[0]
	if got.ID != run.ID || got.Variant != run.Variant || got.Package != run.Package || got.VenvDir != run.VenvDir {
		t.Errorf("run round-trip mismatch: got %+v", got)
	}
	if got.Status != "ok" || got.FailedStep != "" {
		t.Errorf("unexpected status fields: %+v", got)
	}
	if !got.StartedAt.Equal(started) {
		t.Errorf("StartedAt = %v, want %v", got.StartedAt, started)
	}
}

func TestRunStepsOrdered(t *testing.T) {
	svc := openTestService(t)

	run := RunRecord{
		ID:         "run-2",
		Variant:    "system",
		Package:    "notebook",
		StartedAt:  time.Now(),
		FinishedAt: time.Now(),
		Status:     "failed",
		FailedStep: "install notebook package",
	}
	steps := []StepRecord{
		{Name: "detect operating system", Status: "ok"},
		{Name: "ensure python 3 interpreter", Status: "ok"},
		{Name: "install notebook package", Status: "failed", Detail: "exit status 1"},
	}

	if err := svc.RecordRun(run, steps); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	got, err := svc.RunSteps("run-2")
	if err != nil {
		t.Fatalf("RunSteps: %v", err)
	}
	if len(got) != len(steps) {
		t.Fatalf("RunSteps returned %d steps, want %d", len(got), len(steps))
	}

	for i, st := range got {
		if st.Seq != i {
			t.Errorf("step %d has seq %d", i, st.Seq)
		}
		if st.Name != steps[i].Name {
			t.Errorf("step %d name = %q, want %q", i, st.Name, steps[i].Name)
		}
	}
}

func TestListRunsNewestFirst(t *testing.T) {
	svc := openTestService(t)

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"old", "mid", "new"} {
		run := RunRecord{
			ID:         id,
			Variant:    "system",
			Package:    "notebook",
			StartedAt:  base.Add(time.Duration(i) * time.Minute),
			FinishedAt: base.Add(time.Duration(i)*time.Minute + 10*time.Second),
			Status:     "ok",
		}
		if err := svc.RecordRun(run, nil); err != nil {
			t.Fatalf("RecordRun(%s): %v", id, err)
		}
	}

	runs, err := svc.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("ListRuns returned %d runs, want 2", len(runs))
	}
	if runs[0].ID != "new" || runs[1].ID != "mid" {
		t.Errorf("unexpected order: %s, %s", runs[0].ID, runs[1].ID)
	}
}
