package validation

import "testing"

func TestNewReport(t *testing.T) {
	r := NewReport()
	if !r.Valid {
		t.Error("new report should be valid")
	}
	if len(r.Errors) != 0 || len(r.Warnings) != 0 || len(r.Info) != 0 {
		t.Error("new report should have empty slices")
	}
}

func TestAddError(t *testing.T) {
	r := NewReport()
	r.AddError(Result{
		Level:   LevelSchema,
		Message: "bad value",
	})
	if r.Valid {
		t.Error("report with error should be invalid")
	}
	if len(r.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(r.Errors))
	}
	if r.Errors[0].Severity != SeverityError {
		t.Error("AddError should set severity to error")
	}
	if r.Summary != "1 errors, 0 warnings, 0 info" {
		t.Errorf("unexpected summary: %s", r.Summary)
	}
}

func TestAddWarning(t *testing.T) {
	r := NewReport()
	r.AddWarning(Result{Level: LevelPhysical, Message: "heads up"})
	if !r.Valid {
		t.Error("warnings should not invalidate report")
	}
	if len(r.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(r.Warnings))
	}
	if r.Warnings[0].Severity != SeverityWarning {
		t.Error("AddWarning should set severity to warning")
	}
}

func TestAddInfo(t *testing.T) {
	r := NewReport()
	r.AddInfo(Result{Level: LevelNumeric, Message: "fyi"})
	if !r.Valid {
		t.Error("info should not invalidate report")
	}
	if len(r.Info) != 1 {
		t.Fatalf("expected 1 info, got %d", len(r.Info))
	}
}

func TestMerge(t *testing.T) {
	a := NewReport()
	a.AddWarning(Result{Level: LevelSchema, Message: "w"})

	b := NewReport()
	b.AddError(Result{Level: LevelPhysical, Message: "e"})
	b.AddInfo(Result{Level: LevelNumeric, Message: "i"})

	a.Merge(b)
	if a.Valid {
		t.Error("merging an invalid report should invalidate")
	}
	if len(a.Errors) != 1 || len(a.Warnings) != 1 || len(a.Info) != 1 {
		t.Errorf("merge counts = %d/%d/%d, want 1/1/1",
			len(a.Errors), len(a.Warnings), len(a.Info))
	}
	if a.Summary != "1 errors, 1 warnings, 1 info" {
		t.Errorf("unexpected summary: %s", a.Summary)
	}
}
