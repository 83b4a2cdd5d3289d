package report

import (
	"math"
	"testing"

	"auditdesk/internal/model"
)

func entry(project, resource string, phase model.Phase, hours float64) model.TimeEntry {
	return model.TimeEntry{Project: project, Resource: resource, Phase: phase, Hours: hours}
}

func TestHoursByProjectPhase(t *testing.T) {
	entries := []model.TimeEntry{
		entry("Acme", "Priya", model.PhasePlanning, 4),
		entry("Acme", "Priya", model.PhasePlanning, 2),
		entry("Acme", "Ravi", model.PhaseFieldwork, 8),
		entry("Globex", "Ravi", model.PhaseFieldwork, 6),
	}

	got := HoursByProjectPhase(entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 projects, got %d", len(got))
	}
	if got["Acme"][model.PhasePlanning] != 6 {
		t.Errorf("Acme planning = %v, want 6", got["Acme"][model.PhasePlanning])
	}
	if got["Acme"][model.PhaseFieldwork] != 8 {
		t.Errorf("Acme fieldwork = %v, want 8", got["Acme"][model.PhaseFieldwork])
	}
	if got["Acme"].Total() != 14 {
		t.Errorf("Acme total = %v, want 14", got["Acme"].Total())
	}
	if got["Globex"].Total() != 6 {
		t.Errorf("Globex total = %v, want 6", got["Globex"].Total())
	}
}

func TestHoursByResource(t *testing.T) {
	entries := []model.TimeEntry{
		entry("Acme", "Priya", model.PhasePlanning, 4),
		entry("Globex", "Priya", model.PhaseFieldwork, 3),
		entry("Acme", "Priya", model.PhaseFieldwork, 5),
	}

	got := HoursByResource(entries)
	if len(got) != 1 {
		t.Fatalf("expected 1 resource, got %d", len(got))
	}
	if got["Priya"]["Acme"] != 9 {
		t.Errorf("Priya on Acme = %v, want 9", got["Priya"]["Acme"])
	}
	if got["Priya"]["Globex"] != 3 {
		t.Errorf("Priya on Globex = %v, want 3", got["Priya"]["Globex"])
	}
}

func TestBudgetVsActual(t *testing.T) {
	projects := []model.Project{
		{Name: "Globex", TotalBudget: 500000},
		{Name: "Acme", TotalBudget: 250000},
	}
	members := []model.TeamMember{
		{Name: "Priya", HourlyRate: 2000},
		{Name: "Ravi", HourlyRate: 1200},
	}
	entries := []model.TimeEntry{
		entry("Acme", "Priya", model.PhasePlanning, 10),
		entry("Acme", "Ravi", model.PhaseFieldwork, 20),
		entry("Globex", "Ravi", model.PhaseFieldwork, 5),
		entry("Gone", "Ravi", model.PhaseFieldwork, 99), // project deleted
	}

	got := BudgetVsActual(projects, entries, members)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	// Sorted by project name.
	if got[0].Project != "Acme" || got[1].Project != "Globex" {
		t.Fatalf("unexpected order: %q, %q", got[0].Project, got[1].Project)
	}
	if got[0].ActualHours != 30 {
		t.Errorf("Acme hours = %v, want 30", got[0].ActualHours)
	}
	wantCost := 10*2000.0 + 20*1200.0
	if got[0].ActualCost != wantCost {
		t.Errorf("Acme cost = %v, want %v", got[0].ActualCost, wantCost)
	}
	if got[0].Budget != 250000 {
		t.Errorf("Acme budget = %v, want 250000", got[0].Budget)
	}
	if got[1].ActualHours != 5 || got[1].ActualCost != 6000 {
		t.Errorf("Globex = %+v", got[1])
	}
}

func TestBudgetVsActual_UnknownRate(t *testing.T) {
	projects := []model.Project{{Name: "Acme"}}
	entries := []model.TimeEntry{entry("Acme", "Ghost", model.PhasePlanning, 8)}

	got := BudgetVsActual(projects, entries, nil)
	if got[0].ActualHours != 8 {
		t.Errorf("hours = %v, want 8", got[0].ActualHours)
	}
	if got[0].ActualCost != 0 {
		t.Errorf("cost = %v, want 0", got[0].ActualCost)
	}
}

func TestPhaseVariances(t *testing.T) {
	p := model.Project{
		Name: "Acme",
		Budget: &model.BudgetResult{
			PhaseHours: map[model.Phase]int{
				model.PhasePlanning:      40,
				model.PhaseFieldwork:     120,
				model.PhaseManagerReview: 24,
				model.PhasePartnerReview: 16,
			},
		},
	}
	entries := []model.TimeEntry{
		entry("Acme", "Priya", model.PhasePlanning, 44.5),
		entry("Acme", "Ravi", model.PhaseFieldwork, 100),
		entry("Globex", "Ravi", model.PhaseFieldwork, 30),
	}

	got := PhaseVariances(p, entries)
	if len(got) != 4 {
		t.Fatalf("expected 4 phases, got %d", len(got))
	}
	if got[0].Phase != model.PhasePlanning || math.Abs(got[0].Variance-4.5) > 1e-9 {
		t.Errorf("planning variance = %+v", got[0])
	}
	if got[1].Variance != -20 {
		t.Errorf("fieldwork variance = %v, want -20", got[1].Variance)
	}
	if got[2].Actual != 0 || got[2].Variance != -24 {
		t.Errorf("manager review = %+v", got[2])
	}
}

func TestPhaseVariances_NoBudget(t *testing.T) {
	if got := PhaseVariances(model.Project{Name: "Acme"}, nil); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
