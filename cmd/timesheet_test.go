package cmd

import (
	"testing"

	"auditdesk/internal/model"
)

func TestAdjustBudgetActuals_AddThenRemove(t *testing.T) {
	projects := []model.Project{
		{Name: "Acme FY26", Budget: &model.BudgetResult{
			ActualHours: map[model.Phase]float64{model.PhaseFieldwork: 12},
		}},
	}

	if !adjustBudgetActuals(projects, "Acme FY26", model.PhaseFieldwork, 7.5) {
		t.Fatal("expected budget to be updated on add")
	}
	if got := projects[0].Budget.ActualHours[model.PhaseFieldwork]; got != 19.5 {
		t.Errorf("after add: fieldwork actuals = %v, want 19.5", got)
	}

	if !adjustBudgetActuals(projects, "Acme FY26", model.PhaseFieldwork, -7.5) {
		t.Fatal("expected budget to be updated on removal")
	}
	if got := projects[0].Budget.ActualHours[model.PhaseFieldwork]; got != 12 {
		t.Errorf("after removal: fieldwork actuals = %v, want 12", got)
	}
}

func TestAdjustBudgetActuals_ClampsAtZero(t *testing.T) {
	projects := []model.Project{
		{Name: "Acme FY26", Budget: &model.BudgetResult{
			ActualHours: map[model.Phase]float64{model.PhasePlanning: 2},
		}},
	}

	if !adjustBudgetActuals(projects, "Acme FY26", model.PhasePlanning, -5) {
		t.Fatal("expected budget to be updated")
	}
	if got := projects[0].Budget.ActualHours[model.PhasePlanning]; got != 0 {
		t.Errorf("planning actuals = %v, want 0", got)
	}
}

func TestAdjustBudgetActuals_NoBudget(t *testing.T) {
	projects := []model.Project{{Name: "Acme FY26"}}

	if adjustBudgetActuals(projects, "Acme FY26", model.PhaseFieldwork, 4) {
		t.Error("project without a budget should not report an update")
	}
	if adjustBudgetActuals(projects, "Unknown", model.PhaseFieldwork, 4) {
		t.Error("unknown project should not report an update")
	}
}

func TestAdjustBudgetActuals_InitialisesMap(t *testing.T) {
	projects := []model.Project{
		{Name: "Acme FY26", Budget: &model.BudgetResult{}},
	}

	if !adjustBudgetActuals(projects, "Acme FY26", model.PhasePartnerReview, 3) {
		t.Fatal("expected budget to be updated")
	}
	if got := projects[0].Budget.ActualHours[model.PhasePartnerReview]; got != 3 {
		t.Errorf("partner review actuals = %v, want 3", got)
	}
}
