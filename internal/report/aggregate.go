// Package report aggregates time entries into budget-vs-actual and
// utilization rollups.
package report

import (
	"sort"

	"auditdesk/internal/model"
)

// PhaseHours maps phases to actual hours worked.
type PhaseHours map[model.Phase]float64

// Total sums hours across phases.
func (p PhaseHours) Total() float64 {
	var t float64
	for _, h := range p {
		t += h
	}
	return t
}

// HoursByProjectPhase rolls up time entries into project -> phase -> hours.
func HoursByProjectPhase(entries []model.TimeEntry) map[string]PhaseHours {
	out := make(map[string]PhaseHours)
	for _, e := range entries {
		ph, ok := out[e.Project]
		if !ok {
			ph = make(PhaseHours)
			out[e.Project] = ph
		}
		ph[e.Phase] += e.Hours
	}
	return out
}

// HoursByResource rolls up time entries into resource -> project -> hours.
func HoursByResource(entries []model.TimeEntry) map[string]map[string]float64 {
	out := make(map[string]map[string]float64)
	for _, e := range entries {
		byProject, ok := out[e.Resource]
		if !ok {
			byProject = make(map[string]float64)
			out[e.Resource] = byProject
		}
		byProject[e.Project] += e.Hours
	}
	return out
}

// BudgetActual compares a project's budget against logged work.
type BudgetActual struct {
	Project     string
	Budget      float64
	ActualHours float64
	ActualCost  float64
}

// BudgetVsActual computes per-project actual hours and cost. Cost uses
// each resource's hourly rate; entries by resources not in the team
// table cost zero, matching how unknown rates were handled upstream.
func BudgetVsActual(projects []model.Project, entries []model.TimeEntry, members []model.TeamMember) []BudgetActual {
	rates := make(map[string]float64, len(members))
	for _, m := range members {
		rates[m.Name] = m.HourlyRate
	}

	byProject := make(map[string]*BudgetActual, len(projects))
	var out []BudgetActual
	for _, p := range projects {
		byProject[p.Name] = &BudgetActual{Project: p.Name, Budget: p.TotalBudget}
	}

	for _, e := range entries {
		ba, ok := byProject[e.Project]
		if !ok {
			// Orphaned entry for a deleted project; skip.
			continue
		}
		ba.ActualHours += e.Hours
		ba.ActualCost += e.Hours * rates[e.Resource]
	}

	for _, p := range projects {
		out = append(out, *byProject[p.Name])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Project < out[j].Project })
	return out
}

// PhaseVariance compares budgeted phase hours against actuals.
type PhaseVariance struct {
	Phase    model.Phase
	Budgeted int
	Actual   float64
	Variance float64 // actual minus budgeted; positive means overrun
}

// PhaseVariances returns the per-phase budget variance for a project, or
// nil when the project has no stored budget.
func PhaseVariances(p model.Project, entries []model.TimeEntry) []PhaseVariance {
	if p.Budget == nil {
		return nil
	}

	actuals := make(PhaseHours)
	for _, e := range entries {
		if e.Project == p.Name {
			actuals[e.Phase] += e.Hours
		}
	}

	out := make([]PhaseVariance, 0, len(model.Phases()))
	for _, phase := range model.Phases() {
		budgeted := p.Budget.PhaseHours[phase]
		actual := actuals[phase]
		out = append(out, PhaseVariance{
			Phase:    phase,
			Budgeted: budgeted,
			Actual:   actual,
			Variance: actual - float64(budgeted),
		})
	}
	return out
}
