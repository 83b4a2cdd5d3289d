// Package budget computes staffing and hours budgets for audit engagements
// from turnover, sector, and risk ratings.
package budget

import (
	"fmt"
	"math"
	"sort"
	"time"

	"auditdesk/internal/model"
)

// Calculator derives a BudgetResult from engagement parameters using
// its sector and baseline tables. The zero value is not usable; construct
// with New or NewWithTables.
type Calculator struct {
	sectors   map[string]Sector
	baselines map[string]Baseline
	fallback  Baseline
}

// New returns a calculator backed by the standard tables.
func New() *Calculator {
	return &Calculator{
		sectors:   DefaultSectors,
		baselines: DefaultBaselines,
		fallback:  DefaultBaseline,
	}
}

// NewWithTables returns a calculator over custom tables. The baseline
// table may be sparse; fallback covers any missing size/sector key.
func NewWithTables(sectors map[string]Sector, baselines map[string]Baseline, fallback Baseline) (*Calculator, error) {
	if len(sectors) == 0 {
		return nil, fmt.Errorf("sector table is empty")
	}
	for key, b := range baselines {
		if b.Planning <= 0 || b.Fieldwork <= 0 || b.ManagerReview <= 0 || b.PartnerReview <= 0 {
			return nil, fmt.Errorf("baseline %q has non-positive phase hours", key)
		}
	}
	if fallback.Planning <= 0 || fallback.Fieldwork <= 0 {
		return nil, fmt.Errorf("fallback baseline has non-positive phase hours")
	}
	return &Calculator{sectors: sectors, baselines: baselines, fallback: fallback}, nil
}

// Sectors returns the sector table sorted by code.
func (c *Calculator) Sectors() []Sector {
	out := make([]Sector, 0, len(c.sectors))
	for _, s := range c.sectors {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// SectorName returns the display name for a sector code.
func (c *Calculator) SectorName(code string) (string, bool) {
	s, ok := c.sectors[code]
	return s.Name, ok
}

// Validate rejects inputs Compute is not defined over: negative turnover,
// out-of-range risk ratings, and sector codes missing from the table.
func (c *Calculator) Validate(in model.EngagementInput) error {
	if in.Turnover < 0 {
		return fmt.Errorf("turnover must be non-negative, got %.2f", in.Turnover)
	}
	if _, ok := c.sectors[in.Sector]; !ok {
		return fmt.Errorf("unknown industry sector %q", in.Sector)
	}
	for _, r := range []struct {
		name  string
		level model.RiskLevel
	}{
		{"controls risk", in.ControlsRisk},
		{"inherent risk", in.InherentRisk},
		{"complexity", in.Complexity},
		{"information delay risk", in.InfoDelayRisk},
	} {
		if !r.level.Valid() {
			return fmt.Errorf("%s rating %d out of range 1..3", r.name, int(r.level))
		}
	}
	return nil
}

// CategoryFor classifies turnover (in Cr) into an audit size category.
// Boundaries are inclusive on the upper side: exactly 1000 is large.
func CategoryFor(turnover float64) model.Category {
	switch {
	case turnover <= 50:
		return model.CategoryMicro
	case turnover <= 250:
		return model.CategorySmall
	case turnover <= 500:
		return model.CategoryMedium
	case turnover <= 1000:
		return model.CategoryLarge
	default:
		return model.CategoryVeryLarge
	}
}

// sizePrefix maps a category to its baseline table key prefix.
func sizePrefix(cat model.Category) string {
	switch cat {
	case model.CategoryMicro, model.CategorySmall:
		return "S"
	case model.CategoryMedium:
		return "M"
	case model.CategoryLarge:
		return "L"
	default:
		return "VL"
	}
}

func round(f float64) int {
	return int(math.Round(f))
}

// Compute derives the budget for a validated input. It is pure and total:
// callers are responsible for running Validate first.
//
// Every multiplier and percentage product is rounded to the nearest integer
// independently. Totals are sums of already-rounded parts, so a role's hours
// across phases and its single-line total can differ by a unit; that is the
// defined behavior, not drift to be normalized away.
func (c *Calculator) Compute(in model.EngagementInput) model.BudgetResult {
	cat := CategoryFor(in.Turnover)
	key := sizePrefix(cat) + in.Sector

	base, ok := c.baselines[key]
	if !ok {
		base = c.fallback
	}

	scaled := false
	if cat == model.CategoryMicro {
		base = Baseline{
			Planning:      round(microScale * float64(base.Planning)),
			Fieldwork:     round(microScale * float64(base.Fieldwork)),
			ManagerReview: round(microScale * float64(base.ManagerReview)),
			PartnerReview: round(microScale * float64(base.PartnerReview)),
			Total:         round(microScale * float64(base.Total)),
		}
		scaled = true
	}

	cf := controlsFactor[in.ControlsRisk]
	inf := inherentFactor[in.InherentRisk]
	xf := complexityFactor[in.Complexity]
	df := infoDelayFactor[in.InfoDelayRisk]

	planning := round(float64(base.Planning) * cf * inf)
	fieldwork := round(float64(base.Fieldwork) * cf * inf * xf * df)
	managerReview := round(float64(base.ManagerReview) * xf)
	partnerReview := round(float64(base.PartnerReview) * xf)

	total := planning + fieldwork + managerReview + partnerReview
	totalDays := math.Round(float64(total)/8*10) / 10

	eqcrRequired := in.Listed || in.Turnover > 1000

	// Split percentages shift at the medium tier.
	larger := cat == model.CategoryMedium || cat == model.CategoryLarge || cat == model.CategoryVeryLarge

	p := float64(planning)
	f := float64(fieldwork)

	partner := partnerReview
	if larger {
		partner += round(0.3 * p)
	}

	manager := managerReview
	if larger {
		manager += round(0.3 * p)
	} else {
		manager += round(0.4 * p)
	}

	var qa int
	if larger {
		qa = round(0.4*p) + round(0.3*f)
	} else {
		qa = round(0.6*p) + round(0.3*f)
	}

	senior := 0
	if cat != model.CategoryMicro {
		senior = round(0.3*p) + round(0.4*f)
	}

	junior := round(0.3 * f)
	if cat == model.CategoryVeryLarge {
		// Two junior staff on the largest engagements.
		junior = round(0.5 * f)
	}

	// EQCR hours depend on the finalized partner total.
	eqcr := 0
	if eqcrRequired {
		eqcr = round(0.4 * float64(partner))
	}

	staff := map[model.Role]int{
		model.RolePartner:            partner,
		model.RoleManager:            manager,
		model.RoleQualifiedAssistant: qa,
		model.RoleSeniorArticle:      senior,
		model.RoleJuniorArticle:      junior,
		model.RoleEQCR:               eqcr,
	}

	byPhase := c.allocateByPhase(cat, larger, planning, fieldwork, managerReview, partnerReview, eqcr)

	notes := buildRiskNotes(key, !ok, scaled, base, in)

	return model.BudgetResult{
		Category: cat,
		PhaseHours: map[model.Phase]int{
			model.PhasePlanning:      planning,
			model.PhaseFieldwork:     fieldwork,
			model.PhaseManagerReview: managerReview,
			model.PhasePartnerReview: partnerReview,
		},
		TotalHours:   total,
		TotalDays:    totalDays,
		StaffHours:   staff,
		StaffByPhase: byPhase,
		EQCRRequired: eqcrRequired,
		RiskNotes:    notes,
		CreationDate: time.Now(),
		TeamMembers:  map[string]string{},
		ActualHours: map[model.Phase]float64{
			model.PhasePlanning:      0,
			model.PhaseFieldwork:     0,
			model.PhaseManagerReview: 0,
			model.PhasePartnerReview: 0,
		},
	}
}

// allocateByPhase applies the role split percentages to each phase's hours
// in isolation. Only staffed roles appear in a phase's map.
func (c *Calculator) allocateByPhase(cat model.Category, larger bool, planning, fieldwork, managerReview, partnerReview, eqcr int) map[model.Phase]map[model.Role]int {
	p := float64(planning)
	f := float64(fieldwork)

	plan := map[model.Role]int{}
	if larger {
		plan[model.RolePartner] = round(0.3 * p)
		plan[model.RoleManager] = round(0.3 * p)
		plan[model.RoleQualifiedAssistant] = round(0.4 * p)
	} else {
		plan[model.RoleManager] = round(0.4 * p)
		plan[model.RoleQualifiedAssistant] = round(0.6 * p)
	}
	if cat != model.CategoryMicro {
		plan[model.RoleSeniorArticle] = round(0.3 * p)
	}

	field := map[model.Role]int{
		model.RoleQualifiedAssistant: round(0.3 * f),
	}
	if cat != model.CategoryMicro {
		field[model.RoleSeniorArticle] = round(0.4 * f)
	}
	if cat == model.CategoryVeryLarge {
		field[model.RoleJuniorArticle] = round(0.5 * f)
	} else {
		field[model.RoleJuniorArticle] = round(0.3 * f)
	}

	mrev := map[model.Role]int{model.RoleManager: managerReview}

	prev := map[model.Role]int{model.RolePartner: partnerReview}
	if eqcr > 0 {
		prev[model.RoleEQCR] = eqcr
	}

	return map[model.Phase]map[model.Role]int{
		model.PhasePlanning:      plan,
		model.PhaseFieldwork:     field,
		model.PhaseManagerReview: mrev,
		model.PhasePartnerReview: prev,
	}
}

func buildRiskNotes(key string, fellBack, scaled bool, base Baseline, in model.EngagementInput) []string {
	baseline := fmt.Sprintf("Baseline %s: planning %dh, fieldwork %dh, manager review %dh, partner review %dh",
		key, base.Planning, base.Fieldwork, base.ManagerReview, base.PartnerReview)
	if fellBack {
		baseline += " (default baseline)"
	}
	if scaled {
		baseline += fmt.Sprintf(" (micro entity, baseline scaled by %.1f)", microScale)
	}

	return []string{
		baseline,
		fmt.Sprintf("Controls risk %s: factor %.2f", in.ControlsRisk, controlsFactor[in.ControlsRisk]),
		fmt.Sprintf("Inherent risk %s: factor %.2f", in.InherentRisk, inherentFactor[in.InherentRisk]),
		fmt.Sprintf("Complexity %s: factor %.2f", in.Complexity, complexityFactor[in.Complexity]),
		fmt.Sprintf("Information delay risk %s: factor %.2f", in.InfoDelayRisk, infoDelayFactor[in.InfoDelayRisk]),
	}
}
