// Package model defines domain types shared across auditdesk packages.
package model

import "time"

// Phase is one of the four audit work stages.
type Phase string

const (
	PhasePlanning      Phase = "planning"
	PhaseFieldwork     Phase = "fieldwork"
	PhaseManagerReview Phase = "managerReview"
	PhasePartnerReview Phase = "partnerReview"
)

// Phases returns all phases in workflow order.
func Phases() []Phase {
	return []Phase{PhasePlanning, PhaseFieldwork, PhaseManagerReview, PhasePartnerReview}
}

// Valid reports whether p is a known phase.
func (p Phase) Valid() bool {
	switch p {
	case PhasePlanning, PhaseFieldwork, PhaseManagerReview, PhasePartnerReview:
		return true
	}
	return false
}

// Label returns a display name for the phase.
func (p Phase) Label() string {
	switch p {
	case PhasePlanning:
		return "Planning"
	case PhaseFieldwork:
		return "Fieldwork"
	case PhaseManagerReview:
		return "Manager Review"
	case PhasePartnerReview:
		return "Partner Review"
	}
	return string(p)
}

// Role is a staffing role on an audit engagement.
type Role string

const (
	RolePartner            Role = "partner"
	RoleManager            Role = "manager"
	RoleQualifiedAssistant Role = "qualifiedAssistant"
	RoleSeniorArticle      Role = "seniorArticle"
	RoleJuniorArticle      Role = "juniorArticle"
	RoleEQCR               Role = "eqcr"
)

// Roles returns all staffing roles in seniority order.
func Roles() []Role {
	return []Role{
		RolePartner, RoleManager, RoleQualifiedAssistant,
		RoleSeniorArticle, RoleJuniorArticle, RoleEQCR,
	}
}

// Label returns a display name for the role.
func (r Role) Label() string {
	switch r {
	case RolePartner:
		return "Partner"
	case RoleManager:
		return "Manager"
	case RoleQualifiedAssistant:
		return "Qualified Assistant"
	case RoleSeniorArticle:
		return "Senior Article"
	case RoleJuniorArticle:
		return "Junior Article"
	case RoleEQCR:
		return "EQCR Partner"
	}
	return string(r)
}

// Category is the turnover-based audit size classification.
type Category string

const (
	CategoryMicro     Category = "micro"
	CategorySmall     Category = "small"
	CategoryMedium    Category = "medium"
	CategoryLarge     Category = "large"
	CategoryVeryLarge Category = "veryLarge"
)

// Label returns a display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryMicro:
		return "Micro"
	case CategorySmall:
		return "Small"
	case CategoryMedium:
		return "Medium"
	case CategoryLarge:
		return "Large"
	case CategoryVeryLarge:
		return "Very Large"
	}
	return string(c)
}

// RiskLevel is a three-point risk rating.
type RiskLevel int

const (
	RiskLow    RiskLevel = 1
	RiskMedium RiskLevel = 2
	RiskHigh   RiskLevel = 3
)

// Valid reports whether r is within the 1..3 rating scale.
func (r RiskLevel) Valid() bool {
	return r >= RiskLow && r <= RiskHigh
}

func (r RiskLevel) String() string {
	switch r {
	case RiskLow:
		return "Low"
	case RiskMedium:
		return "Medium"
	case RiskHigh:
		return "High"
	}
	return "Unknown"
}

// EngagementInput holds the parameters for a budget calculation.
// Turnover is the annual turnover in Cr.
type EngagementInput struct {
	CompanyName   string
	Turnover      float64
	Listed        bool
	Sector        string
	ControlsRisk  RiskLevel
	InherentRisk  RiskLevel
	Complexity    RiskLevel
	InfoDelayRisk RiskLevel
}

// BudgetResult is the staffing and hours breakdown produced by the budget
// calculator. TeamMembers and ActualHours start empty and are filled in
// later by the scheduling and time tracking flows.
type BudgetResult struct {
	Category         Category               `json:"audit_category"`
	PhaseHours       map[Phase]int          `json:"phase_hours"`
	TotalHours       int                    `json:"total_hours"`
	TotalDays        float64                `json:"total_days"`
	StaffHours       map[Role]int           `json:"staff_hours"`
	StaffByPhase     map[Phase]map[Role]int `json:"staff_allocation_by_phase"`
	EQCRRequired     bool                   `json:"eqcr_required"`
	RiskNotes        []string               `json:"risk_notes"`
	CreationDate     time.Time              `json:"creation_date"`
	FinancialYearEnd *time.Time             `json:"financial_year_end,omitempty"`
	TeamMembers      map[string]string      `json:"team_members"`
	ActualHours      map[Phase]float64      `json:"actual_hours"`
}
