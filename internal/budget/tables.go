package budget

import "auditdesk/internal/model"

// Sector describes one industry sector.
type Sector struct {
	Code       string
	Name       string
	RiskWeight float64
}

// Baseline holds unadjusted phase hours for one size-tier/sector key.
type Baseline struct {
	Planning      int
	Fieldwork     int
	ManagerReview int
	PartnerReview int
	Total         int
}

// DefaultSectors is the standard industry sector table.
var DefaultSectors = map[string]Sector{
	"MFG":   {Code: "MFG", Name: "Manufacturing", RiskWeight: 1.0},
	"RET":   {Code: "RET", Name: "Retail", RiskWeight: 0.9},
	"TECH":  {Code: "TECH", Name: "Technology", RiskWeight: 1.2},
	"FIN":   {Code: "FIN", Name: "Financial Services", RiskWeight: 1.3},
	"HLTH":  {Code: "HLTH", Name: "Healthcare", RiskWeight: 1.1},
	"CONS":  {Code: "CONS", Name: "Construction", RiskWeight: 1.0},
	"REAL":  {Code: "REAL", Name: "Real Estate", RiskWeight: 0.9},
	"HOSP":  {Code: "HOSP", Name: "Hospitality", RiskWeight: 0.8},
	"TRAN":  {Code: "TRAN", Name: "Transportation", RiskWeight: 1.0},
	"ENER":  {Code: "ENER", Name: "Energy", RiskWeight: 1.2},
	"TELE":  {Code: "TELE", Name: "Telecommunications", RiskWeight: 1.1},
	"AGRI":  {Code: "AGRI", Name: "Agriculture", RiskWeight: 0.9},
	"PHAR":  {Code: "PHAR", Name: "Pharmaceuticals", RiskWeight: 1.3},
	"MEDIA": {Code: "MEDIA", Name: "Media & Entertainment", RiskWeight: 1.0},
	"EDU":   {Code: "EDU", Name: "Education", RiskWeight: 0.8},
	"NPO":   {Code: "NPO", Name: "Non-Profit", RiskWeight: 0.7},
}

// DefaultBaselines maps size-prefix+sector keys to phase-hour baselines.
// Keys absent from the table fall back to DefaultBaseline.
var DefaultBaselines = map[string]Baseline{
	"SMFG":  {Planning: 40, Fieldwork: 120, ManagerReview: 24, PartnerReview: 16, Total: 200},
	"MMFG":  {Planning: 60, Fieldwork: 180, ManagerReview: 36, PartnerReview: 24, Total: 300},
	"LMFG":  {Planning: 80, Fieldwork: 240, ManagerReview: 48, PartnerReview: 32, Total: 400},
	"VLMFG": {Planning: 120, Fieldwork: 360, ManagerReview: 72, PartnerReview: 48, Total: 600},
}

// DefaultBaseline is used when no size/sector specific row exists.
var DefaultBaseline = Baseline{
	Planning: 40, Fieldwork: 120, ManagerReview: 24, PartnerReview: 16, Total: 200,
}

// Risk multiplier tables, keyed by the 1..3 rating.
var (
	controlsFactor = map[model.RiskLevel]float64{
		model.RiskLow: 1.0, model.RiskMedium: 1.2, model.RiskHigh: 1.4,
	}
	inherentFactor = map[model.RiskLevel]float64{
		model.RiskLow: 1.0, model.RiskMedium: 1.25, model.RiskHigh: 1.5,
	}
	complexityFactor = map[model.RiskLevel]float64{
		model.RiskLow: 1.0, model.RiskMedium: 1.3, model.RiskHigh: 1.6,
	}
	infoDelayFactor = map[model.RiskLevel]float64{
		model.RiskLow: 1.0, model.RiskMedium: 1.15, model.RiskHigh: 1.3,
	}
)

// microScale shrinks baselines for micro entities.
const microScale = 0.8
