// Package materiality computes audit materiality thresholds per ISA 320
// and evaluates identified misstatements per ISA 450.
package materiality

import (
	"fmt"

	"auditdesk/internal/model"
)

// Benchmark is a financial statement figure materiality is derived from.
type Benchmark string

const (
	TotalRevenue  Benchmark = "Total Revenue"
	TotalAssets   Benchmark = "Total Assets"
	NetProfit     Benchmark = "Net Profit before Tax"
	TotalExpenses Benchmark = "Total Expenses"
	TotalEquity   Benchmark = "Total Equity"
	GrossProfit   Benchmark = "Gross Profit"
	NetAssetValue Benchmark = "Net Asset Value"
	TotalCost     Benchmark = "Total Cost"
	NetCost       Benchmark = "Net Cost"
)

// Benchmarks returns all supported benchmarks.
func Benchmarks() []Benchmark {
	return []Benchmark{
		TotalRevenue, TotalAssets, NetProfit, TotalExpenses, TotalEquity,
		GrossProfit, NetAssetValue, TotalCost, NetCost,
	}
}

// Valid reports whether b is a known benchmark.
func (b Benchmark) Valid() bool {
	for _, k := range Benchmarks() {
		if b == k {
			return true
		}
	}
	return false
}

// EntityType drives the recommended benchmark choice.
type EntityType string

const (
	ProfitOriented  EntityType = "Profit Oriented"
	NotForProfit    EntityType = "Not for Profit"
	DebtFinanced    EntityType = "Debt Financed"
	VolatileProfit  EntityType = "Volatility in Profit"
	LiquidityIssues EntityType = "Liquidity Issues"
	PublicUtility   EntityType = "Public Utility Project/Program"
)

// RecommendedBenchmarks returns the benchmarks usually appropriate for an
// entity type.
func RecommendedBenchmarks(e EntityType) []Benchmark {
	switch e {
	case ProfitOriented:
		return []Benchmark{NetProfit}
	case NotForProfit:
		return []Benchmark{TotalRevenue, TotalExpenses}
	case DebtFinanced:
		return []Benchmark{NetAssetValue}
	case VolatileProfit:
		return []Benchmark{TotalRevenue, GrossProfit}
	case LiquidityIssues:
		return []Benchmark{TotalEquity}
	case PublicUtility:
		return []Benchmark{TotalCost, NetCost, TotalAssets}
	}
	return nil
}

// Range is an inclusive percentage band.
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether pct falls inside the band.
func (r Range) Contains(pct float64) bool {
	return pct >= r.Min && pct <= r.Max
}

// Clamp forces pct into the band.
func (r Range) Clamp(pct float64) float64 {
	if pct < r.Min {
		return r.Min
	}
	if pct > r.Max {
		return r.Max
	}
	return pct
}

// matrixCategory groups benchmarks sharing a row of the percentage matrix.
type matrixCategory string

const (
	catLiquidity    matrixCategory = "Liquidity"
	catProfit       matrixCategory = "Profit"
	catNotForProfit matrixCategory = "Not for Profit"
	catGrossProfit  matrixCategory = "Gross Profit"
	catRevenue      matrixCategory = "Total Revenue"
)

func categoryOf(b Benchmark) matrixCategory {
	switch b {
	case TotalRevenue:
		return catRevenue
	case NetProfit:
		return catProfit
	case TotalExpenses, TotalCost, NetCost:
		return catNotForProfit
	case GrossProfit:
		return catGrossProfit
	default: // TotalEquity, NetAssetValue, TotalAssets
		return catLiquidity
	}
}

// percentMatrix holds the materiality percentage bands by benchmark
// category and risk of material misstatement. Higher risk means a
// lower band: risk and materiality move inversely.
var percentMatrix = map[matrixCategory]map[model.RiskLevel]Range{
	catLiquidity: {
		model.RiskHigh:   {Min: 2, Max: 3.15},
		model.RiskMedium: {Min: 3.15, Max: 3.85},
		model.RiskLow:    {Min: 3.85, Max: 5},
	},
	catProfit: {
		model.RiskHigh:   {Min: 3, Max: 4},
		model.RiskMedium: {Min: 4, Max: 5},
		model.RiskLow:    {Min: 5, Max: 7},
	},
	catNotForProfit: {
		model.RiskHigh:   {Min: 0.5, Max: 0.7},
		model.RiskMedium: {Min: 0.7, Max: 0.8},
		model.RiskLow:    {Min: 0.8, Max: 1},
	},
	catGrossProfit: {
		model.RiskHigh:   {Min: 1, Max: 1.3},
		model.RiskMedium: {Min: 1.3, Max: 1.6},
		model.RiskLow:    {Min: 1.6, Max: 2},
	},
	catRevenue: {
		model.RiskHigh:   {Min: 0.5, Max: 0.7},
		model.RiskMedium: {Min: 0.7, Max: 0.8},
		model.RiskLow:    {Min: 0.8, Max: 1},
	},
}

// PercentageRange returns the band for a benchmark at a given risk level.
func PercentageRange(b Benchmark, risk model.RiskLevel) Range {
	return percentMatrix[categoryOf(b)][risk]
}

// SuggestRiskLevel maps a count of applicable risk factors from the
// engagement checklist to a suggested overall risk level.
func SuggestRiskLevel(factorCount int) model.RiskLevel {
	switch {
	case factorCount >= 10:
		return model.RiskHigh
	case factorCount >= 5:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// Input holds a materiality determination request. Zero percentages fall
// back to defaults: the band minimum for Percent, 75 for
// PerformancePercent, 5 for ClearlyTrivialPercent.
type Input struct {
	Risk                  model.RiskLevel
	Benchmark             Benchmark
	BenchmarkValue        float64
	Percent               float64
	PerformancePercent    float64
	ClearlyTrivialPercent float64
}

// Result holds the computed thresholds.
type Result struct {
	Range                 Range
	PercentApplied        float64
	PerformancePercent    float64
	ClearlyTrivialPercent float64
	Overall               float64
	Performance           float64
	ClearlyTrivial        float64
}

// Compute derives overall materiality, performance materiality, and the
// clearly trivial threshold. The chosen percentage is clamped into the
// matrix band for the benchmark and risk level.
func Compute(in Input) (Result, error) {
	if !in.Risk.Valid() {
		return Result{}, fmt.Errorf("risk level %d out of range 1..3", int(in.Risk))
	}
	if !in.Benchmark.Valid() {
		return Result{}, fmt.Errorf("unknown benchmark %q", string(in.Benchmark))
	}
	if in.BenchmarkValue < 0 {
		return Result{}, fmt.Errorf("benchmark value must be non-negative, got %.2f", in.BenchmarkValue)
	}

	band := PercentageRange(in.Benchmark, in.Risk)

	pct := in.Percent
	if pct == 0 {
		pct = band.Min
	}
	pct = band.Clamp(pct)

	perfPct := in.PerformancePercent
	if perfPct == 0 {
		perfPct = 75
	}
	if perfPct < 50 || perfPct > 90 {
		return Result{}, fmt.Errorf("performance materiality must be 50%%..90%% of overall, got %.1f%%", perfPct)
	}

	ctPct := in.ClearlyTrivialPercent
	if ctPct == 0 {
		ctPct = 5
	}
	if ctPct < 1 || ctPct > 5 {
		return Result{}, fmt.Errorf("clearly trivial threshold must be 1%%..5%% of overall, got %.1f%%", ctPct)
	}

	overall := in.BenchmarkValue * pct / 100
	return Result{
		Range:                 band,
		PercentApplied:        pct,
		PerformancePercent:    perfPct,
		ClearlyTrivialPercent: ctPct,
		Overall:               overall,
		Performance:           overall * perfPct / 100,
		ClearlyTrivial:        overall * ctPct / 100,
	}, nil
}
