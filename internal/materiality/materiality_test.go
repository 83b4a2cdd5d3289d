package materiality

import (
	"testing"

	"auditdesk/internal/model"
)

func TestCompute_ProfitBenchmark(t *testing.T) {
	res, err := Compute(Input{
		Risk:           model.RiskMedium,
		Benchmark:      NetProfit,
		BenchmarkValue: 100,
		Percent:        5,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if res.Range != (Range{Min: 4, Max: 5}) {
		t.Errorf("Range = %+v, want 4..5", res.Range)
	}
	if res.Overall != 5.0 {
		t.Errorf("Overall = %.2f, want 5.00", res.Overall)
	}
	if res.Performance != 3.75 {
		t.Errorf("Performance = %.2f, want 3.75 (75%% default)", res.Performance)
	}
	if res.ClearlyTrivial != 0.25 {
		t.Errorf("ClearlyTrivial = %.2f, want 0.25 (5%% default)", res.ClearlyTrivial)
	}
}

func TestCompute_ClampsIntoBand(t *testing.T) {
	res, err := Compute(Input{
		Risk:           model.RiskHigh,
		Benchmark:      NetProfit,
		BenchmarkValue: 200,
		Percent:        7, // high-risk profit band is 3..4
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.PercentApplied != 4 {
		t.Errorf("PercentApplied = %.2f, want 4 (clamped)", res.PercentApplied)
	}
	if res.Overall != 8.0 {
		t.Errorf("Overall = %.2f, want 8.00", res.Overall)
	}
}

func TestCompute_DefaultsToBandMinimum(t *testing.T) {
	res, err := Compute(Input{
		Risk:           model.RiskLow,
		Benchmark:      TotalRevenue,
		BenchmarkValue: 1000,
	})
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if res.PercentApplied != 0.8 {
		t.Errorf("PercentApplied = %.2f, want band minimum 0.8", res.PercentApplied)
	}
}

func TestCompute_Rejections(t *testing.T) {
	bad := []Input{
		{Risk: 0, Benchmark: NetProfit, BenchmarkValue: 10},
		{Risk: model.RiskLow, Benchmark: "Working Capital", BenchmarkValue: 10},
		{Risk: model.RiskLow, Benchmark: NetProfit, BenchmarkValue: -5},
		{Risk: model.RiskLow, Benchmark: NetProfit, BenchmarkValue: 10, PerformancePercent: 95},
		{Risk: model.RiskLow, Benchmark: NetProfit, BenchmarkValue: 10, ClearlyTrivialPercent: 10},
	}
	for i, in := range bad {
		if _, err := Compute(in); err == nil {
			t.Errorf("Compute(bad[%d]) = nil error", i)
		}
	}
}

func TestPercentageRange_BenchmarkGrouping(t *testing.T) {
	// Equity, net asset value, and total assets all share the liquidity row.
	for _, b := range []Benchmark{TotalEquity, NetAssetValue, TotalAssets} {
		if got := PercentageRange(b, model.RiskHigh); got != (Range{Min: 2, Max: 3.15}) {
			t.Errorf("PercentageRange(%s, High) = %+v, want 2..3.15", b, got)
		}
	}
	if got := PercentageRange(TotalCost, model.RiskLow); got != (Range{Min: 0.8, Max: 1}) {
		t.Errorf("PercentageRange(TotalCost, Low) = %+v, want 0.8..1", got)
	}
}

func TestSuggestRiskLevel(t *testing.T) {
	tests := []struct {
		factors int
		want    model.RiskLevel
	}{
		{0, model.RiskLow}, {4, model.RiskLow},
		{5, model.RiskMedium}, {9, model.RiskMedium},
		{10, model.RiskHigh}, {15, model.RiskHigh},
	}
	for _, tt := range tests {
		if got := SuggestRiskLevel(tt.factors); got != tt.want {
			t.Errorf("SuggestRiskLevel(%d) = %s, want %s", tt.factors, got, tt.want)
		}
	}
}

func TestEvaluate(t *testing.T) {
	known := []Misstatement{
		{Ledger: "Trade receivables", Amount: 10, Corrected: true},
		{Ledger: "Inventory", Amount: 5},
	}
	likely := []Misstatement{
		{Ledger: "Old balances", Amount: 2},
	}

	ev := Evaluate(known, likely, 10)

	if ev.KnownTotal != 15 || ev.KnownUncorrected != 5 {
		t.Errorf("known = %.1f/%.1f uncorrected, want 15/5", ev.KnownTotal, ev.KnownUncorrected)
	}
	if ev.LikelyTotal != 2 || ev.LikelyUncorrected != 2 {
		t.Errorf("likely = %.1f/%.1f uncorrected, want 2/2", ev.LikelyTotal, ev.LikelyUncorrected)
	}
	if ev.TotalUncorrected != 7 {
		t.Errorf("TotalUncorrected = %.1f, want 7", ev.TotalUncorrected)
	}
	if ev.PercentOfMateriality != 70 {
		t.Errorf("PercentOfMateriality = %.1f, want 70", ev.PercentOfMateriality)
	}
	if ev.Severity != SeverityModerate {
		t.Errorf("Severity = %s, want moderate", ev.Severity)
	}
}

func TestEvaluate_SeverityBands(t *testing.T) {
	tests := []struct {
		uncorrected float64
		want        Severity
	}{
		{4, SeverityClear},
		{5.1, SeverityModerate},
		{7.6, SeveritySignificant},
		{9.5, SeverityCritical},
	}
	for _, tt := range tests {
		ev := Evaluate([]Misstatement{{Amount: tt.uncorrected}}, nil, 10)
		if ev.Severity != tt.want {
			t.Errorf("uncorrected %.1f of 10: Severity = %s, want %s", tt.uncorrected, ev.Severity, tt.want)
		}
	}
}

func TestRecommendedBenchmarks(t *testing.T) {
	if got := RecommendedBenchmarks(ProfitOriented); len(got) != 1 || got[0] != NetProfit {
		t.Errorf("ProfitOriented recommendations = %v", got)
	}
	if got := RecommendedBenchmarks(PublicUtility); len(got) != 3 {
		t.Errorf("PublicUtility recommendations = %v, want 3 entries", got)
	}
	if got := RecommendedBenchmarks("Sovereign"); got != nil {
		t.Errorf("unknown entity type recommendations = %v, want nil", got)
	}
}
