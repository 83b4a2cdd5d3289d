package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"auditdesk/internal/cli"
	"auditdesk/internal/materiality"
	"auditdesk/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagMatBenchmark string
	flagMatValue     float64
	flagMatRisk      int
	flagMatEntity    string
	flagMatPercent   float64
	flagMatPerfPct   float64
	flagMatTrivPct   float64
	flagMatKnown     []string
	flagMatLikely    []string
)

var materialityCmd = &cobra.Command{
	Use:   "materiality",
	Short: "Determine materiality thresholds",
	Long: `Determine overall materiality, performance materiality and the clearly
trivial threshold from a benchmark amount and risk level. Known and
likely misstatements can be evaluated against the result with --known
and --likely, each a comma-separated list of amount or amount:corrected.`,
	RunE: runMateriality,
}

func init() {
	materialityCmd.Flags().StringVarP(&flagMatBenchmark, "benchmark", "b", string(materiality.NetProfit), "Benchmark name")
	materialityCmd.Flags().Float64VarP(&flagMatValue, "value", "v", 0, "Benchmark amount")
	materialityCmd.Flags().IntVarP(&flagMatRisk, "risk", "r", 1, "Risk of material misstatement 1..3")
	materialityCmd.Flags().StringVar(&flagMatEntity, "entity", "", "Entity type, prints recommended benchmarks")
	materialityCmd.Flags().Float64Var(&flagMatPercent, "percent", 0, "Benchmark percentage (default: band minimum)")
	materialityCmd.Flags().Float64Var(&flagMatPerfPct, "performance-percent", 0, "Performance materiality as % of overall (50..90, default 75)")
	materialityCmd.Flags().Float64Var(&flagMatTrivPct, "trivial-percent", 0, "Clearly trivial as % of overall (1..5, default 5)")
	materialityCmd.Flags().StringSliceVar(&flagMatKnown, "known", nil, "Known misstatements, amount[:corrected]")
	materialityCmd.Flags().StringSliceVar(&flagMatLikely, "likely", nil, "Likely misstatements, amount[:corrected]")

	rootCmd.AddCommand(materialityCmd)
}

func parseMisstatements(kind string, specs []string) ([]materiality.Misstatement, error) {
	var out []materiality.Misstatement
	for _, spec := range specs {
		amountStr, flag, hasFlag := strings.Cut(spec, ":")
		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing --%s %q: %w", kind, spec, err)
		}
		corrected := false
		if hasFlag {
			if flag != "corrected" {
				return nil, fmt.Errorf("parsing --%s %q: expected amount or amount:corrected", kind, spec)
			}
			corrected = true
		}
		out = append(out, materiality.Misstatement{Amount: amount, Corrected: corrected})
	}
	return out, nil
}

func runMateriality(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	unit := cfg.General.CurrencyUnit

	if flagMatEntity != "" {
		recommended := materiality.RecommendedBenchmarks(materiality.EntityType(flagMatEntity))
		if recommended == nil {
			return fmt.Errorf("unknown entity type %q", flagMatEntity)
		}
		fmt.Printf("  Recommended benchmarks for %s:\n", flagMatEntity)
		for _, b := range recommended {
			fmt.Printf("  - %s\n", b)
		}
		if flagMatValue == 0 {
			return nil
		}
		fmt.Println()
	}

	result, err := materiality.Compute(materiality.Input{
		Risk:                  model.RiskLevel(flagMatRisk),
		Benchmark:             materiality.Benchmark(flagMatBenchmark),
		BenchmarkValue:        flagMatValue,
		Percent:               flagMatPercent,
		PerformancePercent:    flagMatPerfPct,
		ClearlyTrivialPercent: flagMatTrivPct,
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("MATERIALITY"))
	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Threshold", "Value"},
		Rows: [][]string{
			{"Benchmark", fmt.Sprintf("%s = %s", flagMatBenchmark, cli.FormatAmount(unit, flagMatValue))},
			{"Risk level", model.RiskLevel(flagMatRisk).String()},
			{"Band", fmt.Sprintf("%.2f%% to %.2f%%", result.Range.Min, result.Range.Max)},
			{"Applied", fmt.Sprintf("%.2f%%", result.PercentApplied)},
			{"---"},
			{"Overall materiality", cli.FormatAmount(unit, result.Overall)},
			{fmt.Sprintf("Performance (%.0f%%)", result.PerformancePercent), cli.FormatAmount(unit, result.Performance)},
			{fmt.Sprintf("Clearly trivial (%.0f%%)", result.ClearlyTrivialPercent), cli.FormatAmount(unit, result.ClearlyTrivial)},
		},
	}))

	if len(flagMatKnown) == 0 && len(flagMatLikely) == 0 {
		return nil
	}

	known, err := parseMisstatements("known", flagMatKnown)
	if err != nil {
		return err
	}
	likely, err := parseMisstatements("likely", flagMatLikely)
	if err != nil {
		return err
	}

	ev := materiality.Evaluate(known, likely, result.Overall)

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Misstatement Evaluation",
		Headers: []string{"Item", "Amount"},
		Rows: [][]string{
			{"Known (uncorrected)", cli.FormatAmount(unit, ev.KnownUncorrected)},
			{"Likely (uncorrected)", cli.FormatAmount(unit, ev.LikelyUncorrected)},
			{"Total uncorrected", cli.FormatAmount(unit, ev.TotalUncorrected)},
			{"% of materiality", fmt.Sprintf("%.1f%%", ev.PercentOfMateriality)},
		},
	}))

	switch ev.Severity {
	case materiality.SeverityCritical:
		fmt.Println("  " + cli.Err("Uncorrected misstatements exceed 90% of materiality: consider the effect on the audit opinion."))
	case materiality.SeveritySignificant:
		fmt.Println("  " + cli.Warn("Uncorrected misstatements exceed 75% of materiality: evaluate the effect carefully."))
	case materiality.SeverityModerate:
		fmt.Println("  " + cli.Warn("Uncorrected misstatements exceed 50% of materiality: document the consideration."))
	default:
		fmt.Println("  " + cli.OK("Uncorrected misstatements are clear of materiality."))
	}
	return nil
}
