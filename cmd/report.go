package cmd

import (
	"fmt"
	"sort"

	"auditdesk/internal/cli"
	"auditdesk/internal/model"
	"auditdesk/internal/report"

	"github.com/spf13/cobra"
)

var flagReportProject string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Budget vs actual and utilization reports",
	RunE:  runReportBudget,
}

var reportPhasesCmd = &cobra.Command{
	Use:   "phases",
	Short: "Per-phase budget variance for a project",
	RunE:  runReportPhases,
}

var reportUtilizationCmd = &cobra.Command{
	Use:   "utilization",
	Short: "Hours worked per team member",
	RunE:  runReportUtilization,
}

func init() {
	reportPhasesCmd.Flags().StringVarP(&flagReportProject, "project", "p", "", "Project name")
	_ = reportPhasesCmd.MarkFlagRequired("project")

	reportCmd.AddCommand(reportPhasesCmd)
	reportCmd.AddCommand(reportUtilizationCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportBudget(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	projects, err := s.LoadProjects()
	if err != nil {
		return err
	}
	entries, err := s.LoadTimeEntries()
	if err != nil {
		return err
	}
	members, err := s.LoadTeamMembers()
	if err != nil {
		return err
	}

	rows := report.BudgetVsActual(projects, entries, members)
	if len(rows) == 0 {
		fmt.Println("  No projects to report on.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGET VS ACTUAL"))
	if cfg.Firm.Name != "" {
		fmt.Println("  " + cli.Muted(cfg.Firm.Name))
	}
	fmt.Println()

	unit := cfg.General.CurrencyUnit
	var tableRows [][]string
	for _, r := range rows {
		tableRows = append(tableRows, []string{
			r.Project,
			cli.FormatAmount(unit, r.Budget),
			cli.FormatHours(r.ActualHours),
			cli.FormatAmount(unit, r.ActualCost),
			cli.FormatAmount(unit, r.Budget-r.ActualCost),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "Fee Budget", "Hours", "Cost", "Remaining"},
		Rows:    tableRows,
	}))
	return nil
}

func runReportPhases(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	projects, err := s.LoadProjects()
	if err != nil {
		return err
	}
	var project *model.Project
	for i := range projects {
		if projects[i].Name == flagReportProject {
			project = &projects[i]
			break
		}
	}
	if project == nil {
		return fmt.Errorf("project %q not found", flagReportProject)
	}

	entries, err := s.LoadTimeEntries()
	if err != nil {
		return err
	}

	variances := report.PhaseVariances(*project, entries)
	if variances == nil {
		return fmt.Errorf("project %q has no budget attached; run: auditdesk budget --project %q", project.Name, project.Name)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(project.Name))
	fmt.Println()

	var rows [][]string
	var budgeted int
	var actual float64
	for _, v := range variances {
		delta := cli.FormatHours(v.Variance)
		if v.Variance > 0 {
			delta = "+" + delta
		}
		rows = append(rows, []string{
			v.Phase.Label(),
			cli.FormatHours(float64(v.Budgeted)),
			cli.FormatHours(v.Actual),
			delta,
		})
		budgeted += v.Budgeted
		actual += v.Actual
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"Total", cli.FormatHours(float64(budgeted)), cli.FormatHours(actual), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Phase", "Budgeted", "Actual", "Variance"},
		Rows:    rows,
	}))
	return nil
}

func runReportUtilization(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.LoadTimeEntries()
	if err != nil {
		return err
	}
	byResource := report.HoursByResource(entries)
	if len(byResource) == 0 {
		fmt.Println("  No time entries to report on.")
		return nil
	}

	type resourceTotal struct {
		name  string
		total float64
	}
	totals := make([]resourceTotal, 0, len(byResource))
	var max float64
	for name, byProject := range byResource {
		var t float64
		for _, h := range byProject {
			t += h
		}
		totals = append(totals, resourceTotal{name, t})
		if t > max {
			max = t
		}
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].total > totals[j].total })

	fmt.Println()
	fmt.Println(cli.RenderTitle("UTILIZATION"))
	fmt.Println()

	nameWidth := 0
	for _, rt := range totals {
		if len(rt.name) > nameWidth {
			nameWidth = len(rt.name)
		}
	}
	for _, rt := range totals {
		fmt.Printf("  %-*s %8s  %s\n",
			nameWidth, rt.name,
			cli.FormatHours(rt.total),
			cli.RenderHorizontalBar(rt.total, max, 30))
	}
	return nil
}
