package cmd

import (
	"fmt"
	"strings"
	"time"

	"auditdesk/internal/cli"
	"auditdesk/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagProjClient   string
	flagProjSector   string
	flagProjStart    string
	flagProjEnd      string
	flagProjBudget   float64
	flagProjLetter   bool
	flagProjApproval string
	flagProjNotes    string
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage audit projects",
}

var projectAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectAdd,
}

var projectListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	RunE:  runProjectList,
}

var projectRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a project",
	Args:  cobra.ExactArgs(1),
	RunE:  runProjectRm,
}

func init() {
	projectAddCmd.Flags().StringVar(&flagProjClient, "client", "", "Client name")
	projectAddCmd.Flags().StringVar(&flagProjSector, "sector", "", "Industry sector code")
	projectAddCmd.Flags().StringVar(&flagProjStart, "start", "", "Start date (YYYY-MM-DD)")
	projectAddCmd.Flags().StringVar(&flagProjEnd, "end", "", "End date (YYYY-MM-DD)")
	projectAddCmd.Flags().Float64Var(&flagProjBudget, "budget", 0, "Total fee budget")
	projectAddCmd.Flags().BoolVar(&flagProjLetter, "letter-signed", false, "Engagement letter is signed")
	projectAddCmd.Flags().StringVar(&flagProjApproval, "approval", "", "Internal approval reference")
	projectAddCmd.Flags().StringVar(&flagProjNotes, "notes", "", "Free-form notes")

	projectCmd.AddCommand(projectAddCmd)
	projectCmd.AddCommand(projectListCmd)
	projectCmd.AddCommand(projectRmCmd)
	rootCmd.AddCommand(projectCmd)
}

func parseDateFlag(name, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --%s: %w", name, err)
	}
	return t, nil
}

func runProjectAdd(_ *cobra.Command, args []string) error {
	name := args[0]

	start, err := parseDateFlag("start", flagProjStart)
	if err != nil {
		return err
	}
	end, err := parseDateFlag("end", flagProjEnd)
	if err != nil {
		return err
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s", flagProjEnd, flagProjStart)
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	projects, err := s.LoadProjects()
	if err != nil {
		return err
	}
	for _, p := range projects {
		if p.Name == name {
			return fmt.Errorf("project %q already exists", name)
		}
	}

	projects = append(projects, model.Project{
		Name:                   name,
		Client:                 flagProjClient,
		Sector:                 strings.ToUpper(flagProjSector),
		StartDate:              start,
		EndDate:                end,
		TotalBudget:            flagProjBudget,
		CreationDate:           time.Now(),
		EngagementLetterSigned: flagProjLetter,
		Approval:               flagProjApproval,
		Notes:                  flagProjNotes,
	})
	if err := s.SaveProjects(projects); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added project %q\n", name)
	}
	return nil
}

func runProjectList(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	projects, err := s.LoadProjects()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		fmt.Println("  No projects yet. Add one with: auditdesk project add <name>")
		return nil
	}

	var rows [][]string
	for _, p := range projects {
		budget := "-"
		if p.Budget != nil {
			budget = cli.FormatHours(float64(p.Budget.TotalHours))
		}
		rows = append(rows, []string{
			p.Name, p.Client, p.Sector,
			cli.FormatDate(p.StartDate), cli.FormatDate(p.EndDate),
			cli.FormatAmount(cfg.General.CurrencyUnit, p.TotalBudget), budget,
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Project", "Client", "Sector", "Start", "End", "Fee", "Hours"},
		Rows:    rows,
	}))
	return nil
}

func runProjectRm(_ *cobra.Command, args []string) error {
	name := args[0]

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	projects, err := s.LoadProjects()
	if err != nil {
		return err
	}

	kept := projects[:0]
	for _, p := range projects {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(projects) {
		return fmt.Errorf("project %q not found", name)
	}
	if err := s.SaveProjects(kept); err != nil {
		return err
	}

	// Cascade to the project's time and schedule entries.
	entries, err := s.LoadTimeEntries()
	if err != nil {
		return err
	}
	keptEntries := entries[:0]
	for _, e := range entries {
		if e.Project != name {
			keptEntries = append(keptEntries, e)
		}
	}
	removedEntries := len(entries) - len(keptEntries)
	if removedEntries > 0 {
		if err := s.SaveTimeEntries(keptEntries); err != nil {
			return err
		}
	}

	bookings, err := s.LoadScheduleEntries()
	if err != nil {
		return err
	}
	keptBookings := bookings[:0]
	for _, b := range bookings {
		if b.Project != name {
			keptBookings = append(keptBookings, b)
		}
	}
	removedBookings := len(bookings) - len(keptBookings)
	if removedBookings > 0 {
		if err := s.SaveScheduleEntries(keptBookings); err != nil {
			return err
		}
	}

	if !flagQuiet {
		fmt.Printf("  Removed project %q", name)
		if removedEntries > 0 || removedBookings > 0 {
			fmt.Printf(" (%d time entries, %d bookings)", removedEntries, removedBookings)
		}
		fmt.Println()
	}
	return nil
}
