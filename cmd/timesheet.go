package cmd

import (
	"fmt"
	"time"

	"auditdesk/internal/cli"
	"auditdesk/internal/model"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagTSProject  string
	flagTSResource string
	flagTSPhase    string
	flagTSDate     string
	flagTSHours    float64
	flagTSDesc     string

	flagTSFilterProject  string
	flagTSFilterResource string
)

var timesheetCmd = &cobra.Command{
	Use:   "timesheet",
	Short: "Record and review hours worked",
}

var timesheetAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record hours against a project phase",
	RunE:  runTimesheetAdd,
}

var timesheetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List time entries",
	RunE:  runTimesheetList,
}

var timesheetRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a time entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runTimesheetRm,
}

func init() {
	timesheetAddCmd.Flags().StringVarP(&flagTSProject, "project", "p", "", "Project name")
	timesheetAddCmd.Flags().StringVarP(&flagTSResource, "resource", "r", "", "Team member name")
	timesheetAddCmd.Flags().StringVar(&flagTSPhase, "phase", "", "Work phase (planning, fieldwork, managerReview, partnerReview)")
	timesheetAddCmd.Flags().StringVar(&flagTSDate, "date", "", "Work date (YYYY-MM-DD, default today)")
	timesheetAddCmd.Flags().Float64Var(&flagTSHours, "hours", 0, "Hours worked")
	timesheetAddCmd.Flags().StringVar(&flagTSDesc, "desc", "", "Work description")
	_ = timesheetAddCmd.MarkFlagRequired("project")
	_ = timesheetAddCmd.MarkFlagRequired("resource")
	_ = timesheetAddCmd.MarkFlagRequired("phase")
	_ = timesheetAddCmd.MarkFlagRequired("hours")

	timesheetListCmd.Flags().StringVarP(&flagTSFilterProject, "project", "p", "", "Filter to project")
	timesheetListCmd.Flags().StringVarP(&flagTSFilterResource, "resource", "r", "", "Filter to resource")

	timesheetCmd.AddCommand(timesheetAddCmd)
	timesheetCmd.AddCommand(timesheetListCmd)
	timesheetCmd.AddCommand(timesheetRmCmd)
	rootCmd.AddCommand(timesheetCmd)
}

func runTimesheetAdd(_ *cobra.Command, _ []string) error {
	phase := model.Phase(flagTSPhase)
	if !phase.Valid() {
		return fmt.Errorf("unknown phase %q", flagTSPhase)
	}
	if flagTSHours <= 0 || flagTSHours > 24 {
		return fmt.Errorf("hours must be in (0, 24], got %v", flagTSHours)
	}

	date := time.Now().Truncate(24 * time.Hour)
	if flagTSDate != "" {
		var err error
		date, err = time.Parse("2006-01-02", flagTSDate)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
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
	idx := -1
	for i, p := range projects {
		if p.Name == flagTSProject {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("project %q not found", flagTSProject)
	}

	entries, err := s.LoadTimeEntries()
	if err != nil {
		return err
	}
	entry := model.TimeEntry{
		ID:          uuid.NewString(),
		Project:     flagTSProject,
		Resource:    flagTSResource,
		Phase:       phase,
		Date:        date,
		Hours:       flagTSHours,
		Description: flagTSDesc,
		EntryTime:   time.Now(),
	}
	entries = append(entries, entry)
	if err := s.SaveTimeEntries(entries); err != nil {
		return err
	}

	// Roll the hours into the stored budget's actuals when one is attached.
	if adjustBudgetActuals(projects, entry.Project, phase, entry.Hours) {
		if err := s.SaveProjects(projects); err != nil {
			return err
		}
	}

	if !flagQuiet {
		fmt.Printf("  Recorded %s for %s on %s (%s)\n",
			cli.FormatHours(entry.Hours), entry.Resource, entry.Project, entry.ID[:8])
	}
	return nil
}

// adjustBudgetActuals applies delta to the named project's budget actuals
// for the given phase, clamping at zero. Reports whether a budget was
// updated and projects need saving.
func adjustBudgetActuals(projects []model.Project, name string, phase model.Phase, delta float64) bool {
	for i := range projects {
		if projects[i].Name != name {
			continue
		}
		b := projects[i].Budget
		if b == nil {
			return false
		}
		if b.ActualHours == nil {
			b.ActualHours = map[model.Phase]float64{}
		}
		h := b.ActualHours[phase] + delta
		if h < 0 {
			h = 0
		}
		b.ActualHours[phase] = h
		return true
	}
	return false
}

func runTimesheetList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.LoadTimeEntries()
	if err != nil {
		return err
	}

	var rows [][]string
	var total float64
	for _, e := range entries {
		if flagTSFilterProject != "" && e.Project != flagTSFilterProject {
			continue
		}
		if flagTSFilterResource != "" && e.Resource != flagTSFilterResource {
			continue
		}
		rows = append(rows, []string{
			e.ID[:8], cli.FormatDate(e.Date), e.Project, e.Resource,
			e.Phase.Label(), cli.FormatHours(e.Hours), e.Description,
		})
		total += e.Hours
	}
	if len(rows) == 0 {
		fmt.Println("  No time entries found.")
		return nil
	}
	rows = append(rows, []string{"---"})
	rows = append(rows, []string{"", "", "", "", "Total", cli.FormatHours(total), ""})

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Date", "Project", "Resource", "Phase", "Hours", "Description"},
		Rows:    rows,
	}))
	return nil
}

func runTimesheetRm(_ *cobra.Command, args []string) error {
	id := args[0]

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.LoadTimeEntries()
	if err != nil {
		return err
	}

	kept := entries[:0]
	removed := 0
	var dropped model.TimeEntry
	for _, e := range entries {
		// Accept the short prefix shown by list.
		if e.ID == id || (len(id) >= 8 && len(e.ID) >= len(id) && e.ID[:len(id)] == id) {
			removed++
			dropped = e
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return fmt.Errorf("time entry %q not found", id)
	}
	if removed > 1 {
		return fmt.Errorf("id %q is ambiguous (%d matches)", id, removed)
	}
	if err := s.SaveTimeEntries(kept); err != nil {
		return err
	}

	// Back the hours out of the budget actuals they were rolled into.
	projects, err := s.LoadProjects()
	if err != nil {
		return err
	}
	if adjustBudgetActuals(projects, dropped.Project, dropped.Phase, -dropped.Hours) {
		if err := s.SaveProjects(projects); err != nil {
			return err
		}
	}

	if !flagQuiet {
		fmt.Println("  Removed time entry")
	}
	return nil
}
