package cmd

import (
	"fmt"
	"time"

	"auditdesk/internal/cli"
	"auditdesk/internal/model"
	"auditdesk/internal/schedule"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagSchMember string
	flagSchProj   string
	flagSchStart  string
	flagSchEnd    string
	flagSchHours  float64
	flagSchPhase  string
	flagSchNotes  string

	flagSchFilterMember string
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Book team members onto projects",
}

var scheduleAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Book a team member for a date range",
	RunE:  runScheduleAdd,
}

var scheduleListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schedule entries",
	RunE:  runScheduleList,
}

var scheduleRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove a schedule entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runScheduleRm,
}

var scheduleConflictsCmd = &cobra.Command{
	Use:   "conflicts",
	Short: "Show double-booked team members",
	RunE:  runScheduleConflicts,
}

func init() {
	scheduleAddCmd.Flags().StringVarP(&flagSchMember, "member", "m", "", "Team member name")
	scheduleAddCmd.Flags().StringVarP(&flagSchProj, "project", "p", "", "Project name")
	scheduleAddCmd.Flags().StringVar(&flagSchStart, "start", "", "First day (YYYY-MM-DD)")
	scheduleAddCmd.Flags().StringVar(&flagSchEnd, "end", "", "Last day (YYYY-MM-DD, inclusive)")
	scheduleAddCmd.Flags().Float64Var(&flagSchHours, "hours-per-day", 8, "Booked hours per day")
	scheduleAddCmd.Flags().StringVar(&flagSchPhase, "phase", "", "Work phase")
	scheduleAddCmd.Flags().StringVar(&flagSchNotes, "notes", "", "Free-form notes")
	_ = scheduleAddCmd.MarkFlagRequired("member")
	_ = scheduleAddCmd.MarkFlagRequired("project")
	_ = scheduleAddCmd.MarkFlagRequired("start")
	_ = scheduleAddCmd.MarkFlagRequired("end")
	_ = scheduleAddCmd.MarkFlagRequired("phase")

	scheduleListCmd.Flags().StringVarP(&flagSchFilterMember, "member", "m", "", "Filter to team member")

	scheduleCmd.AddCommand(scheduleAddCmd)
	scheduleCmd.AddCommand(scheduleListCmd)
	scheduleCmd.AddCommand(scheduleRmCmd)
	scheduleCmd.AddCommand(scheduleConflictsCmd)
	rootCmd.AddCommand(scheduleCmd)
}

func runScheduleAdd(cmd *cobra.Command, _ []string) error {
	start, err := parseDateFlag("start", flagSchStart)
	if err != nil {
		return err
	}
	end, err := parseDateFlag("end", flagSchEnd)
	if err != nil {
		return err
	}

	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if !cmd.Flags().Changed("hours-per-day") {
		flagSchHours = cfg.General.HoursPerDay
	}

	entry := model.ScheduleEntry{
		ID:          uuid.NewString(),
		TeamMember:  flagSchMember,
		Project:     flagSchProj,
		Start:       start,
		End:         end,
		HoursPerDay: flagSchHours,
		Phase:       model.Phase(flagSchPhase),
		Status:      model.StatusScheduled,
		Notes:       flagSchNotes,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := schedule.Validate(entry); err != nil {
		return err
	}

	members, err := s.LoadTeamMembers()
	if err != nil {
		return err
	}
	known := false
	for _, m := range members {
		if m.Name == entry.TeamMember {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("team member %q not found", entry.TeamMember)
	}

	entries, err := s.LoadScheduleEntries()
	if err != nil {
		return err
	}

	// The booking goes through either way; overlaps are warnings, not errors.
	overlapping := schedule.ConflictsWith(entry, entries)

	entries = append(entries, entry)
	if err := s.SaveScheduleEntries(entries); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Booked %s on %s, %s to %s (%s)\n",
			entry.TeamMember, entry.Project,
			cli.FormatDate(entry.Start), cli.FormatDate(entry.End), entry.ID[:8])
	}
	for _, other := range overlapping {
		fmt.Printf("  %s overlaps %s on %s (%s to %s)\n",
			cli.Warn("Warning:"), entry.TeamMember, other.Project,
			cli.FormatDate(other.Start), cli.FormatDate(other.End))
	}
	return nil
}

func runScheduleList(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.LoadScheduleEntries()
	if err != nil {
		return err
	}

	var rows [][]string
	for _, e := range entries {
		if flagSchFilterMember != "" && e.TeamMember != flagSchFilterMember {
			continue
		}
		rows = append(rows, []string{
			e.ID[:8], e.TeamMember, e.Project,
			cli.FormatDate(e.Start), cli.FormatDate(e.End),
			cli.FormatHours(e.HoursPerDay), e.Phase.Label(), e.Status,
			cli.FormatHours(schedule.ScheduledHours(e)),
		})
	}
	if len(rows) == 0 {
		fmt.Println("  No schedule entries found.")
		return nil
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"ID", "Member", "Project", "Start", "End", "Hrs/day", "Phase", "Status", "Total"},
		Rows:    rows,
	}))
	return nil
}

func runScheduleRm(_ *cobra.Command, args []string) error {
	id := args[0]

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.LoadScheduleEntries()
	if err != nil {
		return err
	}

	kept := entries[:0]
	removed := 0
	for _, e := range entries {
		if e.ID == id || (len(id) >= 8 && len(e.ID) >= len(id) && e.ID[:len(id)] == id) {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return fmt.Errorf("schedule entry %q not found", id)
	}
	if removed > 1 {
		return fmt.Errorf("id %q is ambiguous (%d matches)", id, removed)
	}
	if err := s.SaveScheduleEntries(kept); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Println("  Removed schedule entry")
	}
	return nil
}

func runScheduleConflicts(_ *cobra.Command, _ []string) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	entries, err := s.LoadScheduleEntries()
	if err != nil {
		return err
	}

	conflicts := schedule.Conflicts(entries)
	if len(conflicts) == 0 {
		fmt.Println("  " + cli.OK("No scheduling conflicts."))
		return nil
	}

	var rows [][]string
	for _, c := range conflicts {
		rows = append(rows, []string{
			c.Member,
			c.A.Project, fmt.Sprintf("%s to %s", cli.FormatDate(c.A.Start), cli.FormatDate(c.A.End)),
			c.B.Project, fmt.Sprintf("%s to %s", cli.FormatDate(c.B.Start), cli.FormatDate(c.B.End)),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Scheduling Conflicts",
		Headers: []string{"Member", "Project A", "Dates A", "Project B", "Dates B"},
		Rows:    rows,
	}))
	return nil
}
