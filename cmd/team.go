package cmd

import (
	"fmt"
	"strings"

	"auditdesk/internal/cli"
	"auditdesk/internal/model"

	"github.com/spf13/cobra"
)

var (
	flagMemberRole   string
	flagMemberSkills []string
	flagMemberAvail  float64
	flagMemberRate   float64
	flagMemberStart  string
	flagMemberEnd    string
	flagMemberNotes  string
)

var teamCmd = &cobra.Command{
	Use:   "team",
	Short: "Manage team members",
}

var teamAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a team member",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamAdd,
}

var teamListCmd = &cobra.Command{
	Use:   "list",
	Short: "List team members",
	RunE:  runTeamList,
}

var teamRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove a team member",
	Args:  cobra.ExactArgs(1),
	RunE:  runTeamRm,
}

func init() {
	teamAddCmd.Flags().StringVarP(&flagMemberRole, "role", "r", "", "Staffing role (partner, manager, qualifiedAssistant, seniorArticle, juniorArticle, eqcr)")
	teamAddCmd.Flags().StringSliceVar(&flagMemberSkills, "skills", nil, "Comma-separated skills")
	teamAddCmd.Flags().Float64Var(&flagMemberAvail, "availability", 160, "Available hours per month")
	teamAddCmd.Flags().Float64Var(&flagMemberRate, "rate", 0, "Hourly rate")
	teamAddCmd.Flags().StringVar(&flagMemberStart, "start", "", "Available from (YYYY-MM-DD)")
	teamAddCmd.Flags().StringVar(&flagMemberEnd, "end", "", "Available until (YYYY-MM-DD)")
	teamAddCmd.Flags().StringVar(&flagMemberNotes, "notes", "", "Free-form notes")
	_ = teamAddCmd.MarkFlagRequired("role")

	teamCmd.AddCommand(teamAddCmd)
	teamCmd.AddCommand(teamListCmd)
	teamCmd.AddCommand(teamRmCmd)
	rootCmd.AddCommand(teamCmd)
}

func validRole(role string) bool {
	for _, r := range model.Roles() {
		if string(r) == role {
			return true
		}
	}
	return false
}

func runTeamAdd(_ *cobra.Command, args []string) error {
	name := args[0]
	if !validRole(flagMemberRole) {
		return fmt.Errorf("unknown role %q", flagMemberRole)
	}
	if flagMemberAvail < 0 {
		return fmt.Errorf("availability must be non-negative")
	}

	start, err := parseDateFlag("start", flagMemberStart)
	if err != nil {
		return err
	}
	end, err := parseDateFlag("end", flagMemberEnd)
	if err != nil {
		return err
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	members, err := s.LoadTeamMembers()
	if err != nil {
		return err
	}
	for _, m := range members {
		if m.Name == name {
			return fmt.Errorf("team member %q already exists", name)
		}
	}

	members = append(members, model.TeamMember{
		Name:              name,
		Role:              flagMemberRole,
		Skills:            flagMemberSkills,
		AvailabilityHours: flagMemberAvail,
		HourlyRate:        flagMemberRate,
		StartDate:         start,
		EndDate:           end,
		Notes:             flagMemberNotes,
	})
	if err := s.SaveTeamMembers(members); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Added %s (%s)\n", name, model.Role(flagMemberRole).Label())
	}
	return nil
}

func runTeamList(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	members, err := s.LoadTeamMembers()
	if err != nil {
		return err
	}
	if len(members) == 0 {
		fmt.Println("  No team members yet. Add one with: auditdesk team add <name> --role <role>")
		return nil
	}

	var rows [][]string
	for _, m := range members {
		rows = append(rows, []string{
			m.Name,
			model.Role(m.Role).Label(),
			strings.Join(m.Skills, ", "),
			cli.FormatHours(m.AvailabilityHours),
			cli.FormatAmount(cfg.General.CurrencyUnit, m.HourlyRate),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Role", "Skills", "Avail/mo", "Rate"},
		Rows:    rows,
	}))
	return nil
}

func runTeamRm(_ *cobra.Command, args []string) error {
	name := args[0]

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	members, err := s.LoadTeamMembers()
	if err != nil {
		return err
	}

	kept := members[:0]
	for _, m := range members {
		if m.Name != name {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(members) {
		return fmt.Errorf("team member %q not found", name)
	}
	if err := s.SaveTeamMembers(kept); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Removed team member %q\n", name)
	}
	return nil
}
