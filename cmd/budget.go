package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"auditdesk/internal/budget"
	"auditdesk/internal/cli"
	"auditdesk/internal/model"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagCompany     string
	flagTurnover    float64
	flagSector      string
	flagListed      bool
	flagControls    int
	flagInherent    int
	flagComplexity  int
	flagInfoDelay   int
	flagYearEnd     string
	flagAttach      string
	flagInteractive bool
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Calculate the hours budget for an engagement",
	Long: `Calculate phase hours, staff allocation and EQCR requirement from
turnover, industry sector and risk ratings. Ratings are 1 (low) to 3 (high).`,
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().StringVar(&flagCompany, "company", "", "Company name")
	budgetCmd.Flags().Float64VarP(&flagTurnover, "turnover", "t", 0, "Annual turnover in Cr")
	budgetCmd.Flags().StringVarP(&flagSector, "sector", "s", "", "Industry sector code (see: auditdesk budget sectors)")
	budgetCmd.Flags().BoolVar(&flagListed, "listed", false, "Company is listed")
	budgetCmd.Flags().IntVar(&flagControls, "controls", 1, "Controls risk rating 1..3")
	budgetCmd.Flags().IntVar(&flagInherent, "inherent", 1, "Inherent risk rating 1..3")
	budgetCmd.Flags().IntVar(&flagComplexity, "complexity", 1, "Complexity rating 1..3")
	budgetCmd.Flags().IntVar(&flagInfoDelay, "info-delay", 1, "Information delay risk rating 1..3")
	budgetCmd.Flags().StringVar(&flagYearEnd, "fye", "", "Financial year end (YYYY-MM-DD)")
	budgetCmd.Flags().StringVarP(&flagAttach, "project", "p", "", "Attach the result to a stored project")
	budgetCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Prompt for inputs")

	budgetCmd.AddCommand(sectorsCmd)
	rootCmd.AddCommand(budgetCmd)
}

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "List known industry sector codes",
	RunE: func(_ *cobra.Command, _ []string) error {
		calc := budget.New()
		var rows [][]string
		for _, s := range calc.Sectors() {
			rows = append(rows, []string{s.Code, s.Name})
		}
		fmt.Print(cli.RenderTable(cli.Table{
			Headers: []string{"Code", "Sector"},
			Rows:    rows,
		}))
		return nil
	},
}

func runBudget(_ *cobra.Command, _ []string) error {
	calc := budget.New()

	in := model.EngagementInput{
		CompanyName:   flagCompany,
		Turnover:      flagTurnover,
		Listed:        flagListed,
		Sector:        strings.ToUpper(flagSector),
		ControlsRisk:  model.RiskLevel(flagControls),
		InherentRisk:  model.RiskLevel(flagInherent),
		Complexity:    model.RiskLevel(flagComplexity),
		InfoDelayRisk: model.RiskLevel(flagInfoDelay),
	}

	if flagInteractive {
		var err error
		in, err = promptEngagement(calc, in)
		if err != nil {
			return err
		}
	}

	if err := calc.Validate(in); err != nil {
		return err
	}

	result := calc.Compute(in)

	if flagYearEnd != "" {
		fye, err := time.Parse("2006-01-02", flagYearEnd)
		if err != nil {
			return fmt.Errorf("parsing --fye: %w", err)
		}
		result.FinancialYearEnd = &fye
	}

	printBudget(calc, in, result)

	if flagAttach != "" {
		if err := attachBudget(flagAttach, &result); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("\n  Budget attached to project %q\n", flagAttach)
		}
	}
	return nil
}

// promptEngagement runs the interactive form, seeded with any flag values.
func promptEngagement(calc *budget.Calculator, in model.EngagementInput) (model.EngagementInput, error) {
	turnover := ""
	if in.Turnover > 0 {
		turnover = strconv.FormatFloat(in.Turnover, 'f', -1, 64)
	}

	sectorOpts := make([]huh.Option[string], 0, len(calc.Sectors()))
	for _, s := range calc.Sectors() {
		sectorOpts = append(sectorOpts, huh.NewOption(fmt.Sprintf("%s (%s)", s.Name, s.Code), s.Code))
	}

	ratingOpts := []huh.Option[int]{
		huh.NewOption("Low", 1),
		huh.NewOption("Medium", 2),
		huh.NewOption("High", 3),
	}

	controls := int(in.ControlsRisk)
	inherent := int(in.InherentRisk)
	complexity := int(in.Complexity)
	infoDelay := int(in.InfoDelayRisk)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Company name").
				Value(&in.CompanyName),
			huh.NewInput().
				Title("Annual turnover (Cr)").
				Value(&turnover).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil || v < 0 {
						return fmt.Errorf("enter a non-negative number")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Industry sector").
				Options(sectorOpts...).
				Value(&in.Sector),
			huh.NewConfirm().
				Title("Listed company?").
				Value(&in.Listed),
		),
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Controls risk").
				Options(ratingOpts...).
				Value(&controls),
			huh.NewSelect[int]().
				Title("Inherent risk").
				Options(ratingOpts...).
				Value(&inherent),
			huh.NewSelect[int]().
				Title("Complexity").
				Options(ratingOpts...).
				Value(&complexity),
			huh.NewSelect[int]().
				Title("Information delay risk").
				Options(ratingOpts...).
				Value(&infoDelay),
		),
	)

	if err := form.Run(); err != nil {
		return in, err
	}

	in.Turnover, _ = strconv.ParseFloat(turnover, 64)
	in.ControlsRisk = model.RiskLevel(controls)
	in.InherentRisk = model.RiskLevel(inherent)
	in.Complexity = model.RiskLevel(complexity)
	in.InfoDelayRisk = model.RiskLevel(infoDelay)
	return in, nil
}

func printBudget(calc *budget.Calculator, in model.EngagementInput, r model.BudgetResult) {
	title := "AUDIT BUDGET"
	if in.CompanyName != "" {
		title = strings.ToUpper(in.CompanyName)
	}
	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	sectorName, _ := calc.SectorName(in.Sector)
	eqcr := "No"
	if r.EQCRRequired {
		eqcr = "Yes"
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Parameter", "Value"},
		Rows: [][]string{
			{"Turnover", fmt.Sprintf("%s Cr", strconv.FormatFloat(in.Turnover, 'f', -1, 64))},
			{"Category", r.Category.Label()},
			{"Sector", fmt.Sprintf("%s (%s)", sectorName, in.Sector)},
			{"EQCR required", eqcr},
		},
	}))

	fmt.Println()
	phaseRows := make([][]string, 0, 6)
	for _, ph := range model.Phases() {
		phaseRows = append(phaseRows, []string{ph.Label(), cli.FormatHours(float64(r.PhaseHours[ph]))})
	}
	phaseRows = append(phaseRows, []string{"---"})
	phaseRows = append(phaseRows, []string{"Total", fmt.Sprintf("%s (%s)", cli.FormatHours(float64(r.TotalHours)), cli.FormatDays(r.TotalDays))})
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Phase Hours",
		Headers: []string{"Phase", "Hours"},
		Rows:    phaseRows,
	}))

	fmt.Println()
	var staffRows [][]string
	for _, role := range model.Roles() {
		h := r.StaffHours[role]
		if h == 0 {
			continue
		}
		staffRows = append(staffRows, []string{role.Label(), cli.FormatHours(float64(h))})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Staff Allocation",
		Headers: []string{"Role", "Hours"},
		Rows:    staffRows,
	}))

	fmt.Println()
	var phaseAlloc [][]string
	for _, ph := range model.Phases() {
		roles := r.StaffByPhase[ph]
		keys := make([]model.Role, 0, len(roles))
		for role := range roles {
			keys = append(keys, role)
		}
		sort.Slice(keys, func(i, j int) bool { return roleOrder(keys[i]) < roleOrder(keys[j]) })
		for i, role := range keys {
			label := ""
			if i == 0 {
				label = ph.Label()
			}
			phaseAlloc = append(phaseAlloc, []string{label, role.Label(), cli.FormatHours(float64(roles[role]))})
		}
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Allocation by Phase",
		Headers: []string{"Phase", "Role", "Hours"},
		Rows:    phaseAlloc,
	}))

	fmt.Println()
	fmt.Println("  " + cli.Muted("Risk notes"))
	for _, note := range r.RiskNotes {
		fmt.Printf("  - %s\n", note)
	}
}

func roleOrder(r model.Role) int {
	for i, candidate := range model.Roles() {
		if candidate == r {
			return i
		}
	}
	return len(model.Roles())
}

// attachBudget stores the computed budget on the named project.
func attachBudget(name string, r *model.BudgetResult) error {
	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	projects, err := s.LoadProjects()
	if err != nil {
		return err
	}
	found := false
	for i := range projects {
		if projects[i].Name == name {
			projects[i].Budget = r
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("project %q not found", name)
	}
	return s.SaveProjects(projects)
}
