// Package cmd implements the auditdesk CLI commands.
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"auditdesk/internal/cli"
	"auditdesk/internal/config"
	"auditdesk/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDataDir string
	flagQuiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "auditdesk",
	Short: "Audit engagement planning CLI",
	Long:  "Plan audit engagements: budget hours, staff allocation, materiality, scheduling and time tracking.",
	RunE:  runOverview,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDataDir, "data-dir", "d", "", "Data directory (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
}

// loadConfig reads the config file and applies the --data-dir override.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if flagDataDir != "" {
		cfg.General.DataDir = flagDataDir
	}
	return cfg, nil
}

// openStore is the shared database opening path used by all commands.
func openStore() (*store.Store, config.Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, cfg, err
	}
	s, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return nil, cfg, err
	}
	return s, cfg, nil
}

func runOverview(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	projects, timeEntries, members, schedules, err := s.Counts()
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("AUDITDESK"))
	fmt.Println()

	table := cli.Table{
		Headers: []string{"Item", "Count"},
		Rows: [][]string{
			{"Projects", strconv.Itoa(projects)},
			{"Team members", strconv.Itoa(members)},
			{"Time entries", strconv.Itoa(timeEntries)},
			{"Schedule entries", strconv.Itoa(schedules)},
		},
	}
	fmt.Print(cli.RenderTable(table))

	if projects > 0 {
		all, err := s.LoadProjects()
		if err != nil {
			return err
		}
		var rows [][]string
		now := time.Now()
		for _, p := range all {
			status := "upcoming"
			switch {
			case !p.EndDate.IsZero() && p.EndDate.Before(now):
				status = "ended"
			case !p.StartDate.IsZero() && !p.StartDate.After(now):
				status = "active"
			}
			rows = append(rows, []string{p.Name, p.Client, cli.FormatDate(p.EndDate), status})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "Engagements",
			Headers: []string{"Project", "Client", "End", "Status"},
			Rows:    rows,
		}))
	}

	if !flagQuiet {
		fmt.Printf("\n  Data: %s\n", config.DataDir(cfg))
	}
	return nil
}
