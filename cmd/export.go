package cmd

import (
	"fmt"

	"auditdesk/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagExportProjects  string
	flagExportTimesheet string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export data to JSON and CSV files",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagExportProjects, "projects", "", "Write projects to a JSON file")
	exportCmd.Flags().StringVar(&flagExportTimesheet, "timesheet", "", "Write time entries to a CSV file")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	if flagExportProjects == "" && flagExportTimesheet == "" {
		return cmd.Help()
	}

	s, _, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	if flagExportProjects != "" {
		projects, err := s.LoadProjects()
		if err != nil {
			return err
		}
		if err := store.WriteProjectsJSON(flagExportProjects, projects); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Wrote %d projects to %s\n", len(projects), flagExportProjects)
		}
	}

	if flagExportTimesheet != "" {
		entries, err := s.LoadTimeEntries()
		if err != nil {
			return err
		}
		if err := store.WriteTimeEntriesCSV(flagExportTimesheet, entries); err != nil {
			return err
		}
		if !flagQuiet {
			fmt.Printf("  Wrote %d time entries to %s\n", len(entries), flagExportTimesheet)
		}
	}
	return nil
}
