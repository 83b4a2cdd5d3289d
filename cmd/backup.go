package cmd

import (
	"fmt"

	"auditdesk/internal/cli"
	"auditdesk/internal/config"
	"auditdesk/internal/store"

	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Create, list and restore backups",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a backup of all engagement data",
	RunE:  runBackupCreate,
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List backups, newest first",
	RunE:  runBackupList,
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <name>",
	Short: "Restore a backup (snapshots current data first)",
	Args:  cobra.ExactArgs(1),
	RunE:  runBackupRestore,
}

func init() {
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}

func runBackupCreate(_ *cobra.Command, _ []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	info, err := s.Backup(config.BackupsDir(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("  Created %s (%s)\n", info.Name, cli.FormatBytes(info.SizeBytes))
	return nil
}

func runBackupList(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	backups, err := store.ListBackups(config.BackupsDir(cfg))
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("  No backups yet. Create one with: auditdesk backup create")
		return nil
	}

	var rows [][]string
	for _, b := range backups {
		rows = append(rows, []string{
			b.Name,
			b.CreatedAt.Format("2006-01-02 15:04:05"),
			cli.FormatBytes(b.SizeBytes),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Name", "Created", "Size"},
		Rows:    rows,
	}))
	return nil
}

func runBackupRestore(_ *cobra.Command, args []string) error {
	s, cfg, err := openStore()
	if err != nil {
		return err
	}
	// Restore closes the database itself.

	snapshot, err := s.Restore(config.BackupsDir(cfg), args[0])
	if err != nil {
		_ = s.Close()
		return err
	}

	fmt.Printf("  Restored %s\n", args[0])
	if !flagQuiet {
		fmt.Printf("  Previous data saved as %s\n", snapshot.Name)
	}
	return nil
}
