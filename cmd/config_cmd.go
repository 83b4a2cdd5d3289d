package cmd

import (
	"fmt"

	"auditdesk/internal/config"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current defaults",
	RunE:  runConfigInit,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Hours per day: %g\n", cfg.General.HoursPerDay)
	fmt.Printf("    Currency unit: %s\n", cfg.General.CurrencyUnit)
	fmt.Printf("    Data dir:      %s\n", config.DataDir(cfg))
	fmt.Println()

	fmt.Println("  [Firm]")
	if cfg.Firm.Name != "" {
		fmt.Printf("    Name:    %s\n", cfg.Firm.Name)
	} else {
		fmt.Println("    Name:    not set")
	}
	if cfg.Firm.Partner != "" {
		fmt.Printf("    Partner: %s\n", cfg.Firm.Partner)
	}
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	if config.Exists() {
		return fmt.Errorf("config file already exists at %s", config.ConfigPath())
	}
	if err := config.Save(config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  Wrote %s\n", config.ConfigPath())
	return nil
}
