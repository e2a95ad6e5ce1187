package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jgoulah/energyanalyzer/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the default settings",
	Long: `Creates a config file listing every setting with its default value. The base year
is taken from --base-year, or the current year when the flag is not given, and is
written out explicitly so later runs are reproducible.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	cfg := config.Default()
	cfg.BaseYear = baseYear
	if cfg.BaseYear == 0 {
		cfg.BaseYear = time.Now().Year()
	}

	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("✓ Wrote %s (base_year: %d)\n", path, cfg.BaseYear)
	return nil
}
