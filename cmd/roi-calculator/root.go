package main

import (
	"github.com/spf13/cobra"

	"github.com/worksprings/inventory-roi/internal/cli"
)

var (
	envFile string
)

var rootCmd = &cobra.Command{
	Use:   "roi-calculator",
	Short: "Inventory counting ROI calculator",
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(cli.NewCmdCalculate())
	rootCmd.AddCommand(cli.NewCmdFields())

	runCmd.Flags().StringVar(&envFile, "env-file", ".env", "Path to an optional dotenv file loaded before the environment is read")
}
