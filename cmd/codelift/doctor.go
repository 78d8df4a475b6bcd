package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/codelift/codelift/internal/config"
	"github.com/codelift/codelift/internal/plan"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check codelift configuration and environment",
	Long: `Run checks to diagnose common configuration problems.

This command checks for:
- A .env file in the working directory
- Required tracker environment variables
- The assessment report and refactor plan

Exit codes:
  0 - All required checks passed
  1 - One or more required checks failed`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		fmt.Printf("Running codelift checks...\n\n")

		failed := false

		fmt.Printf("%s Environment file\n", cyan("→"))
		if err := godotenv.Load(); err != nil {
			fmt.Printf("  %s No .env file (using process environment only)\n", yellow("⚠"))
		} else {
			fmt.Printf("  %s Loaded .env\n", green("✓"))
		}

		fmt.Printf("%s Tracker configuration\n", cyan("→"))
		for _, name := range config.RequiredVars {
			if os.Getenv(name) == "" {
				fmt.Printf("  %s %s is not set\n", red("✗"), name)
				failed = true
			} else {
				fmt.Printf("  %s %s\n", green("✓"), name)
			}
		}
		if os.Getenv(config.EnvProjectNumber) == "" {
			fmt.Printf("  %s %s not set (issues won't be placed on a board)\n",
				yellow("⚠"), config.EnvProjectNumber)
		} else {
			fmt.Printf("  %s %s\n", green("✓"), config.EnvProjectNumber)
		}

		fmt.Printf("%s Workflow artifacts\n", cyan("→"))
		if _, err := os.Stat(reportPath); err != nil {
			fmt.Printf("  %s No assessment report yet (run: codelift assess)\n", yellow("⚠"))
		} else {
			fmt.Printf("  %s %s\n", green("✓"), reportPath)
		}
		if _, err := os.Stat(plan.DefaultPlanPath); err != nil {
			fmt.Printf("  %s No refactor plan yet (run: codelift plan init)\n", yellow("⚠"))
		} else {
			fmt.Printf("  %s %s\n", green("✓"), plan.DefaultPlanPath)
		}

		fmt.Println()
		if failed {
			fmt.Printf("%s Some required checks failed\n", red("✗"))
			os.Exit(1)
		}
		fmt.Printf("%s All required checks passed\n", green("✓"))
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
