package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codelift/codelift/internal/plan"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Work with the refactor plan",
}

var planInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter refactor plan",
	Long: `Write a refactor plan template to docs/modernization/refactor-plan.md.

The template contains sample task blocks in the format 'codelift issues
create' understands. Refuses to overwrite an existing plan.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		green := color.New(color.FgGreen).SprintFunc()

		if err := plan.WriteTemplate(plan.DefaultPlanPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s Wrote %s\n", green("✓"), plan.DefaultPlanPath)
		fmt.Println("Edit the task blocks, then run: codelift issues create")
	},
}

var planShowCmd = &cobra.Command{
	Use:   "show [plan-file]",
	Short: "Parse the plan and list its tasks",
	Long: `Parse the refactor plan and print what 'issues create' would publish,
without touching the tracker.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planPath := plan.DefaultPlanPath
		if len(args) > 0 {
			planPath = args[0]
		}

		cyan := color.New(color.FgCyan).SprintFunc()

		content, err := os.ReadFile(planPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: refactor plan not found: %s\n", planPath)
			os.Exit(1)
		}

		tasks := plan.Parse(string(content))
		if len(tasks) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no tasks found in %s\n", planPath)
			os.Exit(1)
		}

		fmt.Printf("%d task(s) in %s:\n\n", len(tasks), planPath)
		for _, t := range tasks {
			fmt.Printf("%s %s\n", cyan(t.ID), t.Title)
			fmt.Printf("  priority=%s risk=%s effort=%s deps=%s\n",
				t.Priority, t.Risk, t.Effort, t.Dependencies)
		}
	},
}

func init() {
	planCmd.AddCommand(planInitCmd)
	planCmd.AddCommand(planShowCmd)
	rootCmd.AddCommand(planCmd)
}
