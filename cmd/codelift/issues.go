package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codelift/codelift/internal/config"
	"github.com/codelift/codelift/internal/plan"
	"github.com/codelift/codelift/internal/tracker"
)

var issuesCmd = &cobra.Command{
	Use:   "issues",
	Short: "Publish refactor-plan tasks to the issue tracker",
}

var issuesCreateCmd = &cobra.Command{
	Use:   "create [plan-file]",
	Short: "Create one tracker issue per plan task",
	Long: `Parse the refactor plan and create a GitHub issue for each task block.

Tasks are published sequentially in document order. A failed creation is
recorded and the batch continues; the command exits non-zero if any task
failed, but successes are kept.

Requires GITHUB_API_KEY, GITHUB_OWNER and GITHUB_REPO in the environment
or a .env file. Set GITHUB_PROJECT_NUMBER to also place new issues in the
board's Backlog column.

Examples:
  # Publish the default plan
  codelift issues create

  # Publish a specific plan file
  codelift issues create docs/modernization/phase2-plan.md`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planPath := plan.DefaultPlanPath
		if len(args) > 0 {
			planPath = args[0]
		}

		green := color.New(color.FgGreen).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		content, err := os.ReadFile(planPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: refactor plan not found: %s\n", planPath)
			fmt.Fprintf(os.Stderr, "\nCreate a plan first:\n")
			fmt.Fprintf(os.Stderr, "1. Review: docs/modernization/assessment.md\n")
			fmt.Fprintf(os.Stderr, "2. Generate a starter plan: codelift plan init\n")
			os.Exit(1)
		}

		tasks := plan.Parse(string(content))
		if len(tasks) == 0 {
			fmt.Fprintf(os.Stderr, "Error: no tasks found in %s\n", planPath)
			fmt.Fprintf(os.Stderr, "\nCheck that tasks follow the format:\n")
			fmt.Fprintf(os.Stderr, "  #### TASK-NNN: Title\n")
			os.Exit(1)
		}
		fmt.Printf("%s Parsed %d task(s) from %s\n\n", cyan("▶"), len(tasks), planPath)

		cfg, err := config.LoadGitHub()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintf(os.Stderr, "\nMake sure your environment or .env file has:\n")
			for _, v := range config.RequiredVars {
				fmt.Fprintf(os.Stderr, "- %s\n", v)
			}
			os.Exit(1)
		}

		publisher := tracker.NewPublisher(tracker.NewGitHubClient(*cfg))
		result, err := publisher.PublishAll(context.Background(), tasks)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(result.Created) > 0 {
			fmt.Printf("%s Created %d issue(s):\n", green("✓"), len(result.Created))
			for _, c := range result.Created {
				fmt.Printf("  %s → #%d %s\n", c.TaskID, c.Number, c.URL)
			}
		}
		if len(result.Failed) > 0 {
			fmt.Printf("\n%s Failed to create %d issue(s):\n", red("✗"), len(result.Failed))
			for _, id := range result.Failed {
				fmt.Printf("  %s\n", id)
			}
			os.Exit(1)
		}
	},
}

func init() {
	issuesCmd.AddCommand(issuesCreateCmd)
	rootCmd.AddCommand(issuesCmd)
}
