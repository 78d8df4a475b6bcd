package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codelift",
	Short: "Legacy codebase assessment and modernization workflow",
	Long: `codelift inspects a legacy codebase and drives its modernization.

The workflow has two halves:

1. Assess: scan a source tree and write a quality assessment report
   (file inventory, size and complexity outliers, TODO debt) to
   docs/modernization/assessment.md.

2. Publish: after a human distills the assessment into a refactor plan,
   parse the plan's task blocks and create one tracker issue per task.

Run 'codelift assess', edit the plan with 'codelift plan init' as a
starting point, then 'codelift issues create'.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
