package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codelift/codelift/internal/assess"
	"github.com/codelift/codelift/internal/history"
	"github.com/codelift/codelift/internal/report"
)

// reportPath is where the rendered assessment lands, relative to the
// target root.
const reportPath = "docs/modernization/assessment.md"

var assessCmd = &cobra.Command{
	Use:   "assess [target]",
	Short: "Analyze a codebase and write the assessment report",
	Long: `Scan a source tree and write a markdown quality assessment to
docs/modernization/assessment.md under the target root.

The scan inventories files by language, flags oversized files and
high-complexity functions (lexical heuristic, not AST analysis), collects
TODO/FIXME debt, and detects the project's framework.

Examples:
  # Assess the current directory
  codelift assess

  # Assess a specific project
  codelift assess ~/src/legacy-app`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := "."
		if len(args) > 0 {
			target = args[0]
		}

		green := color.New(color.FgGreen).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		cyan := color.New(color.FgCyan).SprintFunc()

		scanCfg, err := assess.LoadScanConfig(filepath.Join(target, assess.ConfigFileName))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Analyzing codebase: %s\n\n", cyan("▶"), target)

		result, err := assess.Scan(target, assess.Options{ExtraExcludes: scanCfg.Excludes})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		for _, lang := range []string{assess.LangPython, assess.LangJSTS} {
			if count, ok := result.Languages[lang]; ok {
				fmt.Printf("  Found %d %s files\n", count, lang)
			}
		}
		fmt.Printf("  Total files: %d\n", result.TotalFiles)
		fmt.Printf("  Total lines: %d\n", result.TotalLines)
		fmt.Printf("  Framework: %s\n", result.Framework)
		fmt.Printf("  Test files: %d\n\n", result.TestFiles)

		rendered := report.Render(result)

		outPath := filepath.Join(result.Root, reportPath)
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := os.WriteFile(outPath, []byte(rendered), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%s Report saved to: %s\n", green("✓"), reportPath)

		if err := recordRun(result); err != nil {
			fmt.Fprintf(os.Stderr, "%s failed to record run history: %v\n", yellow("Warning:"), err)
		}

		fmt.Println()
		fmt.Println("Next steps:")
		fmt.Printf("1. Review the assessment: %s\n", reportPath)
		fmt.Println("2. Create a refactor plan: codelift plan init")
		fmt.Println("3. Publish tasks as issues: codelift issues create")
	},
}

// recordRun appends the run to the history store. Best-effort: the
// assessment already succeeded, history must not fail it.
func recordRun(result *assess.Report) error {
	store, err := history.Open(filepath.Join(result.Root, history.DefaultPath))
	if err != nil {
		return err
	}
	defer store.Close()

	_, err = store.RecordRun(context.Background(), result)
	return err
}

func init() {
	rootCmd.AddCommand(assessCmd)
}
