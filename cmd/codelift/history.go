package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/codelift/codelift/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [target]",
	Short: "List past assessment runs",
	Long: `List recorded assessment runs for a project, newest first.

Each 'codelift assess' appends one row to the history database under
docs/modernization/, so size and debt trends are visible across runs.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		target := "."
		if len(args) > 0 {
			target = args[0]
		}
		limit, _ := cmd.Flags().GetInt("limit")

		cyan := color.New(color.FgCyan).SprintFunc()

		store, err := history.Open(filepath.Join(target, history.DefaultPath))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer store.Close()

		runs, err := store.ListRuns(context.Background(), limit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(runs) == 0 {
			fmt.Println("No assessment runs recorded yet. Run: codelift assess")
			return
		}

		for _, r := range runs {
			fmt.Printf("%s %s\n", cyan(r.CreatedAt.Local().Format("2006-01-02 15:04")), r.Framework)
			fmt.Printf("  files=%d lines=%d large=%d complex=%d todos=%d tests=%d\n",
				r.TotalFiles, r.TotalLines, r.LargeFiles, r.ComplexFunctions,
				r.Todos, r.TestFiles)
		}
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 20, "Maximum runs to list")
	rootCmd.AddCommand(historyCmd)
}
