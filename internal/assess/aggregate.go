package assess

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	pythonExtensions = []string{".py"}
	jsExtensions     = []string{".js", ".jsx", ".ts", ".tsx"}
)

// Options tunes a codebase scan.
type Options struct {
	// ExtraExcludes are additional directory names skipped during
	// discovery, on top of the built-in hidden/vendor/virtualenv rules.
	ExtraExcludes []string
}

// Scan runs the full assessment pipeline over root and reduces all
// per-file findings into one Report.
//
// The pipeline is single-threaded: each discovered file is processed to
// completion before the next, so finding order is deterministic and
// equal to directory-walk order. Per-file extraction failures degrade to
// zero values; only a missing root is an error.
func Scan(root string, opts Options) (*Report, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %q: %w", root, err)
	}
	if info, err := os.Stat(absRoot); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("directory does not exist: %s", absRoot)
	}

	report := &Report{
		Root:      absRoot,
		Languages: make(map[string]int),
		Framework: FrameworkUnknown,
	}

	// Python files get the full treatment: metrics, complexity, todos.
	pyFiles := Discover(absRoot, pythonExtensions, opts.ExtraExcludes)
	if len(pyFiles) > 0 {
		report.Languages[LangPython] = len(pyFiles)
		report.TotalFiles += len(pyFiles)
		for _, rel := range pyFiles {
			full := filepath.Join(absRoot, rel)
			lines := CountLines(full)
			report.TotalLines += lines
			if lines > LargeFileThreshold {
				report.LargeFiles = append(report.LargeFiles, LargeFile{Path: rel, Lines: lines})
			}
			report.ComplexFunctions = append(report.ComplexFunctions, ScanComplexity(full, rel)...)
			report.Todos = append(report.Todos, ScanTodos(full)...)
		}
	}

	// JS/TS files: metrics and todos only. The complexity heuristic is
	// keyed to Python definition sites.
	jsFiles := Discover(absRoot, jsExtensions, opts.ExtraExcludes)
	if len(jsFiles) > 0 {
		report.Languages[LangJSTS] = len(jsFiles)
		report.TotalFiles += len(jsFiles)
		for _, rel := range jsFiles {
			full := filepath.Join(absRoot, rel)
			lines := CountLines(full)
			report.TotalLines += lines
			if lines > LargeFileThreshold {
				report.LargeFiles = append(report.LargeFiles, LargeFile{Path: rel, Lines: lines})
			}
			report.Todos = append(report.Todos, ScanTodos(full)...)
		}
	}

	// Stable descending sorts; ties keep encounter order.
	sort.SliceStable(report.LargeFiles, func(i, j int) bool {
		return report.LargeFiles[i].Lines > report.LargeFiles[j].Lines
	})
	sort.SliceStable(report.ComplexFunctions, func(i, j int) bool {
		return report.ComplexFunctions[i].Score > report.ComplexFunctions[j].Score
	})

	report.Framework = DetectFramework(absRoot)
	report.TestFiles = CountTestFiles(absRoot)
	report.TopLevelDirs = topLevelDirs(absRoot)
	report.GeneratedAt = time.Now()

	if len(report.Languages) == 0 {
		report.Languages = nil
	}
	return report, nil
}

// topLevelDirs lists visible directories directly under root, sorted,
// for the report's architecture sketch. Gathered here so rendering needs
// no filesystem access.
func topLevelDirs(root string) []string {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil
	}
	var dirs []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			dirs = append(dirs, e.Name())
		}
	}
	sort.Strings(dirs)
	return dirs
}
