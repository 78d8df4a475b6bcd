package report

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/codelift/codelift/internal/assess"
)

func sampleReport() *assess.Report {
	return &assess.Report{
		Root:       "/tmp/project",
		TotalFiles: 12,
		TotalLines: 3400,
		Languages:  map[string]int{assess.LangPython: 10, assess.LangJSTS: 2},
		LargeFiles: []assess.LargeFile{
			{Path: "core/engine.py", Lines: 1200},
			{Path: "api/views.py", Lines: 610},
		},
		ComplexFunctions: []assess.ComplexFunction{
			{Path: "core/engine.py", Name: "dispatch", Score: 23},
		},
		Todos: []assess.TodoComment{
			{File: "engine.py", Line: 40, Text: "# TODO: remove legacy path"},
		},
		TestFiles:    3,
		Framework:    "Django",
		TopLevelDirs: []string{"api", "core", "docs"},
		GeneratedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestRender_Deterministic(t *testing.T) {
	r := sampleReport()
	assert.Equal(t, Render(r), Render(r), "identical reports must render byte-identically")
}

func TestRender_SectionOrder(t *testing.T) {
	out := Render(sampleReport())

	sections := []string{
		"## Executive Summary",
		"## Functionality Inventory",
		"## Architecture",
		"### Dependencies",
		"## Test Coverage",
		"## Code Quality",
		"## Risk Assessment",
		"## Refactor Opportunities",
		"## Recommended Approach",
		"## Next Steps",
	}
	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		assert.Greater(t, idx, last, "section %q out of order", section)
		last = idx
	}
}

func TestRender_SummaryCounts(t *testing.T) {
	out := Render(sampleReport())

	assert.Contains(t, out, "- **Total Files**: 12")
	assert.Contains(t, out, "- **Total Lines**: 3,400")
	assert.Contains(t, out, "- **Languages**: Python (10 files), JavaScript/TypeScript (2 files)")
	assert.Contains(t, out, "- **Framework**: Django")
	assert.Contains(t, out, "- **Large Files (>500 lines)**: 2")
	assert.Contains(t, out, "- **Complex Functions (complexity >10)**: 1")
	assert.Contains(t, out, "`core/engine.py` (1,200 lines)")
	assert.Contains(t, out, "`core/engine.py::dispatch` (complexity: 23)")
	assert.Contains(t, out, "engine.py:40: # TODO: remove legacy path")
}

func TestRender_CapsListsWithOverflowMarker(t *testing.T) {
	r := sampleReport()
	r.LargeFiles = nil
	for i := 0; i < 14; i++ {
		r.LargeFiles = append(r.LargeFiles, assess.LargeFile{
			Path:  fmt.Sprintf("mod%02d.py", i),
			Lines: 2000 - i,
		})
	}

	out := Render(r)

	// Full count in the header, capped listing, explicit overflow line.
	assert.Contains(t, out, "**Large Files (>500 lines): 14**")
	assert.Contains(t, out, "mod09.py")
	assert.NotContains(t, out, "mod10.py")
	assert.Contains(t, out, "... and 4 more")
}

func TestRender_EmptyFindings(t *testing.T) {
	r := sampleReport()
	r.LargeFiles = nil
	r.ComplexFunctions = nil
	r.Todos = nil
	r.TestFiles = 0

	out := Render(r)

	assert.Contains(t, out, "No obviously complex functions detected")
	assert.Contains(t, out, "No TODO/FIXME comments found")
	assert.Contains(t, out, "**No test files found** - CRITICAL RISK")
	assert.NotContains(t, out, "... and")
}

func TestRender_TimestampFromReport(t *testing.T) {
	out := Render(sampleReport())
	assert.Contains(t, out, "Generated: 2026-08-01 12:00:00")
}
