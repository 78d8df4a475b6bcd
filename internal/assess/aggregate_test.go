package assess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pyLines builds a Python file with exactly n lines and no scored
// keywords or markers.
func pyLines(n int) string {
	return strings.Repeat("x = 1\n", n)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(t.TempDir()+"/nope", Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestScan_LargeFileOrdering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", pyLines(520))
	writeFile(t, root, "b.py", pyLines(900))
	writeFile(t, root, "c.py", pyLines(501))
	writeFile(t, root, "small.py", pyLines(500))

	report, err := Scan(root, Options{})
	require.NoError(t, err)

	// Descending by line count; 500 is not over the threshold.
	require.Len(t, report.LargeFiles, 3)
	assert.Equal(t, LargeFile{Path: "b.py", Lines: 900}, report.LargeFiles[0])
	assert.Equal(t, LargeFile{Path: "a.py", Lines: 520}, report.LargeFiles[1])
	assert.Equal(t, LargeFile{Path: "c.py", Lines: 501}, report.LargeFiles[2])
}

func TestScan_EndToEnd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "big.py", pyLines(600))
	writeFile(t, root, "small.py", pyLines(4)+"# TODO: fix me\n"+pyLines(5))

	report, err := Scan(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, 2, report.TotalFiles)
	assert.Equal(t, 610, report.TotalLines)
	assert.Equal(t, map[string]int{LangPython: 2}, report.Languages)

	require.Len(t, report.LargeFiles, 1)
	assert.Equal(t, LargeFile{Path: "big.py", Lines: 600}, report.LargeFiles[0])

	require.Len(t, report.Todos, 1)
	assert.Equal(t, TodoComment{File: "small.py", Line: 5, Text: "# TODO: fix me"}, report.Todos[0])

	assert.Equal(t, FrameworkUnknown, report.Framework)
	assert.Zero(t, report.TestFiles)
	assert.False(t, report.GeneratedAt.IsZero())
}

func TestScan_LanguageHistogram(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", pyLines(1))
	writeFile(t, root, "b.js", "var x = 1\n")
	writeFile(t, root, "c.tsx", "const x = 1\n")

	report, err := Scan(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{LangPython: 1, LangJSTS: 2}, report.Languages)
	assert.Equal(t, 3, report.TotalFiles)
}

func TestScan_EmptyRoot(t *testing.T) {
	report, err := Scan(t.TempDir(), Options{})
	require.NoError(t, err)

	assert.Zero(t, report.TotalFiles)
	assert.Zero(t, report.TotalLines)
	assert.Nil(t, report.Languages)
	assert.Empty(t, report.LargeFiles)
	assert.Empty(t, report.Todos)
}

func TestScan_TopLevelDirs(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.py", pyLines(1))
	writeFile(t, root, "docs/readme.md", "")
	writeFile(t, root, ".git/config", "")

	report, err := Scan(root, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"docs", "src"}, report.TopLevelDirs)
}

func TestScan_ComplexFunctionOrdering(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.py", pyFunc("lower", 12))
	writeFile(t, root, "b.py", pyFunc("upper", 15))

	report, err := Scan(root, Options{})
	require.NoError(t, err)

	require.Len(t, report.ComplexFunctions, 2)
	assert.Equal(t, "upper", report.ComplexFunctions[0].Name)
	assert.Equal(t, 15, report.ComplexFunctions[0].Score)
	assert.Equal(t, "lower", report.ComplexFunctions[1].Name)
}
