package assess

import "time"

// Language buckets for the file inventory. Membership is decided purely
// by file extension, never by content.
const (
	LangPython = "Python"
	LangJSTS   = "JavaScript/TypeScript"
)

// LargeFileThreshold is the line count above which a file is reported
// as oversized.
const LargeFileThreshold = 500

// ComplexityThreshold is the heuristic score above which a function is
// reported as high-complexity.
const ComplexityThreshold = 10

// SourceFile is one discovered file, with its path relative to the scan root.
type SourceFile struct {
	Path     string
	Language string
	Lines    int
}

// LargeFile flags a file whose line count exceeds LargeFileThreshold.
type LargeFile struct {
	Path  string
	Lines int
}

// ComplexFunction flags a function whose heuristic complexity score
// exceeds ComplexityThreshold.
type ComplexFunction struct {
	Path  string
	Name  string
	Score int
}

// TodoComment records a TODO/FIXME marker. File is the base name of the
// containing file, Line is 1-based, Text is the trimmed source line.
type TodoComment struct {
	File string
	Line int
	Text string
}

// Report is the immutable result of one assessment run.
//
// LargeFiles and ComplexFunctions are sorted descending by lines/score
// (stable, ties keep encounter order). Todos keep discovery order.
type Report struct {
	Root             string
	TotalFiles       int
	TotalLines       int
	Languages        map[string]int
	LargeFiles       []LargeFile
	ComplexFunctions []ComplexFunction
	Todos            []TodoComment
	TestFiles        int
	Framework        string
	TopLevelDirs     []string
	GeneratedAt      time.Time
}
