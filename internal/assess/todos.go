package assess

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// todoMarkers are matched as case-sensitive substrings anywhere in a line.
var todoMarkers = []string{"TODO", "FIXME"}

// ScanTodos records every line of a file containing a TODO/FIXME marker,
// in line order. Read failures yield no findings.
func ScanTodos(filePath string) []TodoComment {
	f, err := os.Open(filePath)
	if err != nil {
		return nil
	}
	defer f.Close()

	base := filepath.Base(filePath)
	var todos []TodoComment

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		for _, marker := range todoMarkers {
			if strings.Contains(line, marker) {
				todos = append(todos, TodoComment{
					File: base,
					Line: lineNum,
					Text: strings.TrimSpace(line),
				})
				break
			}
		}
	}
	return todos
}
