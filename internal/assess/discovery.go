package assess

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Directories never descended into during discovery: dependency trees,
// virtualenvs, and anything hidden.
var excludedDirs = map[string]bool{
	"venv":         true,
	".venv":        true,
	"node_modules": true,
	"vendor":       true,
}

// Discover walks root and returns the relative paths of files whose
// extension is in exts, in lexical walk order. Each call re-walks the
// tree; nothing is cached. Unreadable directory entries are skipped
// silently rather than failing the scan.
func Discover(root string, exts []string, extraExcludes []string) []string {
	extSet := make(map[string]bool, len(exts))
	for _, ext := range exts {
		extSet[ext] = true
	}

	var paths []string
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entry: skip, never abort the walk.
			return nil
		}
		if d.IsDir() {
			if path == root {
				return nil
			}
			if shouldExcludeDir(d.Name(), extraExcludes) {
				return filepath.SkipDir
			}
			return nil
		}
		if !extSet[filepath.Ext(path)] {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	return paths
}

// shouldExcludeDir reports whether a directory name is hidden, a known
// dependency/virtualenv directory, or listed in extra excludes.
func shouldExcludeDir(name string, extra []string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	if excludedDirs[name] {
		return true
	}
	for _, e := range extra {
		if name == e {
			return true
		}
	}
	return false
}
