package assess

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// FrameworkUnknown is the fallback classification when no detection rule
// matches.
const FrameworkUnknown = "Unknown"

// DetectFramework classifies the project by marker files and declared
// dependencies. Checks run in a fixed priority order and the first match
// wins. The tag only tailors report prose; nothing branches on it.
func DetectFramework(root string) string {
	if fileExists(filepath.Join(root, "manage.py")) {
		return "Django"
	}
	if fileExists(filepath.Join(root, "app.py")) || fileExists(filepath.Join(root, "wsgi.py")) {
		return "Flask"
	}
	if tag := detectNodeFramework(filepath.Join(root, "package.json")); tag != "" {
		return tag
	}
	if tag := detectGoFramework(filepath.Join(root, "go.mod")); tag != "" {
		return tag
	}
	return FrameworkUnknown
}

// detectNodeFramework inspects package.json's merged direct+dev
// dependency set. Returns "" when the manifest is absent, unparseable, or
// names no recognized framework.
func detectNodeFramework(manifestPath string) string {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return ""
	}

	var pkg struct {
		Dependencies    map[string]string `json:"dependencies"`
		DevDependencies map[string]string `json:"devDependencies"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		return ""
	}

	deps := make(map[string]bool, len(pkg.Dependencies)+len(pkg.DevDependencies))
	for name := range pkg.Dependencies {
		deps[name] = true
	}
	for name := range pkg.DevDependencies {
		deps[name] = true
	}

	if deps["react"] {
		return "React"
	}
	if deps["express"] {
		return "Express"
	}
	return ""
}

// detectGoFramework parses go.mod and classifies Go projects by their
// declared requirements.
func detectGoFramework(modPath string) string {
	data, err := os.ReadFile(modPath)
	if err != nil {
		return ""
	}
	mod, err := modfile.Parse(modPath, data, nil)
	if err != nil {
		return ""
	}

	for _, req := range mod.Require {
		switch {
		case req.Mod.Path == "github.com/gin-gonic/gin":
			return "Gin"
		case strings.HasPrefix(req.Mod.Path, "github.com/labstack/echo"):
			return "Echo"
		case req.Mod.Path == "github.com/spf13/cobra":
			return "Go CLI"
		}
	}
	return "Go"
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
