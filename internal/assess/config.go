package assess

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is the optional per-project scan tuning file, looked up
// at the scan root.
const ConfigFileName = ".codelift.yml"

// ScanConfig is the optional YAML scan configuration.
type ScanConfig struct {
	// Excludes are extra directory names to skip during discovery.
	Excludes []string `yaml:"excludes"`
}

// LoadScanConfig reads a scan config from path. A missing file is not an
// error; it yields an empty config.
func LoadScanConfig(path string) (*ScanConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &ScanConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading scan config: %w", err)
	}

	var cfg ScanConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing scan config: %w", err)
	}
	return &cfg, nil
}
