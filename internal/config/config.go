package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is probed when the user does not name a config file.
const DefaultPath = ".reportguard.yaml"

// Filter holds the two message blocklists. Both default to empty, which
// passes everything.
type Filter struct {
	Message   []string `yaml:"message"`    // literal entries; a finding is dropped when its message is contained in an entry
	MessageRE []string `yaml:"message_re"` // regexp patterns, search semantics
}

type Config struct {
	Filter Filter `yaml:"filter"`
}

// Load reads the filter configuration from path. A missing file at
// DefaultPath is not an error (found=false, empty config); a missing file at
// an explicitly chosen path is, as is any YAML parse failure.
func Load(path string) (Config, bool, error) {
	var cfg Config

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, false, nil
		}
		return cfg, false, fmt.Errorf("can't open config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, false, fmt.Errorf("can't parse config file %q: %w", path, err)
	}
	return cfg, true, nil
}
