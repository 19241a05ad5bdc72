package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML content file on top of Default. Keys absent from the
// file keep their default values; present lists replace the default list.
func Load(path string) (Site, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return Site{}, fmt.Errorf("content: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Site{}, fmt.Errorf("content: parse %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Site{}, err
	}
	return s, nil
}

// LoadOrDefault returns Default when path is empty.
func LoadOrDefault(path string) (Site, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}
