package coeff

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML overrides file and merges it over the default set.
// Fields absent from the file keep their defaults. An empty path
// returns Default() unchanged.
func Load(path string) (Set, error) {
	set := Default()
	if path == "" {
		return set, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return set, fmt.Errorf("read coefficients file: %w", err)
	}

	if err := yaml.Unmarshal(data, &set); err != nil {
		return Default(), fmt.Errorf("parse coefficients file: %w", err)
	}
	return set, nil
}
