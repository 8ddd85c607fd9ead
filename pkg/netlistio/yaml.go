package netlistio

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYAML reads a netlist from a YAML file — an alternate, more
// hand-editable format for the same shape LoadJSON accepts.
func LoadYAML(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading netlist %s: %w", path, err)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing netlist %s: %w", path, err)
	}

	m, err := build(&f)
	if err != nil {
		return nil, fmt.Errorf("netlist %s: %w", path, err)
	}
	return m, nil
}
