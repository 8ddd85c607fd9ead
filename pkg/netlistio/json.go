package netlistio

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadJSON reads a netlist from a JSON file (spec §6 netlist
// collaborator, default format).
func LoadJSON(path string) (*Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading netlist %s: %w", path, err)
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing netlist %s: %w", path, err)
	}

	m, err := build(&f)
	if err != nil {
		return nil, fmt.Errorf("netlist %s: %w", path, err)
	}
	return m, nil
}
