// Package specfile loads a project's gp4par.yaml: the netlist path,
// target device part, and output locations for a single build.
package specfile

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the conventional name for a project spec file.
const DefaultFileName = "gp4par.yaml"

// ProjectFile is the on-disk shape of gp4par.yaml.
type ProjectFile struct {
	Part         string `yaml:"part"`
	Netlist      string `yaml:"netlist"`
	NetlistFmt   string `yaml:"netlist_format,omitempty"`
	Device       string `yaml:"device,omitempty"` // device descriptor JSON path; empty uses the built-in part catalog
	Output       string `yaml:"output,omitempty"`
	DeviceHost   string `yaml:"device_host,omitempty"` // remote host to fetch netlist/device files from, if set
	AuditLogPath string `yaml:"audit_log_path,omitempty"`
}

// Project is a loaded, path-resolved project spec. All paths are
// resolved relative to the directory the spec file was loaded from.
type Project struct {
	dir  string
	file ProjectFile
}

// Load reads and validates the project spec at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: reading %s: %w", path, err)
	}

	var pf ProjectFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("specfile: parsing %s: %w", path, err)
	}

	if pf.Part == "" {
		return nil, fmt.Errorf("specfile: %s: part is required", path)
	}
	if pf.Netlist == "" {
		return nil, fmt.Errorf("specfile: %s: netlist is required", path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("specfile: resolve %s: %w", path, err)
	}

	return &Project{dir: filepath.Dir(absPath), file: pf}, nil
}

// LoadFromDir loads gp4par.yaml from the given project directory.
func LoadFromDir(dir string) (*Project, error) {
	return Load(filepath.Join(dir, DefaultFileName))
}

// Part is the target device part number (e.g. "SLG46620").
func (p *Project) Part() string { return p.file.Part }

// NetlistPath resolves the netlist path relative to the spec file's directory.
func (p *Project) NetlistPath() string { return p.resolve(p.file.Netlist) }

// NetlistFormat returns the configured netlist format ("json" or "yaml"),
// defaulting to "json" when unset.
func (p *Project) NetlistFormat() string {
	if p.file.NetlistFmt != "" {
		return p.file.NetlistFmt
	}
	return "json"
}

// DevicePath resolves the device descriptor path, if one is configured.
// An empty result means the caller should fall back to the built-in
// part catalog in pkg/devicedesc.
func (p *Project) DevicePath() string {
	if p.file.Device == "" {
		return ""
	}
	return p.resolve(p.file.Device)
}

// OutputPath resolves the placed-and-routed output path, defaulting to
// "build/<part>.json" under the spec directory when unset.
func (p *Project) OutputPath() string {
	if p.file.Output != "" {
		return p.resolve(p.file.Output)
	}
	return p.resolve(filepath.Join("build", p.file.Part+".json"))
}

// DeviceHost is the remote host (if any) to fetch the netlist and device
// descriptor from via pkg/remote, instead of reading them locally.
func (p *Project) DeviceHost() string { return p.file.DeviceHost }

// AuditLogPath resolves the configured audit log path, or returns empty
// so callers fall back to pkg/settings' default.
func (p *Project) AuditLogPath() string {
	if p.file.AuditLogPath == "" {
		return ""
	}
	return p.resolve(p.file.AuditLogPath)
}

// Dir returns the directory the project spec was loaded from.
func (p *Project) Dir() string { return p.dir }

func (p *Project) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.dir, path)
}
