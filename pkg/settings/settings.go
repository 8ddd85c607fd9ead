// Package settings manages persistent user settings for the gp4par CLI.
package settings

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// DefaultOutputDir is the default build output directory used when no override is configured.
const DefaultOutputDir = "./build"

// Settings holds persistent user preferences
type Settings struct {
	// DefaultPart is the part to target when --part is not specified
	DefaultPart string `json:"default_part,omitempty"`

	// LastPart is the most recently set part, recorded by SetPart
	LastPart string `json:"last_part,omitempty"`

	// OutputDir overrides the default build output directory
	OutputDir string `json:"output_dir,omitempty"`

	// NetlistFormat is the default netlist file format ("json" or "yaml")
	NetlistFormat string `json:"netlist_format,omitempty"`

	// DeviceHost is the default remote host for `gp4par build --remote` (pkg/remote)
	DeviceHost string `json:"device_host,omitempty"`

	// AuditLogPath overrides the default audit log path
	AuditLogPath string `json:"audit_log_path,omitempty"`

	// AuditMaxSizeMB is the max audit log size in MB before rotation (default: 10)
	AuditMaxSizeMB int `json:"audit_max_size_mb,omitempty"`

	// AuditMaxBackups is the max number of rotated audit log files (default: 10)
	AuditMaxBackups int `json:"audit_max_backups,omitempty"`

	// ExecuteByDefault is a stored preference that is saved and loaded
	// with the other settings; no gp4par command reads it
	ExecuteByDefault bool `json:"execute_by_default,omitempty"`

	// SuperUsers may always publish build summaries to the net-cache
	SuperUsers []string `json:"super_users,omitempty"`

	// Publishers may publish build summaries without being a superuser
	Publishers []string `json:"publishers,omitempty"`

	// PublishSecretHash is a bcrypt hash accepted in place of group
	// membership (pkg/auth.HashSecret produces it)
	PublishSecretHash string `json:"publish_secret_hash,omitempty"`
}

const (
	// DefaultAuditMaxSizeMB is the default maximum audit log size in megabytes.
	DefaultAuditMaxSizeMB = 10

	// DefaultAuditMaxBackups is the default maximum number of rotated audit log files.
	DefaultAuditMaxBackups = 10

	// DefaultNetlistFormat is the default netlist file format.
	DefaultNetlistFormat = "json"
)

// DefaultSettingsPath returns the default path for the settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "gp4par_settings.json"
	}
	return filepath.Join(home, ".gp4par", "settings.json")
}

// Load reads settings from the default location
func Load() (*Settings, error) {
	return LoadFrom(DefaultSettingsPath())
}

// LoadFrom reads settings from a specific path
func LoadFrom(path string) (*Settings, error) {
	s := &Settings{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty settings if file doesn't exist
			return s, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, s); err != nil {
		return nil, err
	}

	return s, nil
}

// Save writes settings to the default location
func (s *Settings) Save() error {
	return s.SaveTo(DefaultSettingsPath())
}

// SaveTo writes settings to a specific path
func (s *Settings) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// SetPart sets the default part and records it as the last-used part.
func (s *Settings) SetPart(part string) {
	s.DefaultPart = part
	s.LastPart = part
}

// SetDeviceHost sets the default remote host for fetching device/netlist files.
func (s *Settings) SetDeviceHost(host string) {
	s.DeviceHost = host
}

// SetOutputDir sets the build output directory override.
func (s *Settings) SetOutputDir(dir string) {
	s.OutputDir = dir
}

// GetOutputDir returns the build output directory (with fallback)
func (s *Settings) GetOutputDir() string {
	if s.OutputDir != "" {
		return s.OutputDir
	}
	return DefaultOutputDir
}

// GetNetlistFormat returns the default netlist format (with fallback)
func (s *Settings) GetNetlistFormat() string {
	if s.NetlistFormat != "" {
		return s.NetlistFormat
	}
	return DefaultNetlistFormat
}

// GetAuditLogPath returns the audit log path with a fallback default.
// The default depends on outputDir: if non-empty, uses outputDir/audit.log;
// otherwise uses /var/log/gp4par/audit.log.
func (s *Settings) GetAuditLogPath(outputDir string) string {
	if s.AuditLogPath != "" {
		return s.AuditLogPath
	}
	if outputDir != "" {
		return outputDir + "/audit.log"
	}
	return "/var/log/gp4par/audit.log"
}

// GetAuditMaxSizeMB returns the audit max size in MB with a default of 10.
func (s *Settings) GetAuditMaxSizeMB() int {
	if s.AuditMaxSizeMB > 0 {
		return s.AuditMaxSizeMB
	}
	return DefaultAuditMaxSizeMB
}

// GetAuditMaxBackups returns the audit max backups with a default of 10.
func (s *Settings) GetAuditMaxBackups() int {
	if s.AuditMaxBackups > 0 {
		return s.AuditMaxBackups
	}
	return DefaultAuditMaxBackups
}

// Clear resets all settings to defaults
func (s *Settings) Clear() {
	*s = Settings{}
}
