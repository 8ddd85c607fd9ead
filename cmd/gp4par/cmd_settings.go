package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gp4par/gp4par/pkg/auth"
	"github.com/gp4par/gp4par/pkg/cli"
	"github.com/gp4par/gp4par/pkg/settings"
	"github.com/gp4par/gp4par/pkg/util"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage persistent settings",
	Long: `Manage persistent settings stored in ~/.gp4par/settings.json.

Settings provide defaults for build flags:
  - default_part:    Used when --part is not specified
  - output_dir:      Used when -o is not specified
  - netlist_format:  Used when --format is not specified
  - device_host:     Used when --remote is not specified

Examples:
  gp4par settings show
  gp4par settings set default_part SLG46620
  gp4par settings set output_dir ./build
  gp4par settings clear`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		fmt.Printf("Settings file: %s\n\n", settings.DefaultSettingsPath())

		table := cli.NewTable("SETTING", "VALUE")

		printSetting := func(name, value string) {
			if value == "" {
				value = "(not set)"
			}
			table.Row(name, value)
		}

		printSetting("default_part", s.DefaultPart)
		printSetting("last_part", s.LastPart)
		printSetting("output_dir", s.OutputDir)
		printSetting("netlist_format", s.NetlistFormat)
		printSetting("device_host", s.DeviceHost)
		printSetting("audit_log_path", s.AuditLogPath)
		printSetting("audit_max_size_mb", formatIfSet(s.AuditMaxSizeMB))
		printSetting("audit_max_backups", formatIfSet(s.AuditMaxBackups))
		printSetting("super_users", strings.Join(s.SuperUsers, ","))
		printSetting("publishers", strings.Join(s.Publishers, ","))
		printSetting("publish_secret", setOrNot(s.PublishSecretHash))

		table.Flush()
		return nil
	},
}

func formatIfSet(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

// setOrNot hides a secret hash behind a fixed marker rather than printing it.
func setOrNot(hash string) string {
	if hash == "" {
		return ""
	}
	return "(set)"
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <setting> <value>",
	Short: "Set a setting value",
	Long: `Set a persistent setting value.

Available settings:
  default_part      - Target device part (--part flag default)
  output_dir        - Build output directory (-o flag default)
  netlist_format    - Netlist format, json or yaml (--format flag default)
  device_host       - Remote build host (--remote flag default)
  audit_log_path    - Audit log file path
  audit_max_size_mb - Audit log rotation size in MB
  audit_max_backups - Number of rotated audit log files to keep
  super_users       - Comma-separated usernames allowed to --publish unconditionally
  publishers        - Comma-separated usernames allowed to --publish
  publish_secret    - Shared secret accepted by --publish in place of group membership (stored as a bcrypt hash)

Examples:
  gp4par settings set default_part SLG46620
  gp4par settings set output_dir ./build
  gp4par settings set device_host build01.lan
  gp4par settings set publishers alice,bob
  gp4par settings set publish_secret hunter2`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]
		value := args[1]

		s, err := settings.Load()
		if err != nil {
			s = &settings.Settings{}
		}

		switch setting {
		case "default_part", "part":
			s.SetPart(value)
			fmt.Printf("Default part set to: %s\n", value)
		case "output_dir":
			s.SetOutputDir(value)
			fmt.Printf("Output directory set to: %s\n", value)
		case "netlist_format":
			s.NetlistFormat = value
			fmt.Printf("Netlist format set to: %s\n", value)
		case "device_host":
			s.SetDeviceHost(value)
			fmt.Printf("Device host set to: %s\n", value)
		case "audit_log_path":
			s.AuditLogPath = value
			fmt.Printf("Audit log path set to: %s\n", value)
		case "audit_max_size_mb":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer: %s", value)
			}
			s.AuditMaxSizeMB = n
			fmt.Printf("Audit max size set to: %d MB\n", n)
		case "audit_max_backups":
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("invalid integer: %s", value)
			}
			s.AuditMaxBackups = n
			fmt.Printf("Audit max backups set to: %d\n", n)
		case "super_users":
			s.SuperUsers = util.SplitCommaSeparated(value)
			fmt.Printf("Super users set to: %s\n", value)
		case "publishers":
			s.Publishers = util.SplitCommaSeparated(value)
			fmt.Printf("Publishers set to: %s\n", value)
		case "publish_secret":
			hash, err := auth.HashSecret(value)
			if err != nil {
				return fmt.Errorf("hashing secret: %w", err)
			}
			s.PublishSecretHash = hash
			fmt.Println("Publish secret set.")
		default:
			return fmt.Errorf("unknown setting: %s (valid: default_part, output_dir, netlist_format, device_host, audit_log_path, audit_max_size_mb, audit_max_backups, super_users, publishers, publish_secret)", setting)
		}

		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}

		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <setting>",
	Short: "Get a setting value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		setting := args[0]

		s, err := settings.Load()
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		var value string
		switch setting {
		case "default_part", "part":
			value = s.DefaultPart
		case "last_part":
			value = s.LastPart
		case "output_dir":
			value = s.GetOutputDir()
		case "netlist_format":
			value = s.GetNetlistFormat()
		case "device_host":
			value = s.DeviceHost
		case "audit_log_path":
			value = s.GetAuditLogPath(s.GetOutputDir())
		case "super_users":
			value = strings.Join(s.SuperUsers, ",")
		case "publishers":
			value = strings.Join(s.Publishers, ",")
		case "publish_secret":
			value = setOrNot(s.PublishSecretHash)
		default:
			return fmt.Errorf("unknown setting: %s", setting)
		}

		if value == "" {
			fmt.Println("(not set)")
		} else {
			fmt.Println(value)
		}
		return nil
	},
}

var settingsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear all settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		s := &settings.Settings{}
		if err := s.Save(); err != nil {
			return fmt.Errorf("saving settings: %w", err)
		}
		fmt.Println("All settings cleared.")
		return nil
	},
}

var settingsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show settings file path",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(settings.DefaultSettingsPath())
	},
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsClearCmd)
	settingsCmd.AddCommand(settingsPathCmd)
}
