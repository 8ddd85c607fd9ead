// gp4par - GreenPAK4 Place-and-Route Compiler Core
//
// A CLI front end over the graph construction and label-matching core
// (pkg/par): build a device graph and a netlist graph from a device
// descriptor and a synthesized netlist, report the two graphs or any
// fatal diagnostic, and optionally mirror the build summary to a
// shared net-cache for a farm of placer workers.
//
// Noun-group CLI pattern:
//
//	gp4par build <netlist> --part SLG46620 -o out.json
//	gp4par devices list
//	gp4par labels list
//	gp4par settings show
//	gp4par audit list
//	gp4par version
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gp4par/gp4par/pkg/audit"
	"github.com/gp4par/gp4par/pkg/auth"
	"github.com/gp4par/gp4par/pkg/cli"
	"github.com/gp4par/gp4par/pkg/settings"
	"github.com/gp4par/gp4par/pkg/util"
	"github.com/gp4par/gp4par/pkg/version"
)

// App holds CLI state shared across all commands.
type App struct {
	// Option flags
	verbose    bool
	jsonOutput bool

	// Initialized state (set in PersistentPreRunE)
	settings    *settings.Settings
	permChecker *auth.Checker
}

var app = &App{}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "gp4par",
	Short:             "GreenPAK4 place-and-route compiler core",
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
	Long: `gp4par builds the device graph and netlist graph that feed a
GreenPAK4 placer: typed graph construction, a shared label registry
with legal primitive substitutions, and fatal-diagnostic reporting.

  gp4par build <netlist.json> --part SLG46620 -o out.json
  gp4par devices list
  gp4par labels list
  gp4par settings show`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if isSettingsOrHelp(cmd) {
			return nil
		}

		var err error
		app.settings, err = settings.Load()
		if err != nil {
			util.Logger.Warnf("Could not load settings: %v", err)
			app.settings = &settings.Settings{}
		}

		if app.verbose {
			util.SetLogLevel("debug")
		} else {
			util.SetLogLevel("warn")
		}

		app.permChecker = auth.NewChecker(auth.Config{
			SuperUsers: app.settings.SuperUsers,
			Publishers: app.settings.Publishers,
			SecretHash: app.settings.PublishSecretHash,
		})

		auditPath := app.settings.GetAuditLogPath(app.settings.GetOutputDir())
		auditLogger, err := audit.NewFileLogger(auditPath, audit.RotationConfig{
			MaxSize:    int64(app.settings.GetAuditMaxSizeMB()) * 1024 * 1024,
			MaxBackups: app.settings.GetAuditMaxBackups(),
		})
		if err != nil {
			util.Logger.Warnf("Could not initialize audit logging: %v", err)
		} else {
			audit.SetDefaultLogger(auditLogger)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&app.verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&app.jsonOutput, "json", false, "JSON output")

	rootCmd.AddGroup(
		&cobra.Group{ID: "build", Title: "Build Commands:"},
		&cobra.Group{ID: "query", Title: "Query Commands:"},
		&cobra.Group{ID: "meta", Title: "Configuration & Meta:"},
	)

	for _, cmd := range []*cobra.Command{buildCmd} {
		cmd.GroupID = "build"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{devicesCmd, labelsCmd} {
		cmd.GroupID = "query"
		rootCmd.AddCommand(cmd)
	}
	for _, cmd := range []*cobra.Command{settingsCmd, auditCmd, versionCmd} {
		cmd.GroupID = "meta"
		rootCmd.AddCommand(cmd)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

// isSettingsOrHelp checks whether cmd (or any ancestor) is a settings,
// help, or version command — these run without a loaded settings file
// or audit logger.
func isSettingsOrHelp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "version", "settings":
			return true
		}
	}
	return false
}

// Color helpers — delegate to pkg/cli
func green(s string) string  { return cli.Green(s) }
func yellow(s string) string { return cli.Yellow(s) }
func red(s string) string    { return cli.Red(s) }
func bold(s string) string   { return cli.Bold(s) }
