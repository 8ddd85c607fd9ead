package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gp4par/gp4par/pkg/audit"
	"github.com/gp4par/gp4par/pkg/devicedesc"
	"github.com/gp4par/gp4par/pkg/netcache"
	"github.com/gp4par/gp4par/pkg/netlistio"
	"github.com/gp4par/gp4par/pkg/par"
	"github.com/gp4par/gp4par/pkg/remote"
	"github.com/gp4par/gp4par/pkg/report"
	"github.com/gp4par/gp4par/pkg/specfile"
	"github.com/gp4par/gp4par/pkg/util"
)

var (
	buildPart       string
	buildDevice     string
	buildOutput     string
	buildFormat     string
	buildSpec       string
	buildRemoteHost string
	buildRemoteUser string
	buildRemotePass string
	buildPublish    bool
	buildRedisAddr  string
	buildSecret     string
)

// buildReportFile is the on-disk JSON shape written by a successful build.
type buildReportFile struct {
	Part    string            `json:"part"`
	Netlist []par.NodeSummary `json:"netlist_graph"`
	Device  []par.NodeSummary `json:"device_graph"`
}

var buildCmd = &cobra.Command{
	Use:   "build [netlist]",
	Short: "Build the device and netlist graphs for a part",
	Long: `Build parses a synthesized netlist and a device descriptor, then
constructs the device graph and netlist graph the placer consumes.

A netlist path may be given as a positional argument, or --spec may
point at a project directory containing gp4par.yaml, which supplies
the netlist path, target part, and output location.

Examples:
  gp4par build blinky.json --part SLG46620 -o out.json
  gp4par build --spec ./myproject
  gp4par build blinky.json --part SLG46620 --remote build01.lan --remote-user ci`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		part, netlistPath, devicePath, outputPath, format, remoteHost, err := resolveBuildInputs(args)
		if err != nil {
			return err
		}

		log := util.WithOperation("build")
		event := audit.NewEvent(app.permChecker.CurrentUser(), part, "build").WithNetlist(netlistPath).WithOutput(outputPath)

		netlist, device, err := loadBuildInputs(netlistPath, devicePath, format, part, remoteHost)
		if err != nil {
			logAuditFailure(event, start, err)
			return err
		}

		result, err := par.BuildGraphs(netlist, device, log)
		if err != nil {
			logAuditFailure(event, start, err)

			var diag *par.DiagnosticError
			if errors.As(err, &diag) {
				fmt.Fprint(os.Stderr, report.Failure(part, netlistPath, diag))
			} else {
				fmt.Fprint(os.Stderr, report.Failure(part, netlistPath, err))
			}
			return fmt.Errorf("build failed: %w", err)
		}

		if err := writeBuildOutput(outputPath, part, result); err != nil {
			logAuditFailure(event, start, err)
			return err
		}

		netlistNodes, netlistEdges := graphStats(result.NetlistGraph)
		event.WithGraphStats(netlistNodes, netlistEdges).WithDuration(time.Since(start)).WithSuccess()

		if buildPublish {
			if err := publishBuild(part, netlistPath, outputPath, result); err != nil {
				event.WithPublish(false)
				audit.Log(event)
				return err
			}
			event.WithPublish(true)
		}
		audit.Log(event)

		if app.jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(result.NetlistGraph.MarshalSummary())
		}

		rpt := report.NewBuildReport(result, part, netlistPath, outputPath, time.Since(start))
		fmt.Print(rpt.String())
		return nil
	},
}

// resolveBuildInputs merges flags, a loaded gp4par.yaml (if --spec is
// set), and settings defaults into the concrete paths a build needs.
func resolveBuildInputs(args []string) (part, netlistPath, devicePath, outputPath, format, remoteHost string, err error) {
	if buildSpec != "" {
		proj, loadErr := specfile.LoadFromDir(buildSpec)
		if loadErr != nil {
			return "", "", "", "", "", "", fmt.Errorf("loading project spec: %w", loadErr)
		}
		part = proj.Part()
		netlistPath = proj.NetlistPath()
		devicePath = proj.DevicePath()
		outputPath = proj.OutputPath()
		format = proj.NetlistFormat()
		remoteHost = proj.DeviceHost()
	} else {
		if len(args) == 0 {
			return "", "", "", "", "", "", fmt.Errorf("netlist path required (or use --spec)")
		}
		netlistPath = args[0]
	}

	if buildPart != "" {
		part = buildPart
	}
	if part == "" {
		part = app.settings.DefaultPart
	}
	if part == "" {
		return "", "", "", "", "", "", fmt.Errorf("--part required (no default_part in settings or gp4par.yaml)")
	}

	if buildDevice != "" {
		devicePath = buildDevice
	}
	if buildOutput != "" {
		outputPath = buildOutput
	}
	if outputPath == "" {
		outputPath = filepath.Join(app.settings.GetOutputDir(), part+".json")
	}
	if buildFormat != "" {
		format = buildFormat
	}
	if format == "" {
		format = app.settings.GetNetlistFormat()
	}
	if buildRemoteHost != "" {
		remoteHost = buildRemoteHost
	}
	if remoteHost == "" {
		remoteHost = app.settings.DeviceHost
	}

	return part, netlistPath, devicePath, outputPath, format, remoteHost, nil
}

// loadBuildInputs loads the netlist and device descriptor, either from
// the local filesystem or, if remoteHost is set, by fetching them over
// SSH first.
func loadBuildInputs(netlistPath, devicePath, format, part, remoteHost string) (par.NetlistModule, par.DeviceDescriptor, error) {
	if remoteHost != "" {
		fetcher, err := remote.NewFetcher(remote.Config{
			Host:     remoteHost,
			User:     buildRemoteUser,
			Password: buildRemotePass,
		})
		if err != nil {
			return nil, nil, err
		}
		defer fetcher.Close()

		netlist, err := fetcher.FetchNetlist(netlistPath, format)
		if err != nil {
			return nil, nil, err
		}

		if devicePath == "" {
			device, err := devicedesc.ByPart(par.PartID(part))
			if err != nil {
				return nil, nil, err
			}
			return netlist, device, nil
		}
		device, err := fetcher.FetchDeviceDescriptor(devicePath)
		if err != nil {
			return nil, nil, err
		}
		return netlist, device, nil
	}

	var netlist *netlistio.Module
	var err error
	switch format {
	case "yaml", "yml":
		netlist, err = netlistio.LoadYAML(netlistPath)
	default:
		netlist, err = netlistio.LoadJSON(netlistPath)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading netlist %s: %w", netlistPath, err)
	}

	if devicePath == "" {
		device, err := devicedesc.ByPart(par.PartID(part))
		if err != nil {
			return nil, nil, err
		}
		return netlist, device, nil
	}
	device, err := devicedesc.NewLoader(devicePath).Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading device file %s: %w", devicePath, err)
	}
	return netlist, device, nil
}

func writeBuildOutput(outputPath, part string, result *par.Result) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	out := buildReportFile{
		Part:    part,
		Netlist: result.NetlistGraph.MarshalSummary(),
		Device:  result.DeviceGraph.MarshalSummary(),
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling build output: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outputPath, err)
	}
	return nil
}

func publishBuild(part, netlistPath, outputPath string, result *par.Result) error {
	if err := app.permChecker.Check(buildSecret); err != nil {
		return fmt.Errorf("publish denied: %w", err)
	}

	client := netcache.NewClient(buildRedisAddr)
	defer client.Close()

	nodes, edges := graphStats(result.NetlistGraph)
	return client.Publish(part, netcache.Summary{
		Part:        part,
		NetlistPath: netlistPath,
		OutputPath:  outputPath,
		NodeCount:   nodes,
		EdgeCount:   edges,
		PublishedBy: app.permChecker.CurrentUser(),
	})
}

// graphStats returns a graph's node count and total outbound edge count.
func graphStats(g *par.Graph) (nodes, edges int) {
	nodes = len(g.Nodes)
	for _, n := range g.Nodes {
		edges += len(n.Edges)
	}
	return nodes, edges
}

func logAuditFailure(event *audit.Event, start time.Time, err error) {
	event.WithError(err).WithDuration(time.Since(start))
	audit.Log(event)
}

func init() {
	buildCmd.Flags().StringVar(&buildPart, "part", "", "Target device part number (e.g. SLG46620)")
	buildCmd.Flags().StringVar(&buildDevice, "device", "", "Path to a device descriptor JSON file (overrides the built-in part catalog)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "Output path for the build summary JSON")
	buildCmd.Flags().StringVar(&buildFormat, "format", "", "Netlist format: json or yaml (default: gp4par.yaml's netlist_format, else the netlist_format setting, else json)")
	buildCmd.Flags().StringVar(&buildSpec, "spec", "", "Project directory containing gp4par.yaml")
	buildCmd.Flags().StringVar(&buildRemoteHost, "remote", "", "Fetch netlist/device files from this host over SSH instead of reading locally")
	buildCmd.Flags().StringVar(&buildRemoteUser, "remote-user", "", "SSH username for --remote")
	buildCmd.Flags().StringVar(&buildRemotePass, "remote-password", "", "SSH password for --remote")
	buildCmd.Flags().BoolVar(&buildPublish, "publish", false, "Mirror the build summary to the net-cache (requires publish permission)")
	buildCmd.Flags().StringVar(&buildRedisAddr, "redis-addr", "localhost:6379", "Redis address for --publish")
	buildCmd.Flags().StringVar(&buildSecret, "secret", "", "Shared secret for --publish, if not authorized by username")
}
