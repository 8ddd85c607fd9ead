// Package report formats a completed (or failed) build as human-readable
// text for the CLI, colorizing when stdout is a terminal and falling back
// to plain text otherwise — the same TTY check the teacher's noun-group
// commands use to decide whether a dry-run notice gets colorized.
package report

import (
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/gp4par/gp4par/pkg/cli"
	"github.com/gp4par/gp4par/pkg/par"
)

// IsTerminal reports whether stdout is attached to a terminal. The
// report uses this to decide whether to colorize; --json output is
// selected by the flag alone.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// BuildReport summarizes one BuildGraphs invocation for display.
type BuildReport struct {
	Part        string
	NetlistPath string
	OutputPath  string
	Duration    time.Duration

	NetlistNodes int
	NetlistEdges int
	DeviceNodes  int
	DeviceEdges  int
}

// NewBuildReport computes a BuildReport from a successful par.Result.
func NewBuildReport(result *par.Result, part, netlistPath, outputPath string, duration time.Duration) *BuildReport {
	r := &BuildReport{
		Part:        part,
		NetlistPath: netlistPath,
		OutputPath:  outputPath,
		Duration:    duration,
	}
	for _, n := range result.NetlistGraph.Nodes {
		r.NetlistNodes++
		r.NetlistEdges += len(n.Edges)
	}
	for _, n := range result.DeviceGraph.Nodes {
		r.DeviceNodes++
		r.DeviceEdges += len(n.Edges)
	}
	return r
}

// String renders the report, colorizing section headers when stdout is
// a terminal.
func (r *BuildReport) String() string {
	bold := plainIfNotTTY(cli.Bold)
	green := plainIfNotTTY(cli.Green)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", bold("Build succeeded"))
	fmt.Fprintf(&b, "  part:      %s\n", r.Part)
	fmt.Fprintf(&b, "  netlist:   %s\n", r.NetlistPath)
	fmt.Fprintf(&b, "  output:    %s\n", r.OutputPath)
	fmt.Fprintf(&b, "  netlist graph: %d nodes, %d edges\n", r.NetlistNodes, r.NetlistEdges)
	fmt.Fprintf(&b, "  device graph:  %d nodes, %d edges\n", r.DeviceNodes, r.DeviceEdges)
	fmt.Fprintf(&b, "  duration:  %s\n", r.Duration)
	fmt.Fprintf(&b, "%s\n", green("ok"))
	return b.String()
}

// Failure renders a failed build: part, netlist path and the error text.
// par's diagnostics and other errors are printed the same way; the
// diagnostic kind is not shown separately.
func Failure(part, netlistPath string, err error) string {
	red := plainIfNotTTY(cli.Red)
	bold := plainIfNotTTY(cli.Bold)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", bold("Build failed"))
	fmt.Fprintf(&b, "  part:    %s\n", part)
	fmt.Fprintf(&b, "  netlist: %s\n", netlistPath)
	fmt.Fprintf(&b, "%s %s\n", red("error:"), err)
	return b.String()
}

// plainIfNotTTY returns colorize unchanged when stdout is a terminal, or
// a passthrough function that strips coloring otherwise.
func plainIfNotTTY(colorize func(string) string) func(string) string {
	if IsTerminal() {
		return colorize
	}
	return func(s string) string { return s }
}
