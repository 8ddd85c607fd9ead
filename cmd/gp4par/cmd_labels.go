package main

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gp4par/gp4par/pkg/cli"
	"github.com/gp4par/gp4par/pkg/par"
)

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Inspect the Table D primitive label registry",
}

var labelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every allocated label, its canonical name, and its aliases",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := par.NewRegistry()
		reg.Bootstrap()
		entries := reg.Entries()

		if app.jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(entries)
		}

		table := cli.NewTable("LABEL", "CANONICAL", "ALIASES")
		for _, e := range entries {
			aliases := "-"
			if len(e.Aliases) > 0 {
				aliases = strings.Join(e.Aliases, ", ")
			}
			table.Row(strconv.FormatUint(uint64(e.Label), 10), e.Canonical, aliases)
		}
		table.Flush()
		return nil
	},
}

func init() {
	labelsCmd.AddCommand(labelsListCmd)
}
