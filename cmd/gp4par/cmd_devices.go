package main

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gp4par/gp4par/pkg/cli"
	"github.com/gp4par/gp4par/pkg/devicedesc"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "Inspect built-in device descriptors",
}

var devicesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List part numbers with a built-in site catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := devicedesc.KnownParts()

		if app.jsonOutput {
			return json.NewEncoder(os.Stdout).Encode(parts)
		}

		table := cli.NewTable("PART", "IOBS", "LUT2", "LUT3", "LUT4", "FLIPFLOPS", "COUNTERS")
		for _, part := range parts {
			d, err := devicedesc.ByPart(part)
			if err != nil {
				return err
			}
			table.Row(string(part),
				strconv.Itoa(len(d.IOBs())), strconv.Itoa(len(d.LUT2s())),
				strconv.Itoa(len(d.LUT3s())), strconv.Itoa(len(d.LUT4s())),
				strconv.Itoa(len(d.Flipflops())), strconv.Itoa(len(d.Counters())))
		}
		table.Flush()
		return nil
	},
}

func init() {
	devicesCmd.AddCommand(devicesListCmd)
}
