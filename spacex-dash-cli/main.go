// SpaceX Launch Dashboard: launch-outcome charts over a static launch dataset

// Copyright (C) 2014 Christian Paro <christian.paro@gmail.com>,
//                                   <cparo@digitalocean.com>

// This program is free software: you can redistribute it and/or modify it under
// the terms of the GNU General Public License version 2 as published by the
// Free Software Foundation.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE. See the GNU General Public License for more
// details.

// You should have received a copy of the GNU General Public License along with
// this program. If not, see <http://www.gnu.org/licenses/>.

// spacex-dash-cli runs the dashboard's handlers from the command line:
// dataset statistics, control configuration, filtered launch listings and
// chart rendering to image files.
//
// Usage:
//
//	spacex-dash-cli --data spacex_launch_dash.csv render scatter --site "KSC LC-39A" scatter.png
package main

import (
	"encoding/json"
	"fmt"
	"os"

	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	"github.com/kurbaleva/Applied-Data-Science-Capstone/feeds"
	"github.com/kurbaleva/Applied-Data-Science-Capstone/plot"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spacex-dash-cli:", err)
		os.Exit(1)
	}
}

// selectionFlags are the control values shared by the print and render
// commands. Unset payload bounds default to the slider's full range.
type selectionFlags struct {
	site       string
	payloadMin float64
	payloadMax float64
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.site, "site", dashboard.AllSites, "launch site, or ALL")
	cmd.Flags().Float64Var(&f.payloadMin, "payload-min", 0, "lower payload bound in kg (default: minimum payload)")
	cmd.Flags().Float64Var(&f.payloadMax, "payload-max", 0, "upper payload bound in kg (default: rounded maximum payload)")
}

func (f *selectionFlags) selection(cmd *cobra.Command, d *dashboard.Dashboard) dashboard.Selection {
	s := d.DefaultSelection()
	s.Site = f.site
	if cmd.Flags().Changed("payload-min") {
		s.Payload.Lo = f.payloadMin
	}
	if cmd.Flags().Changed("payload-max") {
		s.Payload.Hi = f.payloadMax
	}
	return d.Clamp(s)
}

func newRootCmd() *cobra.Command {

	var dataPath string
	var d *dashboard.Dashboard

	root := &cobra.Command{
		Use:           "spacex-dash-cli",
		Short:         "Query and render the SpaceX launch dashboard offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			table, err := feeds.LoadCSV(dataPath)
			if err != nil {
				return err
			}
			d = dashboard.New(table)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&dataPath, "data", "spacex_launch_dash.csv", "launch dataset CSV")

	root.AddCommand(&cobra.Command{
		Use:   "stats",
		Short: "Print payload statistics of the dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := d.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "records:             %d\n", d.Table().Len())
			fmt.Fprintf(out, "sites:               %d\n", len(d.Table().Sites()))
			fmt.Fprintf(out, "min payload:         %g\n", s.MinPayload)
			fmt.Fprintf(out, "max payload:         %g\n", s.MaxPayload)
			fmt.Fprintf(out, "rounded max payload: %g\n", s.RoundedMaxPayload)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "controls",
		Short: "Print the dropdown and slider configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(d.Controls())
		},
	})

	var printSel selectionFlags
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "List the launches the scatter chart would plot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := printSel.selection(cmd, d)
			return feeds.PrintLaunchLog(
				cmd.OutOrStdout(),
				d.Table().Filter(s.Site, s.Payload))
		},
	}
	printSel.register(printCmd)
	root.AddCommand(printCmd)

	var (
		renderSel     selectionFlags
		width, height int
	)
	renderCmd := &cobra.Command{
		Use:       "render (pie|scatter) output-file",
		Short:     "Render a chart to a .svg or .png file",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"pie", "scatter"},
		RunE: func(cmd *cobra.Command, args []string) error {
			outputs := map[string]string{
				"pie":     dashboard.PieChartID,
				"scatter": dashboard.ScatterChartID,
			}
			output, ok := outputs[args[0]]
			if !ok {
				return fmt.Errorf("unknown chart %q, want pie or scatter", args[0])
			}
			fig, _ := d.Figure(output, renderSel.selection(cmd, d))
			if err := plot.RenderFile(fig, width, height, args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", args[1], fig.Title)
			return nil
		},
	}
	renderSel.register(renderCmd)
	renderCmd.Flags().IntVar(&width, "width", 800, "chart width in pixels")
	renderCmd.Flags().IntVar(&height, "height", 450, "chart height in pixels")
	root.AddCommand(renderCmd)

	return root
}
