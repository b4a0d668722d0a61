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

package feeds

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).PaddingRight(2)
	cellStyle    = lipgloss.NewStyle().PaddingRight(2)
	successStyle = cellStyle.Foreground(lipgloss.Color("#3b82f6"))
	failureStyle = cellStyle.Foreground(lipgloss.Color("#bf2121"))
)

var printedColumns = []string{
	ColFlightNumber,
	ColLaunchSite,
	ColPayloadMass,
	"Outcome",
	ColBoosterVersion,
	ColBoosterCategory,
}

// PrintLaunchLog pretty-prints launch records as an aligned table followed by
// a success count.
func PrintLaunchLog(out io.Writer, records []dashboard.LaunchRecord) error {

	rows := make([][]string, 0, len(records))
	successes := 0
	for _, r := range records {
		outcome := "failure"
		if r.Class == 1 {
			outcome = "success"
			successes++
		}
		rows = append(rows, []string{
			strconv.Itoa(r.FlightNumber),
			r.Site,
			strconv.FormatFloat(r.PayloadMass, 'f', -1, 64),
			outcome,
			r.BoosterVersion,
			r.BoosterCategory})
	}

	widths := make([]int, len(printedColumns))
	for i, name := range printedColumns {
		widths[i] = len(name)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	line := func(cells []string, style func(i int) lipgloss.Style) string {
		rendered := make([]string, len(cells))
		for i, cell := range cells {
			rendered[i] = style(i).Width(widths[i] + 2).Render(cell)
		}
		return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	}

	if _, err := fmt.Fprintln(out, line(printedColumns, func(int) lipgloss.Style {
		return headerStyle
	})); err != nil {
		return err
	}

	for _, row := range rows {
		style := func(i int) lipgloss.Style {
			switch {
			case i != 3:
				return cellStyle
			case row[i] == "success":
				return successStyle
			default:
				return failureStyle
			}
		}
		if _, err := fmt.Fprintln(out, line(row, style)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(
		out,
		"\n%d launches, %d successful\n",
		len(records),
		successes)
	return err
}
