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

package plot

import (
	"io"
	"strconv"

	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	chart "github.com/wcharczuk/go-chart/v2"
)

func renderPie(
	fig dashboard.Figure,
	rp chart.RendererProvider,
	width int,
	height int,
	out io.Writer) error {

	var total float64
	for _, s := range fig.Slices {
		total += s.Value
	}

	// Wedges of zero size are skipped, as the pie cannot draw them anyway.
	// Colors stay keyed to the slice's position so a site keeps its color
	// between figures.
	values := make([]chart.Value, 0, len(fig.Slices))
	for i, s := range fig.Slices {
		if s.Value <= 0 {
			continue
		}
		pct := strconv.FormatFloat(100*s.Value/total, 'f', 1, 64)
		values = append(values, chart.Value{
			Label: s.Label + " " + pct + "%",
			Value: s.Value,
			Style: chart.Style{FillColor: chart.GetDefaultColor(i)}})
	}

	pie := chart.PieChart{
		Title:  fig.Title,
		Width:  width,
		Height: height,
		Values: values}

	return pie.Render(rp, out)
}
