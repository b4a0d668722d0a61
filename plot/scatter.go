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
	"math"

	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	chart "github.com/wcharczuk/go-chart/v2"
)

const dotWidth = 5

func renderScatter(
	fig dashboard.Figure,
	rp chart.RendererProvider,
	width int,
	height int,
	out io.Writer) error {

	lo, hi := xRange(fig)

	graph := chart.Chart{
		Title:  fig.Title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16}},
		XAxis: chart.XAxis{
			Name:  "Payload Mass (kg)",
			Range: &chart.ContinuousRange{Min: lo, Max: hi}},
		YAxis: chart.YAxis{
			Name:  "class",
			Range: &chart.ContinuousRange{Min: -0.5, Max: 1.5},
			Ticks: []chart.Tick{{Value: 0, Label: "0"}, {Value: 1, Label: "1"}}},
	}

	for i, s := range fig.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j], ys[j] = p.Payload, float64(p.Class)
		}
		c := chart.GetDefaultColor(i)
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				StrokeColor: c,
				DotWidth:    dotWidth,
				DotColor:    c}})
	}

	graph.Elements = []chart.Renderable{chart.Legend(&graph)}

	return graph.Render(rp, out)
}

// The x axis spans the payload range the figure was filtered with, falling
// back to the extent of the points. A degenerate range is widened so the axis
// has a non-zero length.
func xRange(fig dashboard.Figure) (float64, float64) {

	var lo, hi float64
	if fig.XRange != nil {
		lo, hi = fig.XRange.Lo, fig.XRange.Hi
	} else {
		lo, hi = math.Inf(1), math.Inf(-1)
		for _, p := range fig.Points() {
			lo = math.Min(lo, p.Payload)
			hi = math.Max(hi, p.Payload)
		}
	}

	if hi <= lo {
		lo, hi = lo-500, lo+500
	}
	return lo, hi
}
