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

package dashboard

import (
	"math"
)

// AllSites is the dropdown value selecting every launch site.
const AllSites = "ALL"

// Component identifiers shared by the layout, the bindings and the browser.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

const payloadRoundStep = 1000 // Slider maximum is rounded up to this, in kg.

// LaunchRecord is a single row of the launch dataset.
type LaunchRecord struct {
	FlightNumber    int     // Flight number, 0 if the source has none.
	Site            string  // Launch site name.
	PayloadMass     float64 // Payload mass, in kilograms.
	Class           int     // 1 for a successful landing, 0 for a failure.
	BoosterVersion  string  // Booster version, empty if the source has none.
	BoosterCategory string  // Booster version category (v1.0, FT, B5, ...).
}

// Table is the in-memory launch dataset. It is never mutated after NewTable
// returns, so it can be shared between any number of readers.
type Table struct {
	records []LaunchRecord
}

// NewTable returns a Table holding a private copy of the given records.
func NewTable(records []LaunchRecord) *Table {
	r := make([]LaunchRecord, len(records))
	copy(r, records)
	return &Table{r}
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns a copy of the table's records, in load order.
func (t *Table) Records() []LaunchRecord {
	r := make([]LaunchRecord, len(t.records))
	copy(r, t.records)
	return r
}

// Sites returns the distinct launch sites in order of first occurrence.
func (t *Table) Sites() []string {
	seen := make(map[string]bool)
	var sites []string
	for i := range t.records {
		s := t.records[i].Site
		if !seen[s] {
			seen[s] = true
			sites = append(sites, s)
		}
	}
	return sites
}

// HasSite reports whether any record was launched from the given site.
func (t *Table) HasSite(site string) bool {
	for i := range t.records {
		if t.records[i].Site == site {
			return true
		}
	}
	return false
}

// Stats holds the payload statistics used to configure the payload slider.
type Stats struct {
	MinPayload        float64 // Smallest payload mass in the table.
	MaxPayload        float64 // Largest payload mass in the table.
	RoundedMaxPayload float64 // MaxPayload rounded up to a multiple of 1000.
}

// Stats computes payload statistics over the whole table. An empty table
// yields the zero Stats.
func (t *Table) Stats() Stats {
	if len(t.records) == 0 {
		return Stats{}
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range t.records {
		lo = math.Min(lo, t.records[i].PayloadMass)
		hi = math.Max(hi, t.records[i].PayloadMass)
	}
	return Stats{lo, hi, RoundUpPayload(hi)}
}

// PayloadRange returns the full slider domain, [MinPayload, RoundedMaxPayload].
func (s Stats) PayloadRange() Range {
	return Range{s.MinPayload, s.RoundedMaxPayload}
}

// RoundUpPayload rounds a payload mass up to the next multiple of 1000 kg.
func RoundUpPayload(kg float64) float64 {
	return math.Ceil(kg/payloadRoundStep) * payloadRoundStep
}

// Range is an inclusive payload range, in kilograms.
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether lo <= kg <= hi.
func (r Range) Contains(kg float64) bool {
	return r.Lo <= kg && kg <= r.Hi
}

// Kind names the type of chart a Figure describes.
type Kind string

const (
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Figure is a declarative chart description. It carries the already
// aggregated data, so the renderer needs no knowledge of launch records.
type Figure struct {
	Kind   Kind     `json:"kind"`
	Title  string   `json:"title"`
	Slices []Slice  `json:"slices,omitempty"`  // Pie charts only.
	Series []Series `json:"series,omitempty"`  // Scatter charts only.
	XRange *Range   `json:"x_range,omitempty"` // Scatter charts only.
}

// Slice is one wedge of a pie chart.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Series is one color group of a scatter chart.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Point is a single launch plotted on a scatter chart.
type Point struct {
	Payload float64 `json:"payload"`
	Class   int     `json:"class"`
	Site    string  `json:"site"`
}

// Points returns every point of a scatter figure, series by series.
func (f *Figure) Points() []Point {
	var points []Point
	for _, s := range f.Series {
		points = append(points, s.Points...)
	}
	return points
}

// Empty reports whether the figure has nothing to draw.
func (f *Figure) Empty() bool {
	for _, s := range f.Slices {
		if s.Value > 0 {
			return false
		}
	}
	for _, s := range f.Series {
		if len(s.Points) > 0 {
			return false
		}
	}
	return true
}

// Selection is the state of the dashboard's controls for one viewer.
type Selection struct {
	Site    string `json:"site"`
	Payload Range  `json:"payload"`
}
