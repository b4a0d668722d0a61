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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScatterChartTwoSiteScenario(t *testing.T) {
	tbl := twoSiteTable()

	tests := []struct {
		name string
		site string
		r    Range
		want []Point
	}{
		{"all sites, full range", AllSites, Range{0, 6000},
			[]Point{{1000, 1, "A"}, {5000, 0, "B"}}},
		{"all sites, range excludes A", AllSites, Range{2000, 6000},
			[]Point{{5000, 0, "B"}}},
		{"site A", "A", Range{0, 6000},
			[]Point{{1000, 1, "A"}}},
		{"lower bound is inclusive", AllSites, Range{1000, 1000},
			[]Point{{1000, 1, "A"}}},
		{"upper bound is inclusive", AllSites, Range{1001, 5000},
			[]Point{{5000, 0, "B"}}},
		{"empty range", AllSites, Range{1001, 4999}, nil},
		{"site outside range", "B", Range{0, 4999}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig := ScatterChart(tbl, tt.site, tt.r)
			assert.Equal(t, tt.want, fig.Points())
			require.NotNil(t, fig.XRange)
			assert.Equal(t, tt.r, *fig.XRange)
		})
	}
}

func TestScatterChartGroupsByBoosterCategory(t *testing.T) {
	fig := ScatterChart(sampleTable(), AllSites, Range{0, 10000})
	want := []Series{
		{"v1.0", []Point{{0, 0, "CCAFS LC-40"}, {525, 0, "CCAFS LC-40"}}},
		{"v1.1", []Point{{500, 0, "VAFB SLC-4E"}, {3170, 1, "CCAFS LC-40"}}},
		{"FT", []Point{
			{2490, 1, "KSC LC-39A"},
			{5300, 1, "KSC LC-39A"},
			{9600, 1, "VAFB SLC-4E"},
			{6070, 0, "KSC LC-39A"}}},
		{"B5", []Point{{9600, 1, "CCAFS SLC-40"}}}}
	if diff := cmp.Diff(want, fig.Series); diff != "" {
		t.Errorf("series mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Correlation between Payload and Success for all Sites", fig.Title)
}

func TestScatterChartSingleSite(t *testing.T) {
	fig := ScatterChart(sampleTable(), "KSC LC-39A", Range{2490, 6000})
	assert.Equal(t, "Correlation between Payload and Success for site KSC LC-39A", fig.Title)
	assert.Equal(
		t,
		[]Point{{2490, 1, "KSC LC-39A"}, {5300, 1, "KSC LC-39A"}},
		fig.Points())
}

func TestScatterChartRangeProperty(t *testing.T) {
	tbl := sampleTable()
	ranges := []Range{{0, 0}, {0, 10000}, {500, 525}, {525, 9600}, {9600, 9600}, {3000, 2000}}
	for _, r := range ranges {
		fig := ScatterChart(tbl, AllSites, r)
		want := 0
		for _, e := range tbl.Records() {
			if r.Lo <= e.PayloadMass && e.PayloadMass <= r.Hi {
				want++
			}
		}
		points := fig.Points()
		assert.Len(t, points, want, "range %v", r)
		for _, p := range points {
			assert.True(t, r.Contains(p.Payload), "point %v outside %v", p, r)
		}
	}
}

func TestScatterChartEmptySelection(t *testing.T) {
	fig := ScatterChart(sampleTable(), "Boca Chica", Range{0, 10000})
	assert.Empty(t, fig.Series)
	assert.True(t, fig.Empty())
}

func TestScatterChartIsRepeatable(t *testing.T) {
	tbl := sampleTable()
	r := Range{500, 7000}
	if diff := cmp.Diff(ScatterChart(tbl, AllSites, r), ScatterChart(tbl, AllSites, r)); diff != "" {
		t.Errorf("ScatterChart differs between calls:\n%s", diff)
	}
}
