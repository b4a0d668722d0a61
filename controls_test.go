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

	"github.com/stretchr/testify/assert"
)

func TestSiteOptions(t *testing.T) {
	tbl := sampleTable()
	options := SiteOptions(tbl)

	assert.Equal(t, Option{"All Sites", AllSites}, options[0])

	seen := make(map[string]int)
	for _, o := range options[1:] {
		assert.Equal(t, o.Label, o.Value)
		seen[o.Value]++
	}
	assert.Len(t, seen, len(tbl.Sites()))
	for _, site := range tbl.Sites() {
		assert.Equal(t, 1, seen[site], site)
	}
}

func TestSliderMarks(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  []int
	}{
		{"zero minimum", Stats{0, 9600, 10000}, []int{0, 2500, 5000, 7500, 10000}},
		{"offset minimum", Stats{100, 9600, 10000}, []int{100, 2575, 5050, 7525, 10000}},
		{"uneven step", Stats{101, 9600, 10000}, []int{101, 2575, 5050, 7525, 10000}},
		{"degenerate", Stats{1000, 1000, 1000}, []int{1000}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			marks := SliderMarks(tt.stats)
			var values []int
			for _, m := range marks {
				values = append(values, m.Value)
			}
			assert.Equal(t, tt.want, values)
			assert.Equal(t, "2500", newMark(2500).Label)
		})
	}
}

func TestBuildControls(t *testing.T) {
	tbl := sampleTable()
	c := BuildControls(tbl, tbl.Stats())

	assert.Equal(t, SiteDropdownID, c.Dropdown.ID)
	assert.Equal(t, AllSites, c.Dropdown.Value)
	assert.True(t, c.Dropdown.Searchable)

	assert.Equal(t, PayloadSliderID, c.Slider.ID)
	assert.Equal(t, 0.0, c.Slider.Min)
	assert.Equal(t, 10000.0, c.Slider.Max)
	assert.Equal(t, 2500.0, c.Slider.Step)
	assert.Equal(t, Range{0, 10000}, c.Slider.Value)
	assert.Len(t, c.Slider.Marks, 5)
}

func TestAssembleLayout(t *testing.T) {
	tbl := sampleTable()
	l := AssembleLayout(BuildControls(tbl, tbl.Stats()))

	assert.Equal(t, "SpaceX Launch Records Dashboard", l.Title)

	var ids []string
	for _, c := range l.Components {
		if c.ID != "" {
			ids = append(ids, c.ID)
		}
	}
	assert.Equal(
		t,
		[]string{SiteDropdownID, PieChartID, PayloadSliderID, ScatterChartID},
		ids)
	assert.Equal(t, Heading, l.Components[0].Kind)
}
