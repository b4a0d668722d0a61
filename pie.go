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
	"strconv"
)

// PieChart describes the success pie chart for the selected site.
//
// For AllSites every site gets a wedge sized by its number of successful
// launches, over the whole table. The payload range is deliberately not
// applied here. For a single site the wedges are the outcome classes of that
// site's launches, each row counting once. An unknown site yields a figure
// with no slices.
func PieChart(t *Table, site string) Figure {

	if site == AllSites {
		return Figure{
			Kind:   KindPie,
			Title:  "Total Success Launches By Site",
			Slices: successesBySite(t)}
	}

	return Figure{
		Kind:   KindPie,
		Title:  "Total Success Launches for site " + site,
		Slices: outcomesForSite(t, site)}
}

// Sum of the class column grouped by site, sites in order of first
// occurrence.
func successesBySite(t *Table) []Slice {
	var slices []Slice
	index := make(map[string]int)
	for i := range t.records {
		r := &t.records[i]
		n, seen := index[r.Site]
		if !seen {
			n = len(slices)
			index[r.Site] = n
			slices = append(slices, Slice{Label: r.Site})
		}
		slices[n].Value += float64(r.Class)
	}
	return slices
}

// Row counts grouped by class for a single site, classes in order of first
// occurrence.
func outcomesForSite(t *Table, site string) []Slice {
	var slices []Slice
	index := make(map[int]int)
	for i := range t.records {
		r := &t.records[i]
		if r.Site != site {
			continue
		}
		n, seen := index[r.Class]
		if !seen {
			n = len(slices)
			index[r.Class] = n
			slices = append(slices, Slice{Label: strconv.Itoa(r.Class)})
		}
		slices[n].Value++
	}
	return slices
}
