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

// Filter returns the records whose payload lies within r (inclusive at both
// ends) and, unless site is AllSites, which were launched from site. Records
// keep their table order.
func (t *Table) Filter(site string, r Range) []LaunchRecord {
	var out []LaunchRecord
	for i := range t.records {
		e := &t.records[i]
		if !r.Contains(e.PayloadMass) {
			continue
		}
		if site != AllSites && e.Site != site {
			continue
		}
		out = append(out, *e)
	}
	return out
}

// ScatterChart describes the payload-versus-outcome scatter chart for the
// selected site and payload range. Points are grouped into one series per
// booster version category, categories in order of first occurrence. An empty
// selection yields a figure with no series.
func ScatterChart(t *Table, site string, r Range) Figure {

	title := "Correlation between Payload and Success for all Sites"
	if site != AllSites {
		title = "Correlation between Payload and Success for site " + site
	}

	var series []Series
	index := make(map[string]int)
	for _, e := range t.Filter(site, r) {
		n, seen := index[e.BoosterCategory]
		if !seen {
			n = len(series)
			index[e.BoosterCategory] = n
			series = append(series, Series{Name: e.BoosterCategory})
		}
		series[n].Points = append(
			series[n].Points,
			Point{e.PayloadMass, e.Class, e.Site})
	}

	xRange := r
	return Figure{
		Kind:   KindScatter,
		Title:  title,
		Series: series,
		XRange: &xRange}
}
