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
	"slices"
)

// Handler maps the current control values to a chart description.
type Handler func(Selection) Figure

// Binding ties an output placeholder to the controls it depends on and the
// handler producing its figure.
type Binding struct {
	Output  string   // Placeholder the figure is drawn into.
	Inputs  []string // Controls whose changes re-run the handler.
	Handler Handler
}

// Output is a figure produced for a placeholder by a dispatch.
type Output struct {
	ID     string `json:"output"`
	Figure Figure `json:"figure"`
}

// Dashboard is the immutable context shared by every request: the loaded
// table, its statistics, the page description and the handler bindings.
type Dashboard struct {
	table    *Table
	stats    Stats
	controls Controls
	layout   Layout
	bindings []Binding
}

// New builds a Dashboard over t.
func New(t *Table) *Dashboard {

	d := &Dashboard{table: t, stats: t.Stats()}
	d.controls = BuildControls(t, d.stats)
	d.layout = AssembleLayout(d.controls)

	d.bindings = []Binding{
		{
			Output: PieChartID,
			Inputs: []string{SiteDropdownID},
			Handler: func(s Selection) Figure {
				return PieChart(d.table, s.Site)
			}},
		{
			Output: ScatterChartID,
			Inputs: []string{SiteDropdownID, PayloadSliderID},
			Handler: func(s Selection) Figure {
				return ScatterChart(d.table, s.Site, s.Payload)
			}}}

	return d
}

// Table returns the loaded launch table.
func (d *Dashboard) Table() *Table { return d.table }

// Stats returns the payload statistics of the table.
func (d *Dashboard) Stats() Stats { return d.stats }

// Controls returns the dropdown and slider settings.
func (d *Dashboard) Controls() Controls { return d.controls }

// Layout returns the static page description.
func (d *Dashboard) Layout() Layout { return d.layout }

// DefaultSelection returns the state of the controls when the page loads.
func (d *Dashboard) DefaultSelection() Selection {
	return Selection{AllSites, d.stats.PayloadRange()}
}

// Clamp returns s with an empty site replaced by AllSites and the payload
// range forced into the slider domain with Lo <= Hi.
func (d *Dashboard) Clamp(s Selection) Selection {
	if s.Site == "" {
		s.Site = AllSites
	}
	lo, hi := d.stats.MinPayload, d.stats.RoundedMaxPayload
	s.Payload.Lo = min(max(s.Payload.Lo, lo), hi)
	s.Payload.Hi = min(max(s.Payload.Hi, lo), hi)
	if s.Payload.Lo > s.Payload.Hi {
		s.Payload.Lo, s.Payload.Hi = s.Payload.Hi, s.Payload.Lo
	}
	return s
}

// Dispatch runs, in declaration order, every binding that has control among
// its inputs. An unknown control dispatches nothing.
func (d *Dashboard) Dispatch(s Selection, control string) []Output {
	var out []Output
	for _, b := range d.bindings {
		if slices.Contains(b.Inputs, control) {
			out = append(out, Output{b.Output, b.Handler(s)})
		}
	}
	return out
}

// RenderAll runs every binding, as on the initial page load.
func (d *Dashboard) RenderAll(s Selection) []Output {
	out := make([]Output, 0, len(d.bindings))
	for _, b := range d.bindings {
		out = append(out, Output{b.Output, b.Handler(s)})
	}
	return out
}

// Figure runs the binding for a single output placeholder.
func (d *Dashboard) Figure(output string, s Selection) (Figure, bool) {
	for _, b := range d.bindings {
		if b.Output == output {
			return b.Handler(s), true
		}
	}
	return Figure{}, false
}

// Outputs returns the ids of every bound placeholder.
func (d *Dashboard) Outputs() []string {
	ids := make([]string, len(d.bindings))
	for i, b := range d.bindings {
		ids[i] = b.Output
	}
	return ids
}
