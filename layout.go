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

// ComponentKind names a building block of the dashboard page.
type ComponentKind string

const (
	Heading   ComponentKind = "heading"
	Paragraph ComponentKind = "paragraph"
	Break     ComponentKind = "break"
	Select    ComponentKind = "dropdown"
	Slider    ComponentKind = "range-slider"
	Graph     ComponentKind = "graph"
)

// Component is one element of the page, top to bottom.
type Component struct {
	Kind  ComponentKind     `json:"kind"`
	ID    string            `json:"id,omitempty"`
	Text  string            `json:"text,omitempty"`
	Style map[string]string `json:"style,omitempty"`
}

// Layout is the static structure of the dashboard page.
type Layout struct {
	Title      string      `json:"title"`
	Components []Component `json:"components"`
	Controls   Controls    `json:"controls"`
}

// AssembleLayout declares the page: title, site dropdown, pie chart, payload
// slider and scatter chart.
func AssembleLayout(c Controls) Layout {
	const title = "SpaceX Launch Records Dashboard"
	return Layout{
		Title: title,
		Components: []Component{
			{Kind: Heading, Text: title, Style: map[string]string{
				"text-align": "center",
				"color":      "#503D36",
				"font-size":  "40px"}},
			{Kind: Select, ID: c.Dropdown.ID},
			{Kind: Break},
			{Kind: Graph, ID: PieChartID},
			{Kind: Break},
			{Kind: Paragraph, Text: "Payload range (Kg):"},
			{Kind: Slider, ID: c.Slider.ID},
			{Kind: Graph, ID: ScatterChartID}},
		Controls: c}
}
