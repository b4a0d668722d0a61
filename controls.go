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

const (
	sliderStep      = 2500 // Payload slider step, in kg.
	sliderDivisions = 4    // Number of intervals between slider marks.
)

// Option is one entry of a dropdown.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Dropdown configures the launch-site selector.
type Dropdown struct {
	ID          string   `json:"id"`
	Options     []Option `json:"options"`
	Value       string   `json:"value"`
	Placeholder string   `json:"placeholder"`
	Searchable  bool     `json:"searchable"`
}

// Mark is a labelled tick on the payload slider.
type Mark struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

// RangeSlider configures the payload range selector.
type RangeSlider struct {
	ID    string  `json:"id"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Step  float64 `json:"step"`
	Marks []Mark  `json:"marks"`
	Value Range   `json:"value"`
}

// Controls groups the configuration of every interactive control.
type Controls struct {
	Dropdown Dropdown    `json:"dropdown"`
	Slider   RangeSlider `json:"slider"`
}

// BuildControls derives the dropdown and slider configuration from the table
// and its statistics.
func BuildControls(t *Table, s Stats) Controls {
	return Controls{
		Dropdown{
			ID:          SiteDropdownID,
			Options:     SiteOptions(t),
			Value:       AllSites,
			Placeholder: "Select a Launch Site here",
			Searchable:  true},
		RangeSlider{
			ID:    PayloadSliderID,
			Min:   s.MinPayload,
			Max:   s.RoundedMaxPayload,
			Step:  sliderStep,
			Marks: SliderMarks(s),
			Value: s.PayloadRange()}}
}

// SiteOptions returns the "All Sites" option followed by one option per
// distinct launch site, in order of first occurrence.
func SiteOptions(t *Table) []Option {
	options := []Option{{"All Sites", AllSites}}
	for _, site := range t.Sites() {
		options = append(options, Option{site, site})
	}
	return options
}

// SliderMarks returns evenly spaced integer marks from the minimum payload to
// the rounded maximum payload, both ends included.
func SliderMarks(s Stats) []Mark {

	lo, hi := s.MinPayload, s.RoundedMaxPayload
	if hi <= lo {
		return []Mark{newMark(int(lo))}
	}

	// Each mark is computed from the minimum rather than by accumulating a
	// truncated step, so the last mark always lands on the maximum.
	marks := make([]Mark, 0, sliderDivisions+1)
	for i := 0; i <= sliderDivisions; i++ {
		v := lo + float64(i)*(hi-lo)/sliderDivisions
		marks = append(marks, newMark(int(v)))
	}
	return marks
}

func newMark(v int) Mark {
	return Mark{v, strconv.Itoa(v)}
}
