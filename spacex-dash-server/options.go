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

package main

import (
	"net/url"
	"strconv"

	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	"go.uber.org/zap"
)

// Query options accepted by the figure and render actions:
type options struct {
	selection dashboard.Selection // Clamped control values.
	w         int                 // Rendered chart width, in pixels.
	h         int                 // Rendered chart height, in pixels.
}

// parseOptions reads control values and chart size from a query string.
// Missing or malformed values fall back to the page defaults, as if the
// viewer had not touched the corresponding control.
func (s *server) parseOptions(values url.Values) *options {
	defaults := s.dash.DefaultSelection()
	return &options{
		s.dash.Clamp(dashboard.Selection{
			Site: s.strOpt(values, "site", defaults.Site),
			Payload: dashboard.Range{
				Lo: s.f64Opt(values, "payload-min", defaults.Payload.Lo),
				Hi: s.f64Opt(values, "payload-max", defaults.Payload.Hi)}}),
		s.intOpt(values, "width", s.width),
		s.intOpt(values, "height", s.height)}
}

func (s *server) f64Opt(values url.Values, name string, defaultValue float64) float64 {
	strValue := values.Get(name)
	if strValue == "" {
		return defaultValue
	}
	f64Value, err := strconv.ParseFloat(strValue, 64)
	if err != nil {
		s.logMalformedOption(name, strValue)
		return defaultValue
	}
	return f64Value
}

func (s *server) intOpt(values url.Values, name string, defaultValue int) int {
	strValue := values.Get(name)
	if strValue == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(strValue)
	if err != nil || intValue <= 0 || intValue > maxChartSize {
		s.logMalformedOption(name, strValue)
		return defaultValue
	}
	return intValue
}

func (s *server) strOpt(values url.Values, name string, defaultValue string) string {
	strValue := values.Get(name)
	if strValue == "" {
		return defaultValue
	}
	return strValue
}

func (s *server) logMalformedOption(name string, value string) {
	s.log.Warn(
		"malformed option, falling back to default",
		zap.String("option", name),
		zap.String("value", value))
}
