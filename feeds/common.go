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

package feeds

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Column headers of the launch dataset.
const (
	ColFlightNumber    = "Flight Number"
	ColLaunchSite      = "Launch Site"
	ColPayloadMass     = "Payload Mass (kg)"
	ColClass           = "class"
	ColBoosterVersion  = "Booster Version"
	ColBoosterCategory = "Booster Version Category"
)

// ErrEmptyTable is returned when a feed holds a header but no launches.
var ErrEmptyTable = errors.New("feed contains no launch records")

var requiredColumns = []string{
	ColLaunchSite,
	ColPayloadMass,
	ColClass,
	ColBoosterCategory,
}

// columns maps header names to field positions. Optional columns missing from
// the header map to -1.
type columns map[string]int

func indexHeader(header []string) (columns, error) {
	c := columns{ColFlightNumber: -1, ColBoosterVersion: -1}
	for i, name := range header {
		// The dataset is exported with a leading unnamed index column, and
		// some exports carry a byte-order mark on the first header.
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if name != "" {
			c[name] = i
		}
	}
	for _, name := range requiredColumns {
		if _, ok := c[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return c, nil
}

// field returns the trimmed value of the named column, or "" when the column
// is optional and absent.
func (c columns) field(fields []string, name string) string {
	i := c[name]
	if i < 0 || i >= len(fields) {
		return ""
	}
	return strings.TrimSpace(fields[i])
}

func parseClass(value string) (int, error) {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}
	if f != 0 && f != 1 {
		return 0, fmt.Errorf("class must be 0 or 1, got %s", value)
	}
	return int(f), nil
}
