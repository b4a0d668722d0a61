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
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
)

// LoadCSV reads a launch dataset from the CSV file at path.
func LoadCSV(path string) (*dashboard.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open launch feed: %w", err)
	}
	defer f.Close()

	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read launch feed %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a launch dataset with a header row. Columns are found by
// header name, so their order does not matter and unknown columns are
// ignored.
func ReadCSV(r io.Reader) (*dashboard.Table, error) {

	csvReader := csv.NewReader(bufio.NewReader(r))
	csvReader.TrimLeadingSpace = true

	header, err := csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyTable
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := indexHeader(header)
	if err != nil {
		return nil, err
	}

	var records []dashboard.LaunchRecord
	for {
		fields, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := csvReader.FieldPos(0)

		record, err := parseRecord(cols, fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, ErrEmptyTable
	}
	return dashboard.NewTable(records), nil
}

func parseRecord(cols columns, fields []string) (dashboard.LaunchRecord, error) {

	var (
		record dashboard.LaunchRecord
		err    error
	)

	record.Site = cols.field(fields, ColLaunchSite)
	if record.Site == "" {
		return record, fmt.Errorf("empty %s", ColLaunchSite)
	}

	record.PayloadMass, err = strconv.ParseFloat(
		cols.field(fields, ColPayloadMass), 64)
	if err != nil {
		return record, fmt.Errorf("parse %s: %w", ColPayloadMass, err)
	}

	record.Class, err = parseClass(cols.field(fields, ColClass))
	if err != nil {
		return record, fmt.Errorf("parse %s: %w", ColClass, err)
	}

	if v := cols.field(fields, ColFlightNumber); v != "" {
		record.FlightNumber, err = strconv.Atoi(v)
		if err != nil {
			return record, fmt.Errorf("parse %s: %w", ColFlightNumber, err)
		}
	}

	record.BoosterVersion = cols.field(fields, ColBoosterVersion)
	record.BoosterCategory = cols.field(fields, ColBoosterCategory)

	return record, nil
}
