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

// Package plot renders dashboard figures to SVG or PNG.
package plot

import (
	"fmt"
	"io"
	"os"
	"strings"

	dashboard "github.com/kurbaleva/Applied-Data-Science-Capstone"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Format is an output image format.
type Format string

const (
	SVG Format = "svg"
	PNG Format = "png"
)

// ParseFormat accepts a format name or a file extension, with or without the
// leading dot.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimPrefix(name, "."))); f {
	case SVG, PNG:
		return f, nil
	}
	return "", fmt.Errorf("unsupported image format %q", name)
}

// ContentType returns the MIME type of images in this format.
func (f Format) ContentType() string {
	if f == PNG {
		return "image/png"
	}
	return "image/svg+xml"
}

func (f Format) provider() chart.RendererProvider {
	if f == PNG {
		return chart.PNG
	}
	return chart.SVG
}

// Render draws fig into out. A figure with nothing to plot is drawn as an
// empty frame carrying the figure's title rather than treated as an error.
func Render(
	fig dashboard.Figure,
	format Format,
	width int,
	height int,
	out io.Writer) error {

	if _, err := ParseFormat(string(format)); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid chart size %dx%d", width, height)
	}

	if fig.Empty() {
		return renderEmpty(fig.Title, format, width, height, out)
	}

	switch fig.Kind {
	case dashboard.KindPie:
		return renderPie(fig, format.provider(), width, height, out)
	case dashboard.KindScatter:
		return renderScatter(fig, format.provider(), width, height, out)
	}
	return fmt.Errorf("unknown figure kind %q", fig.Kind)
}

// RenderFile renders fig into a new file at path, in the format implied by the
// file extension.
func RenderFile(fig dashboard.Figure, width int, height int, path string) error {

	format, err := ParseFormat(extension(path))
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	if err := Render(fig, format, width, height, out); err != nil {
		out.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	return out.Close()
}

func extension(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return ""
}
