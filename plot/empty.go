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

package plot

import (
	"fmt"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	background = 255 // Gray level of the empty-chart canvas
	frame      = 204 // Gray level of the empty-chart frame
	ink        = 80  // Gray level of empty-chart text
	opaque     = 255 // Alpha component of an opaque color value
	emptyText  = "No launches match the selection"
)

// renderEmpty draws a framed, otherwise blank chart carrying the title and a
// note that nothing matched.
func renderEmpty(
	title string,
	format Format,
	width int,
	height int,
	out io.Writer) error {

	if format == SVG {
		_, err := fmt.Fprintf(
			out,
			`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`+
				`<rect x="0.5" y="0.5" width="%d" height="%d" fill="#ffffff" stroke="#cccccc"/>`+
				`<text x="%d" y="32" text-anchor="middle" font-family="sans-serif" font-size="16" fill="#505050">%s</text>`+
				`<text x="%d" y="%d" text-anchor="middle" font-family="sans-serif" font-size="12" fill="#909090">%s</text>`+
				`</svg>`,
			width, height,
			width-1, height-1,
			width/2, html.EscapeString(title),
			width/2, height/2, emptyText)
		return err
	}

	vis := initializeCanvas(width, height)
	drawXFrameLine(vis, 0)
	drawXFrameLine(vis, width-1)
	drawYFrameLine(vis, 0)
	drawYFrameLine(vis, height-1)
	drawCenteredText(vis, title, 32)
	drawCenteredText(vis, emptyText, height/2)
	return png.Encode(out, vis)
}

// Utility function for setting up a blank canvas.
func initializeCanvas(width int, height int) *image.RGBA {
	vis := image.NewRGBA(image.Rect(0, 0, width, height))
	bg := color.RGBA{background, background, background, opaque}
	draw.Draw(vis, vis.Bounds(), &image.Uniform{bg}, image.Point{}, draw.Src)
	return vis
}

// Utility function to draw a vertical frame line at the specified x position.
func drawXFrameLine(vis *image.RGBA, x int) {
	c := color.RGBA{frame, frame, frame, opaque}
	h := vis.Bounds().Max.Y
	for y := 0; y < h; y++ {
		vis.Set(x, y, c)
	}
}

// Utility function to draw a horizontal frame line at the specified y
// position.
func drawYFrameLine(vis *image.RGBA, y int) {
	c := color.RGBA{frame, frame, frame, opaque}
	w := vis.Bounds().Max.X
	for x := 0; x < w; x++ {
		vis.Set(x, y, c)
	}
}

// Draws a line of text horizontally centered on the canvas with its baseline
// at y. Text wider than the canvas is clipped by the image bounds.
func drawCenteredText(vis *image.RGBA, text string, y int) {
	d := &font.Drawer{
		Dst:  vis,
		Src:  image.NewUniform(color.RGBA{ink, ink, ink, opaque}),
		Face: basicfont.Face7x13}
	w := d.MeasureString(text).Round()
	d.Dot = fixed.P((vis.Bounds().Dx()-w)/2, y)
	d.DrawString(text)
}
