// seehuhn.de/go/figstyle - consistent styling for scientific figures
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package specimen draws a sample sheet for a figure style.
//
// The sheet is a single PDF page of the selected page size.  It shows the
// figure area framed with the axis line style, the grid, one stroke for
// every rung of the line-width ladder, and one swatch for every entry of
// the palette.
package specimen

import (
	"fmt"
	"io"
	"math"

	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/figstyle/ladder"
	"seehuhn.de/go/figstyle/palette"
	"seehuhn.de/go/figstyle/paper"
	"seehuhn.de/go/figstyle/style"
)

// Version is the PDF version of generated files.
var Version = pdf.V1_7

// Write writes the specimen sheet for st to w.
func Write(w io.Writer, st *style.State) error {
	page, err := document.WriteSinglePage(w, st.Page().MediaBox(), Version, nil)
	if err != nil {
		return err
	}
	return draw(page, st)
}

// Create writes the specimen sheet for st to the named file.
func Create(fileName string, st *style.State) error {
	page, err := document.CreateSinglePage(fileName, st.Page().MediaBox(), Version, nil)
	if err != nil {
		return err
	}
	return draw(page, st)
}

func draw(page *document.Page, st *style.State) error {
	box := st.Page().FigureBox()
	boxW := box.URx - box.LLx
	boxH := box.URy - box.LLy
	margin := 0.05 * math.Min(boxW, boxH)

	// grid
	page.PushGraphicsState()
	page.SetStrokeColor(rgb(st.Color(style.GridColor)))
	page.SetLineWidth(pdfWidth(st.Width(style.GridWidth)))
	const nx, ny = 6, 4
	for i := 1; i < nx; i++ {
		x := box.LLx + boxW*float64(i)/nx
		page.MoveTo(x, box.LLy)
		page.LineTo(x, box.URy)
	}
	for j := 1; j < ny; j++ {
		y := box.LLy + boxH*float64(j)/ny
		page.MoveTo(box.LLx, y)
		page.LineTo(box.URx, y)
	}
	page.Stroke()
	page.PopGraphicsState()

	// ladder, thinnest line at the top
	l := st.Ladder()
	page.PushGraphicsState()
	page.SetStrokeColor(rgb(st.Color(style.PlotColor)))
	rungs := ladder.Rungs[1:]
	left := box.LLx + margin
	right := box.LLx + boxW/2 - margin
	step := (boxH - 2*margin) / float64(len(rungs)-1)
	for i, r := range rungs {
		y := box.URy - margin - float64(i)*step
		page.SetLineWidth(l.Inches(r) * paper.PDFPointsPerInch)
		page.MoveTo(left, y)
		page.LineTo(right, y)
		page.Stroke()
	}
	page.PopGraphicsState()

	// palette swatches
	pal := st.Palette()
	n := float64(len(palette.Entries))
	side := math.Min((boxH-2*margin-(n-1)*margin)/n, boxW/2-2*margin)
	page.PushGraphicsState()
	page.SetStrokeColor(rgb(st.Color(style.AxisColor)))
	page.SetLineWidth(pdfWidth(st.Width(style.AxisWidth)))
	x := box.URx - margin - side
	for i, e := range palette.Entries {
		y := box.URy - margin - side - float64(i)*(side+margin)
		page.SetFillColor(rgb(pal.Color(e)))
		page.Rectangle(x, y, side, side)
		page.FillAndStroke()
	}
	page.PopGraphicsState()

	// frame
	page.PushGraphicsState()
	page.SetStrokeColor(rgb(st.Color(style.AxisColor)))
	page.SetLineWidth(pdfWidth(st.Width(style.AxisWidth)))
	page.Rectangle(box.LLx, box.LLy, boxW, boxH)
	page.Stroke()
	page.PopGraphicsState()

	err := writeMetadata(page, st)
	if err != nil {
		return err
	}
	return page.Close()
}

func writeMetadata(page *document.Page, st *style.State) error {
	title := fmt.Sprintf("Figure style for %s paper", st.Page().Name())
	w, h := st.FigureSize()
	description := fmt.Sprintf("figure size %.2fin x %.2fin", w, h)

	dc := &xmp.DublinCore{}
	dc.Title.Set(language.MustParse("x-default"), title)
	dc.Description.Set(language.MustParse("x-default"), description)

	metadata := xmp.NewPacket()
	metadata.Set(dc)

	ref := page.Out.Alloc()
	dict := pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	}
	stm, err := page.Out.OpenStream(ref, dict)
	if err != nil {
		return err
	}
	err = metadata.Write(stm, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return err
	}
	err = stm.Close()
	if err != nil {
		return err
	}
	page.Out.GetMeta().Catalog.Metadata = ref
	return nil
}

// pdfWidth converts a width in TeX points to PDF points.
func pdfWidth(pt float64) float64 {
	return pt / paper.PointsPerInch * paper.PDFPointsPerInch
}

func rgb(c palette.RGB) color.Color {
	return color.DeviceRGB(c.R, c.G, c.B)
}
