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

package paper

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

// Units of length, expressed in inches.
const (
	Inch  = 1.0
	MM    = 1.0 / MMPerInch
	Point = 1.0 / PointsPerInch
)

// Conversion factors.  Points are TeX points; PDF uses the slightly larger
// "big point" of 1/72 inch.
const (
	MMPerInch        = 25.4
	PointsPerInch    = 72.27
	PointsPerMM      = PointsPerInch / MMPerInch
	PDFPointsPerInch = 72.0
)

// Ratios used for the figure area.
const (
	// GoldenRatio is the default aspect ratio of a figure.
	GoldenRatio = math.Phi

	// ISORatio is the aspect ratio of ISO 216 paper.
	ISORatio = math.Sqrt2
)

// DefaultFigureWidthRatio is the fraction of the page width used by a figure.
const DefaultFigureWidthRatio = 0.8

// ErrInvalidDimension indicates a non-positive (or non-finite) length.
var ErrInvalidDimension = errors.New("invalid page dimension")

// Size is a named page geometry.
//
// Values of type Size are immutable.  Methods which change a property
// return a modified copy.
type Size struct {
	name   string
	width  float64
	height float64

	figureWidthRatio  float64
	figureAspectRatio float64
}

// New returns a page size with the given name and dimensions in inches.
// The figure area uses the default proportions.
func New(name string, width, height float64) (*Size, error) {
	if !isPositive(width) || !isPositive(height) {
		return nil, fmt.Errorf("page size %q: %gx%g: %w",
			name, width, height, ErrInvalidDimension)
	}
	return &Size{
		name:              name,
		width:             width,
		height:            height,
		figureWidthRatio:  DefaultFigureWidthRatio,
		figureAspectRatio: GoldenRatio,
	}, nil
}

// WithFigureRatios returns a copy of s with different figure proportions.
// The figure occupies widthRatio times the page width and has the given
// aspect ratio (width over height).  The width ratio must be in (0, 1].
func (s *Size) WithFigureRatios(widthRatio, aspectRatio float64) (*Size, error) {
	if !isPositive(widthRatio) || widthRatio > 1 {
		return nil, fmt.Errorf("page size %q: figure width ratio %g: %w",
			s.name, widthRatio, ErrInvalidDimension)
	}
	if !isPositive(aspectRatio) {
		return nil, fmt.Errorf("page size %q: figure aspect ratio %g: %w",
			s.name, aspectRatio, ErrInvalidDimension)
	}
	res := *s
	res.figureWidthRatio = widthRatio
	res.figureAspectRatio = aspectRatio
	return &res, nil
}

// Name returns the name the page size was registered under.
func (s *Size) Name() string {
	return s.name
}

// Width returns the page width in inches.
func (s *Size) Width() float64 {
	return s.width
}

// Height returns the page height in inches.
func (s *Size) Height() float64 {
	return s.height
}

// ShortestLength returns the smaller of width and height.
func (s *Size) ShortestLength() float64 {
	return math.Min(s.width, s.height)
}

// LongestLength returns the larger of width and height.
func (s *Size) LongestLength() float64 {
	return math.Max(s.width, s.height)
}

// AspectRatio returns the ratio of the longest to the shortest side.
// The result is never smaller than 1.
func (s *Size) AspectRatio() float64 {
	return s.LongestLength() / s.ShortestLength()
}

// FigureWidthRatio returns the fraction of the page width used by figures.
func (s *Size) FigureWidthRatio() float64 {
	return s.figureWidthRatio
}

// FigureAspectRatio returns the width over height ratio of figures.
func (s *Size) FigureAspectRatio() float64 {
	return s.figureAspectRatio
}

// FigureWidth returns the width of a figure in inches.
func (s *Size) FigureWidth() float64 {
	return s.width * s.figureWidthRatio
}

// FigureHeight returns the height of a figure in inches.
func (s *Size) FigureHeight() float64 {
	return s.FigureWidth() / s.figureAspectRatio
}

// FigureSize returns the width and height of a figure in inches.
func (s *Size) FigureSize() (width, height float64) {
	return s.FigureWidth(), s.FigureHeight()
}

// SampleCount returns the number of samples needed to draw a curve across
// the full figure width with one sample per point.
func (s *Size) SampleCount() int {
	return int(math.Ceil(s.FigureWidth() * PointsPerInch))
}

// MediaBox returns the page as a PDF rectangle, in PDF points.
func (s *Size) MediaBox() *pdf.Rectangle {
	return &pdf.Rectangle{
		URx: s.width * PDFPointsPerInch,
		URy: s.height * PDFPointsPerInch,
	}
}

// FigureBox returns the figure area, centered on the page, in PDF points.
func (s *Size) FigureBox() rect.Rect {
	w, h := s.FigureSize()
	w *= PDFPointsPerInch
	h *= PDFPointsPerInch
	cx := s.width * PDFPointsPerInch / 2
	cy := s.height * PDFPointsPerInch / 2
	return rect.Rect{
		LLx: cx - w/2,
		LLy: cy - h/2,
		URx: cx + w/2,
		URy: cy + h/2,
	}
}

func (s *Size) String() string {
	return fmt.Sprintf("%s (%.2fin x %.2fin)", s.name, s.width, s.height)
}

func isPositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}
