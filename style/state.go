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

package style

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/figstyle/ladder"
	"seehuhn.de/go/figstyle/palette"
	"seehuhn.de/go/figstyle/paper"
)

// Fixed sizes, in points.
const (
	MajorTickLength = 3.5
	MinorTickLength = 2.0
	TickPad         = 3.5
	LabelPad        = 4.0

	// MarkerScale is the marker size in multiples of the plot line width.
	MarkerScale = 4.0
)

// State is a fully derived style for one page size.
type State struct {
	page    *paper.Size
	opt     Options
	palette *palette.Palette
	ladder  *ladder.Ladder

	colors [numColorRoles]palette.RGB
	widths [numWidthRoles]float64

	markerSize float64
}

// Resolve derives the style for the named page size.
// If opt is nil, the default options are used.
func Resolve(name string, opt *Options) (*State, error) {
	if opt == nil {
		opt = &Options{}
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}

	base, err := paper.Lookup(name)
	if err != nil {
		return nil, err
	}
	page, err := base.WithFigureRatios(opt.figureRatios())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	pal, err := opt.palette()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	s := &State{
		page:    page,
		opt:     *opt,
		palette: pal,
	}
	for _, r := range ColorRoles {
		s.colors[r] = pal.Color(r.Entry())
	}

	s.ladder, err = opt.ladder()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	for _, r := range WidthRoles {
		s.widths[r] = s.ladder.Points(r.Rung())
	}

	s.markerSize = MarkerScale * s.ladder.Points(ladder.Medium)

	return s, nil
}

// Page returns the selected page size, with the figure proportions set
// by the options.
func (s *State) Page() *paper.Size {
	return s.page
}

// Options returns a copy of the options the state was derived with.
func (s *State) Options() Options {
	return s.opt
}

// Palette returns the base palette.
func (s *State) Palette() *palette.Palette {
	return s.palette
}

// Ladder returns the ladder of line widths.
func (s *State) Ladder() *ladder.Ladder {
	return s.ladder
}

// Color returns the color used for the given role.
func (s *State) Color(r ColorRole) palette.RGB {
	return s.colors[r]
}

// Width returns the line width used for the given role, in points.
func (s *State) Width(r WidthRole) float64 {
	return s.widths[r]
}

// MarkerSize returns the size of plot markers, in points.
func (s *State) MarkerSize() float64 {
	return s.markerSize
}

// FigureSize returns the figure width and height in inches.
func (s *State) FigureSize() (width, height float64) {
	return s.page.FigureSize()
}

// ErrEmptyRange is returned by [State.DataAspect] for degenerate ranges.
var ErrEmptyRange = errors.New("empty data range")

// DataAspect returns the value to pass to matplotlib's Axes.set_aspect(),
// so that the data window x times y is drawn with the aspect ratio of the
// figure.  x and y give the lower and upper limits of the data.
func (s *State) DataAspect(x, y [2]float64) (float64, error) {
	dx := math.Abs(x[1] - x[0])
	dy := math.Abs(y[1] - y[0])
	if !(dx > 0) || !(dy > 0) || math.IsInf(dx, 0) || math.IsInf(dy, 0) {
		return 0, fmt.Errorf("%v x %v: %w", x, y, ErrEmptyRange)
	}
	return dx / (dy * s.page.FigureAspectRatio()), nil
}
