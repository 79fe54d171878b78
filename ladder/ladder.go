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

// Package ladder implements a geometric scale of line widths.
//
// The widths follow the convention of ISO 128 line weights, where
// consecutive widths differ by a factor of sqrt(2) (0.13, 0.18, 0.25, 0.35,
// 0.5, 0.7 mm, ...).  Perceived differences in line weight are closer to
// logarithmic than linear, so a constant factor between rungs gives a
// visually even progression from thin to thick.
package ladder

import (
	"errors"
	"fmt"
	"math"

	"seehuhn.de/go/figstyle/internal/float"
	"seehuhn.de/go/figstyle/paper"
)

// DefaultWidth is the width of a medium line, in millimetres.
const DefaultWidth = 0.25

// ISORatio is the factor between consecutive widths.
const ISORatio = math.Sqrt2

// Digits is the number of decimal digits widths are rounded to.
const Digits = 2

// ISOLineWidth returns the width of the line at the given level of the ISO
// scale, relative to defaultWidth.  Level 0 returns defaultWidth.
// The result is rounded to two decimal digits.
func ISOLineWidth(level int, defaultWidth float64) float64 {
	return LineWidth(level, defaultWidth, ISORatio)
}

// LineWidth is like [ISOLineWidth], but uses the given ratio between levels.
func LineWidth(level int, defaultWidth, ratio float64) float64 {
	return float.Round(defaultWidth*math.Pow(ratio, float64(level)), Digits)
}

// Rung names one of the widths in a [Ladder].
type Rung int

// These are the rungs of a ladder, from thinnest to thickest.
const (
	None Rung = iota
	VeryThin
	Thin
	Medium
	Thick
	VeryThick
	ExtraThick

	numRungs = iota
)

// Rungs lists all rungs in increasing order.
var Rungs = []Rung{None, VeryThin, Thin, Medium, Thick, VeryThick, ExtraThick}

// Level returns the exponent used for the rung.
// The result is meaningless for [None].
func (r Rung) Level() int {
	return int(r - Medium)
}

func (r Rung) String() string {
	switch r {
	case None:
		return "none"
	case VeryThin:
		return "very thin"
	case Thin:
		return "thin"
	case Medium:
		return "medium"
	case Thick:
		return "thick"
	case VeryThick:
		return "very thick"
	case ExtraThick:
		return "extra thick"
	default:
		return fmt.Sprintf("Rung(%d)", int(r))
	}
}

// ErrInvalidWidth is returned by [New] for unusable parameters.
var ErrInvalidWidth = errors.New("invalid line width")

// Ladder holds the widths of all rungs, in millimetres.
type Ladder struct {
	defaultWidth float64
	ratio        float64
	widths       [numRungs]float64
}

// New computes a ladder around the given medium width (in millimetres).
// The ratio between rungs must be greater than one.
func New(defaultWidth, ratio float64) (*Ladder, error) {
	if !(defaultWidth > 0) || math.IsInf(defaultWidth, 0) {
		return nil, fmt.Errorf("default width %g: %w", defaultWidth, ErrInvalidWidth)
	}
	if !(ratio > 1) || math.IsInf(ratio, 0) {
		return nil, fmt.Errorf("ratio %g: %w", ratio, ErrInvalidWidth)
	}

	l := &Ladder{
		defaultWidth: defaultWidth,
		ratio:        ratio,
	}
	for _, r := range Rungs[1:] {
		l.widths[r] = LineWidth(r.Level(), defaultWidth, ratio)
	}
	return l, nil
}

// Default returns the ladder for [DefaultWidth] and [ISORatio].
func Default() *Ladder {
	l, err := New(DefaultWidth, ISORatio)
	if err != nil {
		panic(err)
	}
	return l
}

// DefaultWidth returns the medium width the ladder was built around,
// before rounding.
func (l *Ladder) DefaultWidth() float64 {
	return l.defaultWidth
}

// Ratio returns the factor between rungs.
func (l *Ladder) Ratio() float64 {
	return l.ratio
}

// Width returns the width of the given rung in millimetres.
func (l *Ladder) Width(r Rung) float64 {
	if r < 0 || r >= numRungs {
		panic(fmt.Sprintf("ladder: invalid rung %d", int(r)))
	}
	return l.widths[r]
}

// Points returns the width of the given rung in TeX points.
func (l *Ladder) Points(r Rung) float64 {
	return l.Width(r) * paper.PointsPerMM
}

// Inches returns the width of the given rung in inches.
func (l *Ladder) Inches(r Rung) float64 {
	return l.Width(r) * paper.MM
}
