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

// Package palette defines the colors used for figures.
package palette

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color in the sRGB color space.
// The components must be in the range from 0 to 1.
type RGB struct {
	R, G, B float64
}

// Basic colors.
var (
	Black = RGB{0, 0, 0}
	White = RGB{1, 1, 1}
	Gray  = RGB{0.5, 0.5, 0.5}
)

// Transparent is the value matplotlib uses to disable a color.
const Transparent = "none"

// ErrInvalidColor is returned when a color cannot be parsed.
var ErrInvalidColor = errors.New("invalid color")

// Parse reads a color in "#rrggbb" or "rrggbb" notation.
func Parse(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("%q: %w", s, ErrInvalidColor)
	}
	return RGB{c.R, c.G, c.B}, nil
}

// Valid reports whether all components are in range.
func (c RGB) Valid() bool {
	return c.colorful().IsValid()
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return c.colorful().Clamped().Hex()
}

// Components returns the color as a slice of three values.
func (c RGB) Components() []float64 {
	return []float64{c.R, c.G, c.B}
}

// Blend mixes c with other.  The parameter t ranges from 0 (only c)
// to 1 (only other).  The components are interpolated directly, so that
// white and black blend to a mid-gray of 0.5.
func (c RGB) Blend(other RGB, t float64) RGB {
	m := c.colorful().BlendRgb(other.colorful(), t).Clamped()
	return RGB{m.R, m.G, m.B}
}

func (c RGB) String() string {
	return c.Hex()
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Entry names one of the colors in a [Palette].
type Entry int

// The entries of a palette.
const (
	Background Entry = iota
	Foreground
	Neutral

	numEntries = iota
)

// Entries lists all palette entries.
var Entries = []Entry{Background, Foreground, Neutral}

func (e Entry) String() string {
	switch e {
	case Background:
		return "background"
	case Foreground:
		return "foreground"
	case Neutral:
		return "neutral"
	default:
		return fmt.Sprintf("Entry(%d)", int(e))
	}
}

// Palette is the set of base colors of a style.
type Palette struct {
	colors [numEntries]RGB
}

// New returns a palette with the given colors.
func New(background, foreground, neutral RGB) (*Palette, error) {
	p := &Palette{colors: [numEntries]RGB{background, foreground, neutral}}
	for _, e := range Entries {
		if !p.colors[e].Valid() {
			return nil, fmt.Errorf("%s color %v: %w", e, p.colors[e], ErrInvalidColor)
		}
	}
	return p, nil
}

// Default returns the palette used for printed figures: black on white,
// with mid-gray as the neutral color.
func Default() *Palette {
	return &Palette{colors: [numEntries]RGB{White, Black, NeutralOf(White, Black)}}
}

// NeutralOf returns the neutral color for the given background and
// foreground, half way between the two.
func NeutralOf(background, foreground RGB) RGB {
	return background.Blend(foreground, 0.5)
}

// Color returns the color of the given entry.
func (p *Palette) Color(e Entry) RGB {
	if e < 0 || e >= numEntries {
		panic(fmt.Sprintf("palette: invalid entry %d", int(e)))
	}
	return p.colors[e]
}
