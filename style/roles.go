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
	"fmt"

	"seehuhn.de/go/figstyle/ladder"
	"seehuhn.de/go/figstyle/palette"
)

// ColorRole names the purpose a color is used for.
type ColorRole int

// These are the color roles.
const (
	AxisColor ColorRole = iota
	GridColor
	PlotColor
	TextColor

	numColorRoles = iota
)

// ColorRoles lists all color roles.
var ColorRoles = []ColorRole{AxisColor, GridColor, PlotColor, TextColor}

// colorRoles maps every color role to its palette entry.
var colorRoles = [numColorRoles]palette.Entry{
	AxisColor: palette.Foreground,
	GridColor: palette.Neutral,
	PlotColor: palette.Foreground,
	TextColor: palette.Foreground,
}

// Entry returns the palette entry used for the role.
func (r ColorRole) Entry() palette.Entry {
	return colorRoles[r]
}

func (r ColorRole) String() string {
	switch r {
	case AxisColor:
		return "axis"
	case GridColor:
		return "grid"
	case PlotColor:
		return "plot"
	case TextColor:
		return "text"
	default:
		return fmt.Sprintf("ColorRole(%d)", int(r))
	}
}

// WidthRole names the purpose a line width is used for.
type WidthRole int

// These are the width roles.
const (
	AxisWidth WidthRole = iota
	GridWidth
	PlotWidth
	MarkerEdgeWidth

	numWidthRoles = iota
)

// WidthRoles lists all width roles.
var WidthRoles = []WidthRole{AxisWidth, GridWidth, PlotWidth, MarkerEdgeWidth}

// widthRoles maps every width role to its rung on the ladder.
var widthRoles = [numWidthRoles]ladder.Rung{
	AxisWidth:       ladder.VeryThin,
	GridWidth:       ladder.VeryThin,
	PlotWidth:       ladder.Medium,
	MarkerEdgeWidth: ladder.Thin,
}

// Rung returns the ladder rung used for the role.
func (r WidthRole) Rung() ladder.Rung {
	return widthRoles[r]
}

func (r WidthRole) String() string {
	switch r {
	case AxisWidth:
		return "axis"
	case GridWidth:
		return "grid"
	case PlotWidth:
		return "plot"
	case MarkerEdgeWidth:
		return "marker edge"
	default:
		return fmt.Sprintf("WidthRole(%d)", int(r))
	}
}
