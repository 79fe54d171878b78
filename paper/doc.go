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

// Package paper describes the page geometries figures are prepared for.
//
// All lengths are given in inches, which is the unit matplotlib uses for
// figure sizes.  The constants [MM] and [Point] convert from millimetres
// and TeX points.  A [Size] fixes the page dimensions together with the
// proportions of the figure area on the page:  by default a figure takes up
// 80% of the page width and has the shape of a golden rectangle, regardless
// of the shape of the page.
//
// The registered page sizes are "letter", "a4" and "beamer".  Use [Lookup]
// to find a page size by name.
package paper
