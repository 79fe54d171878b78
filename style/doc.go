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

// Package style derives a consistent set of figure parameters from a page
// size.
//
// [Resolve] computes a [State] from the name of a page size and optional
// [Options].  The state contains the figure size, the base palette, a ladder
// of line widths and the colors and widths assigned to the elements of a
// plot (axes, grid, plotted lines, text).  [State.Params] turns this into
// matplotlib configuration values:
//
//	st, err := style.Resolve("a4", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	params, err := st.Params()
//	if err != nil {
//		log.Fatal(err)
//	}
//	params.WriteTo(os.Stdout)
//
// A State is never modified after it has been returned by Resolve.  To use
// a different page size, resolve a new state.
package style
