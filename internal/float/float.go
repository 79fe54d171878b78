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

// Package float formats and rounds floating point numbers in decimal.
package float

import (
	"math"
	"regexp"
	"strconv"
)

// Format writes x with at most the given number of digits after the
// decimal point.  Trailing zeros are removed, and so is the decimal point
// if no digits remain after it.
func Format(x float64, precision int) string {
	out := strconv.FormatFloat(x, 'f', precision, 64)
	if m := tailRegexp.FindStringSubmatchIndex(out); m != nil {
		if m[2] > 0 {
			out = out[:m[2]]
		} else if m[4] > 0 {
			out = out[:m[4]]
		}
	}
	if out == "-0" {
		out = "0"
	}
	return out
}

// Round rounds x to the given number of decimal digits.
//
// The rounding is applied to the exact binary value of x, with ties
// (which can only occur for exactly representable halves) rounded to even.
// For example, Round(0.125, 2) is 0.12, and Round(0.175, 2) is 0.17
// because the nearest float64 to 0.175 lies slightly below it.
func Round(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	s := Format(x, digits)
	y, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(err)
	}
	return y
}

var (
	tailRegexp = regexp.MustCompile(`(?:\..*[1-9](0+)|(\.0+))$`)
)
