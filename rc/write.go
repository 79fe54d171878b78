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

package rc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/figstyle/internal/float"
	"seehuhn.de/go/figstyle/palette"
)

// Precision is the number of decimal digits used when writing floats.
const Precision = 4

// WriteTo writes the values in matplotlibrc format, one "key: value" line
// per key, in sorted order.
//
// This implements the [io.WriterTo] interface.
func (p *Params) WriteTo(w io.Writer) (int64, error) {
	buf := &bytes.Buffer{}
	for _, key := range p.Keys() {
		fmt.Fprintf(buf, "%s: %s\n", key, formatRC(p.values[key]))
	}
	return buf.WriteTo(w)
}

// String returns the values in matplotlibrc format.
func (p *Params) String() string {
	b := &strings.Builder{}
	p.WriteTo(b)
	return b.String()
}

// formatRC formats a normalized value.  Colors omit the leading "#",
// since matplotlibrc files use "#" to start a comment.
func formatRC(v any) string {
	switch v := v.(type) {
	case float64:
		return float.Format(v, Precision)
	case bool:
		if v {
			return "True"
		}
		return "False"
	case string:
		return v
	case palette.RGB:
		return strings.TrimPrefix(v.Hex(), "#")
	case [2]float64:
		return float.Format(v[0], Precision) + ", " + float.Format(v[1], Precision)
	default:
		panic(fmt.Sprintf("rc: unexpected value type %T", v))
	}
}

// MarshalJSON encodes the values as a JSON object, suitable for passing
// to matplotlib's rcParams.update().  Colors are encoded as [r, g, b]
// arrays.
//
// This implements the [json.Marshaler] interface.
func (p *Params) MarshalJSON() ([]byte, error) {
	obj := make(map[string]any, len(p.values))
	for key, v := range p.values {
		switch v := v.(type) {
		case float64:
			obj[key] = json.Number(float.Format(v, Precision))
		case palette.RGB:
			obj[key] = []json.Number{
				json.Number(float.Format(v.R, Precision)),
				json.Number(float.Format(v.G, Precision)),
				json.Number(float.Format(v.B, Precision)),
			}
		case [2]float64:
			obj[key] = []json.Number{
				json.Number(float.Format(v[0], Precision)),
				json.Number(float.Format(v[1], Precision)),
			}
		default:
			obj[key] = v
		}
	}
	return json.Marshal(obj)
}
