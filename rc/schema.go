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

// Package rc describes configuration values for matplotlib.
//
// The key names and value types follow matplotlib's rcParams.  Only the
// keys listed in [Schema] are accepted; a misspelled key is an error instead
// of being silently ignored by matplotlib.
package rc

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Kind is the type of value stored under a key.
type Kind int

// These are the supported kinds of values.
const (
	// Float values are stored as float64.
	Float Kind = iota + 1

	// Bool values are stored as bool.
	Bool

	// String values are stored as string.
	String

	// Color values are stored as palette.RGB, or as the string
	// palette.Transparent.
	Color

	// Size values are stored as [2]float64.
	Size
)

func (k Kind) String() string {
	switch k {
	case Float:
		return "float"
	case Bool:
		return "bool"
	case String:
		return "string"
	case Color:
		return "color"
	case Size:
		return "size"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Schema lists the recognized keys.
var Schema = map[string]Kind{
	"figure.figsize":   Size,
	"figure.facecolor": Color,
	"figure.edgecolor": Color,

	"axes.facecolor":     Color,
	"axes.edgecolor":     Color,
	"axes.labelcolor":    Color,
	"axes.linewidth":     Float,
	"axes.labelpad":      Float,
	"axes.grid":          Bool,
	"axes.axisbelow":     Bool,
	"axes.spines.left":   Bool,
	"axes.spines.bottom": Bool,
	"axes.spines.top":    Bool,
	"axes.spines.right":  Bool,

	"grid.color":     Color,
	"grid.linewidth": Float,
	"grid.linestyle": String,

	"lines.color":           Color,
	"lines.linewidth":       Float,
	"lines.markersize":      Float,
	"lines.markeredgewidth": Float,

	"patch.edgecolor": Color,
	"patch.linewidth": Float,

	"legend.frameon":   Bool,
	"legend.facecolor": Color,
	"legend.edgecolor": Color,

	"xtick.color":       Color,
	"xtick.direction":   String,
	"xtick.major.size":  Float,
	"xtick.minor.size":  Float,
	"xtick.major.width": Float,
	"xtick.minor.width": Float,
	"xtick.major.pad":   Float,
	"xtick.minor.pad":   Float,
	"ytick.color":       Color,
	"ytick.direction":   String,
	"ytick.major.size":  Float,
	"ytick.minor.size":  Float,
	"ytick.major.width": Float,
	"ytick.minor.width": Float,
	"ytick.major.pad":   Float,
	"ytick.minor.pad":   Float,

	"text.color":  Color,
	"text.usetex": Bool,
	"font.family": String,

	"pgf.texsystem": String,
	"pgf.rcfonts":   Bool,

	"savefig.transparent": Bool,
}

// Lookup returns the kind of value stored under key.
// The second return value is false if the key is not in the schema.
func Lookup(key string) (Kind, bool) {
	k, ok := Schema[key]
	return k, ok
}

// SchemaKeys returns all recognized keys in sorted order.
func SchemaKeys() []string {
	keys := make([]string, 0, len(Schema))
	for key := range Schema {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}
