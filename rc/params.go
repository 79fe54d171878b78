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
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/figstyle/palette"
)

var (
	// ErrUnknownKey indicates a key which is not in the [Schema].
	ErrUnknownKey = errors.New("unknown key")

	// ErrKindMismatch indicates a value of the wrong type for its key.
	ErrKindMismatch = errors.New("value has wrong kind")
)

// Params is a set of configuration values, checked against the [Schema].
// The zero value is an empty set, ready to use.
type Params struct {
	values map[string]any
}

// Set stores a value.  The value must have the type required by the
// kind of the key; int values are accepted for Float keys.
func (p *Params) Set(key string, value any) error {
	kind, ok := Schema[key]
	if !ok {
		return fmt.Errorf("rc: %q: %w", key, ErrUnknownKey)
	}
	if err := p.set(kind, key, value); err != nil {
		return fmt.Errorf("rc: %q: %w", key, err)
	}
	return nil
}

// set stores value under key after normalizing it for the given kind.
func (p *Params) set(kind Kind, key string, value any) error {
	v, err := normalize(kind, value)
	if err != nil {
		return err
	}
	if p.values == nil {
		p.values = make(map[string]any)
	}
	p.values[key] = v
	return nil
}

// Get returns the value stored under key.
func (p *Params) Get(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Delete removes a key.
func (p *Params) Delete(key string) {
	delete(p.values, key)
}

// Len returns the number of keys set.
func (p *Params) Len() int {
	return len(p.values)
}

// Keys returns the keys which are set, in sorted order.
func (p *Params) Keys() []string {
	keys := make([]string, 0, len(p.values))
	for key := range p.values {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Equal reports whether p and other contain the same keys and values.
func (p *Params) Equal(other *Params) bool {
	if other == nil {
		return p.Len() == 0
	}
	if p.Len() != other.Len() {
		return false
	}
	for key, a := range p.values {
		b, ok := other.values[key]
		if !ok || a != b {
			return false
		}
	}
	return true
}

// Merge copies all values from other into p, overwriting existing keys.
func (p *Params) Merge(other *Params) {
	if other.Len() == 0 {
		return
	}
	if p.values == nil {
		p.values = make(map[string]any, other.Len())
	}
	for key, v := range other.values {
		p.values[key] = v
	}
}

// Clone returns a copy of p.
func (p *Params) Clone() *Params {
	res := &Params{}
	res.Merge(p)
	return res
}

func normalize(kind Kind, value any) (any, error) {
	switch kind {
	case Float:
		var x float64
		switch v := value.(type) {
		case float64:
			x = v
		case int:
			x = float64(v)
		default:
			return nil, mismatch(kind, value)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("non-finite value %g: %w", x, ErrKindMismatch)
		}
		return x, nil
	case Bool:
		if v, ok := value.(bool); ok {
			return v, nil
		}
	case String:
		if v, ok := value.(string); ok {
			return v, nil
		}
	case Color:
		switch v := value.(type) {
		case palette.RGB:
			if !v.Valid() {
				return nil, fmt.Errorf("color %v out of range: %w", v, ErrKindMismatch)
			}
			return v, nil
		case string:
			if v == palette.Transparent {
				return v, nil
			}
		}
	case Size:
		if v, ok := value.([2]float64); ok {
			if !(v[0] > 0 && v[1] > 0) || math.IsInf(v[0], 0) || math.IsInf(v[1], 0) {
				return nil, fmt.Errorf("size %v: %w", v, ErrKindMismatch)
			}
			return v, nil
		}
	}
	return nil, mismatch(kind, value)
}

func mismatch(kind Kind, value any) error {
	return fmt.Errorf("%T for %s: %w", value, kind, ErrKindMismatch)
}
