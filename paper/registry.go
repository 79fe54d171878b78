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

package paper

import (
	"errors"
	"strconv"

	"golang.org/x/exp/slices"
)

// Registered page sizes.
var (
	Letter = mustNew("letter", 8.5*Inch, 11.0*Inch)
	A4     = mustNew("a4", 210.0*MM, 297.0*MM)
	Beamer = mustNew("beamer", 128.0*MM, 96.0*MM)
)

var registry = map[string]*Size{
	Letter.name: Letter,
	A4.name:     A4,
	Beamer.name: Beamer,
}

// ErrUnknownPageSize is matched by all [UnknownPageSizeError] values.
var ErrUnknownPageSize = errors.New("unknown page size")

// UnknownPageSizeError is returned by [Lookup] for unregistered names.
type UnknownPageSizeError struct {
	Name string
}

func (err *UnknownPageSizeError) Error() string {
	return "unknown page size " + strconv.Quote(err.Name)
}

// Is reports whether target is [ErrUnknownPageSize].
func (err *UnknownPageSizeError) Is(target error) bool {
	return target == ErrUnknownPageSize
}

// Lookup returns the page size registered under the given name.
func Lookup(name string) (*Size, error) {
	s, ok := registry[name]
	if !ok {
		return nil, &UnknownPageSizeError{Name: name}
	}
	return s, nil
}

// Names returns the names of all registered page sizes, in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func mustNew(name string, width, height float64) *Size {
	s, err := New(name, width, height)
	if err != nil {
		panic(err)
	}
	return s
}
