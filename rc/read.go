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
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"seehuhn.de/go/figstyle/palette"
)

// ErrSyntax indicates a malformed line in a matplotlibrc file.
var ErrSyntax = errors.New("malformed line")

// Read parses a matplotlibrc file.  Comments and blank lines are skipped.
// Every key must be in the [Schema], and every value must be valid for
// the kind of its key.
func Read(r io.Reader) (*Params, error) {
	p := &Params{}
	s := bufio.NewScanner(r)
	lineNo := 0
	for s.Scan() {
		lineNo++
		line := s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, val, ok := strings.Cut(line, ":")
		if !ok {
			return nil, fmt.Errorf("rc: line %d: %w", lineNo, ErrSyntax)
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		kind, ok := Schema[key]
		if !ok {
			return nil, fmt.Errorf("rc: line %d: %q: %w", lineNo, key, ErrUnknownKey)
		}
		v, err := parseValue(kind, val)
		if err != nil {
			return nil, fmt.Errorf("rc: line %d: %q: %w", lineNo, key, err)
		}
		if err := p.set(kind, key, v); err != nil {
			return nil, fmt.Errorf("rc: line %d: %q: %w", lineNo, key, err)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func parseValue(kind Kind, s string) (any, error) {
	switch kind {
	case Float:
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrKindMismatch)
		}
		return x, nil
	case Bool:
		switch strings.ToLower(s) {
		case "true", "yes", "on", "1", "t", "y":
			return true, nil
		case "false", "no", "off", "0", "f", "n":
			return false, nil
		}
		return nil, fmt.Errorf("%q: %w", s, ErrKindMismatch)
	case String:
		return s, nil
	case Color:
		if strings.EqualFold(s, palette.Transparent) {
			return palette.Transparent, nil
		}
		c, err := palette.Parse(s)
		if err != nil {
			return nil, err
		}
		return c, nil
	case Size:
		a, b, ok := strings.Cut(s, ",")
		if !ok {
			return nil, fmt.Errorf("%q: %w", s, ErrKindMismatch)
		}
		w, err1 := strconv.ParseFloat(strings.TrimSpace(a), 64)
		h, err2 := strconv.ParseFloat(strings.TrimSpace(b), 64)
		if err1 != nil || err2 != nil {
			return nil, fmt.Errorf("%q: %w", s, ErrKindMismatch)
		}
		return [2]float64{w, h}, nil
	}
	panic("unreachable")
}
