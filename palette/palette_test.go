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

package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	p := Default()
	want := map[Entry]string{
		Background: "#ffffff",
		Foreground: "#000000",
		Neutral:    "#808080",
	}
	got := make(map[Entry]string)
	for _, e := range Entries {
		got[e] = p.Color(e).Hex()
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("palette mismatch (-want +got):\n%s", d)
	}
}

func TestParse(t *testing.T) {
	for _, s := range []string{"#ff0000", "ff0000"} {
		c, err := Parse(s)
		if err != nil {
			t.Fatal(err)
		}
		if c != (RGB{1, 0, 0}) {
			t.Errorf("Parse(%q) = %v", s, c)
		}
	}

	_, err := Parse("not a color")
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("got %v, want ErrInvalidColor", err)
	}
}

func TestNewInvalid(t *testing.T) {
	_, err := New(White, RGB{1.5, 0, 0}, Gray)
	if !errors.Is(err, ErrInvalidColor) {
		t.Errorf("got %v, want ErrInvalidColor", err)
	}
}

func TestBlend(t *testing.T) {
	if c := Black.Blend(White, 0); c != Black {
		t.Errorf("blend at 0 = %v", c)
	}
	if c := Black.Blend(White, 1); c != White {
		t.Errorf("blend at 1 = %v", c)
	}
	if mid := White.Blend(Black, 0.5); mid != Gray {
		t.Errorf("blend at 0.5 = %v, want %v", mid, Gray)
	}
}

func TestNeutralOf(t *testing.T) {
	if c := Default().Color(Neutral); c != Gray {
		t.Errorf("default neutral = %v, want %v", c, Gray)
	}
	c := NeutralOf(White, RGB{0, 0, 0.5})
	want := RGB{0.5, 0.5, 0.75}
	if c != want {
		t.Errorf("NeutralOf = %v, want %v", c, want)
	}
}
