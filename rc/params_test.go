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
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/figstyle/palette"
)

func TestSetValidates(t *testing.T) {
	cases := []struct {
		key   string
		value any
		want  error
	}{
		{"lines.linewidth", 0.5, nil},
		{"lines.linewidth", 1, nil},
		{"lines.linewidth", "thick", ErrKindMismatch},
		{"lines.linewidth", math.NaN(), ErrKindMismatch},
		{"lines.linewidht", 0.5, ErrUnknownKey},
		{"axes.grid", true, nil},
		{"axes.grid", "True", ErrKindMismatch},
		{"grid.color", palette.Gray, nil},
		{"grid.color", palette.Transparent, nil},
		{"grid.color", "red", ErrKindMismatch},
		{"grid.color", palette.RGB{R: 2}, ErrKindMismatch},
		{"figure.figsize", [2]float64{6.8, 4.2}, nil},
		{"figure.figsize", [2]float64{0, 4.2}, ErrKindMismatch},
		{"figure.figsize", []float64{6.8, 4.2}, ErrKindMismatch},
		{"grid.linestyle", "-", nil},
	}
	for _, c := range cases {
		p := &Params{}
		err := p.Set(c.key, c.value)
		if c.want == nil && err != nil {
			t.Errorf("Set(%q, %v): unexpected error %v", c.key, c.value, err)
		} else if c.want != nil && !errors.Is(err, c.want) {
			t.Errorf("Set(%q, %v): got %v, want %v", c.key, c.value, err, c.want)
		}
		if (err == nil) != (p.Len() == 1) {
			t.Errorf("Set(%q, %v): Len() = %d after err=%v", c.key, c.value, p.Len(), err)
		}
	}
}

func TestIntStoredAsFloat(t *testing.T) {
	p := &Params{}
	if err := p.Set("axes.labelpad", 4); err != nil {
		t.Fatal(err)
	}
	v, _ := p.Get("axes.labelpad")
	if _, ok := v.(float64); !ok {
		t.Errorf("stored %T, want float64", v)
	}
}

func testParams(t *testing.T) *Params {
	t.Helper()
	p := &Params{}
	values := map[string]any{
		"figure.figsize":   [2]float64{6.8, 6.8 / 1.618033988749895},
		"axes.edgecolor":   palette.Black,
		"grid.color":       palette.Gray,
		"legend.facecolor": palette.Transparent,
		"axes.grid":        false,
		"text.usetex":      true,
		"lines.linewidth":  0.25 * 72.27 / 25.4,
		"grid.linestyle":   "-",
	}
	for key, v := range values {
		if err := p.Set(key, v); err != nil {
			t.Fatal(err)
		}
	}
	return p
}

func TestWriteRC(t *testing.T) {
	p := testParams(t)
	want := `axes.edgecolor: 000000
axes.grid: False
figure.figsize: 6.8, 4.2026
grid.color: 808080
grid.linestyle: -
legend.facecolor: none
lines.linewidth: 0.7113
text.usetex: True
`
	if d := cmp.Diff(want, p.String()); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestReadRC(t *testing.T) {
	p := testParams(t)
	q, err := Read(strings.NewReader("# a comment\n\n" + p.String()))
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p.Keys(), q.Keys()); d != "" {
		t.Errorf("keys mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(p.String(), q.String()); d != "" {
		t.Errorf("output mismatch (-want +got):\n%s", d)
	}
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"axes.grid False\n", ErrSyntax},
		{"axes.gird: False\n", ErrUnknownKey},
		{"axes.grid: maybe\n", ErrKindMismatch},
		{"lines.linewidth: thick\n", ErrKindMismatch},
		{"figure.figsize: 6.8\n", ErrKindMismatch},
		{"figure.figsize: -1, 2\n", ErrKindMismatch},
		{"grid.color: purple\n", palette.ErrInvalidColor},
	}
	for _, c := range cases {
		_, err := Read(strings.NewReader(c.in))
		if !errors.Is(err, c.want) {
			t.Errorf("Read(%q): got %v, want %v", c.in, err, c.want)
		}
	}
}

func TestReadErrorMessage(t *testing.T) {
	in := "axes.grid: True\n\nfigure.figsize: 0, 2\n"
	_, err := Read(strings.NewReader(in))
	if err == nil {
		t.Fatal("missing error")
	}
	msg := err.Error()
	if !strings.HasPrefix(msg, `rc: line 3: "figure.figsize": `) {
		t.Errorf("unexpected message %q", msg)
	}
	if strings.Count(msg, "rc:") != 1 || strings.Count(msg, "figure.figsize") != 1 {
		t.Errorf("repeated context in %q", msg)
	}
}

func TestMarshalJSON(t *testing.T) {
	p := testParams(t)
	data, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"axes.edgecolor":   []any{0.0, 0.0, 0.0},
		"axes.grid":        false,
		"figure.figsize":   []any{6.8, 4.2026},
		"grid.color":       []any{0.5, 0.5, 0.5},
		"grid.linestyle":   "-",
		"legend.facecolor": "none",
		"lines.linewidth":  0.7113,
		"text.usetex":      true,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", d)
	}
}

func TestEqual(t *testing.T) {
	a := testParams(t)
	b := testParams(t)
	if !a.Equal(b) {
		t.Error("equal params compare unequal")
	}
	b.Set("axes.grid", true)
	if a.Equal(b) {
		t.Error("different params compare equal")
	}
	if a.Equal(nil) {
		t.Error("non-empty params equal nil")
	}
	if !(&Params{}).Equal(nil) {
		t.Error("empty params differ from nil")
	}
	c := a.Clone()
	c.Delete("axes.grid")
	if a.Equal(c) || a.Len() != c.Len()+1 {
		t.Error("Clone does not copy")
	}
}

func TestSchemaKeysSorted(t *testing.T) {
	keys := SchemaKeys()
	if len(keys) != len(Schema) {
		t.Fatalf("got %d keys, want %d", len(keys), len(Schema))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i-1] >= keys[i] {
			t.Errorf("keys not sorted at %d: %q, %q", i, keys[i-1], keys[i])
		}
	}
}
