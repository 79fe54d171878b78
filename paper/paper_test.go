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
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf"
)

func TestLetter(t *testing.T) {
	s, err := New("letter", 8.5, 11.0)
	if err != nil {
		t.Fatal(err)
	}

	if got := s.AspectRatio(); math.Abs(got-1.294) > 1e-3 {
		t.Errorf("aspect ratio = %g, want 1.294", got)
	}
	w, h := s.FigureSize()
	if math.Abs(w-6.8) > 1e-12 {
		t.Errorf("figure width = %g, want 6.8", w)
	}
	if math.Abs(h-4.203) > 1e-3 {
		t.Errorf("figure height = %g, want 4.203", h)
	}
	if got := s.SampleCount(); got != 492 {
		t.Errorf("sample count = %d, want 492", got)
	}
}

func TestRegisteredProperties(t *testing.T) {
	for _, name := range Names() {
		s, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if s.Name() != name {
			t.Errorf("%s: Name() = %q", name, s.Name())
		}
		if s.AspectRatio() < 1 {
			t.Errorf("%s: aspect ratio %g < 1", name, s.AspectRatio())
		}
		short, long := s.ShortestLength(), s.LongestLength()
		if short > long {
			t.Errorf("%s: shortest %g > longest %g", name, short, long)
		}
		got := []float64{short, long}
		want := []float64{s.Width(), s.Height()}
		sortFloats := cmpopts.SortSlices(func(a, b float64) bool { return a < b })
		if d := cmp.Diff(want, got, sortFloats); d != "" {
			t.Errorf("%s: lengths do not match dimensions (-want +got):\n%s", name, d)
		}
	}
}

func TestNames(t *testing.T) {
	want := []string{"a4", "beamer", "letter"}
	if d := cmp.Diff(want, Names()); d != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", d)
	}
}

// The ratios must be constants.
const (
	goldenRatio = GoldenRatio
	isoRatio    = ISORatio
)

func TestRatios(t *testing.T) {
	if math.Abs(goldenRatio-0.5*(math.Sqrt(5)+1)) > 1e-15 {
		t.Errorf("golden ratio = %g", goldenRatio)
	}
	if math.Abs(isoRatio*isoRatio-2) > 1e-15 {
		t.Errorf("ISO ratio = %g", isoRatio)
	}
	w, h := A4.FigureSize()
	if math.Abs(w/h-goldenRatio) > 1e-12 {
		t.Errorf("A4 figure ratio = %g", w/h)
	}
}

func TestBeamerIsLandscape(t *testing.T) {
	if Beamer.Width() <= Beamer.Height() {
		t.Fatalf("beamer: %gx%g", Beamer.Width(), Beamer.Height())
	}
	if got := Beamer.AspectRatio(); math.Abs(got-4.0/3.0) > 1e-12 {
		t.Errorf("aspect ratio = %g, want 4/3", got)
	}
}

func TestInvalidDimension(t *testing.T) {
	cases := []struct{ w, h float64 }{
		{0, 1},
		{1, 0},
		{-1, 1},
		{1, -2},
		{math.NaN(), 1},
		{1, math.Inf(1)},
	}
	for _, c := range cases {
		_, err := New("bad", c.w, c.h)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("New(%g, %g): got %v, want ErrInvalidDimension", c.w, c.h, err)
		}
	}
}

func TestUnknownPageSize(t *testing.T) {
	_, err := Lookup("legal")
	if !errors.Is(err, ErrUnknownPageSize) {
		t.Fatalf("got %v, want ErrUnknownPageSize", err)
	}
	var e *UnknownPageSizeError
	if !errors.As(err, &e) || e.Name != "legal" {
		t.Errorf("error %v does not carry the name", err)
	}
}

func TestWithFigureRatios(t *testing.T) {
	s, err := A4.WithFigureRatios(0.5, 1)
	if err != nil {
		t.Fatal(err)
	}
	w, h := s.FigureSize()
	if math.Abs(w-105*MM) > 1e-12 || math.Abs(h-w) > 1e-12 {
		t.Errorf("figure size = %g x %g", w, h)
	}

	// A4 itself is unchanged
	if A4.FigureWidthRatio() != DefaultFigureWidthRatio {
		t.Errorf("A4 was modified")
	}

	for _, r := range [][2]float64{{0, 1}, {1.5, 1}, {0.5, 0}, {0.5, -1}} {
		_, err := A4.WithFigureRatios(r[0], r[1])
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("WithFigureRatios(%g, %g): got %v", r[0], r[1], err)
		}
	}
}

func TestBoxes(t *testing.T) {
	approx := cmpopts.EquateApprox(0, 1e-9)

	wantMedia := &pdf.Rectangle{URx: 612, URy: 792}
	if d := cmp.Diff(wantMedia, Letter.MediaBox(), approx); d != "" {
		t.Errorf("media box mismatch (-want +got):\n%s", d)
	}

	fig := Letter.FigureBox()
	w, h := Letter.FigureSize()
	wantFig := rect.Rect{
		LLx: (612 - w*72) / 2,
		LLy: (792 - h*72) / 2,
		URx: (612 + w*72) / 2,
		URy: (792 + h*72) / 2,
	}
	if d := cmp.Diff(wantFig, fig, approx); d != "" {
		t.Errorf("figure box mismatch (-want +got):\n%s", d)
	}
}
