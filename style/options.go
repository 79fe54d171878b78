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

package style

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/figstyle/ladder"
	"seehuhn.de/go/figstyle/palette"
	"seehuhn.de/go/figstyle/paper"
)

// ErrInvalidOptions indicates an unusable value in [Options].
var ErrInvalidOptions = errors.New("invalid style options")

// Options control the derivation of a style.
// For all fields, the zero value selects the default.
type Options struct {
	// PageSize is the name of the page size used when no name is given
	// explicitly.  The default is "letter".
	PageSize string `yaml:"page_size"`

	// FigureWidthRatio is the fraction of the page width used by a
	// figure.  The default is [paper.DefaultFigureWidthRatio].
	FigureWidthRatio float64 `yaml:"figure_width_ratio"`

	// FigureAspectRatio is the width over height ratio of a figure.
	// The default is [paper.GoldenRatio].
	FigureAspectRatio float64 `yaml:"figure_aspect_ratio"`

	// Columns is the number of figures placed side by side.
	// The figure width is divided by this number.
	Columns int `yaml:"columns"`

	// LineWidth is the width of a medium line in millimetres.
	// The default is [ladder.DefaultWidth].
	LineWidth float64 `yaml:"line_width"`

	// LadderRatio is the factor between consecutive line widths.
	// The default is [ladder.ISORatio].
	LadderRatio float64 `yaml:"ladder_ratio"`

	// Background, Foreground and Neutral override the base palette.
	// Colors are given as "#rrggbb".  If Neutral is empty, it is
	// half way between Background and Foreground.
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Neutral    string `yaml:"neutral"`

	// UseGrid enables grid lines.
	UseGrid bool `yaml:"use_grid"`

	// UseTeX enables text rendering by TeX, and configures the pgf backend
	// to take its fonts from the surrounding document.
	UseTeX bool `yaml:"use_tex"`

	// Transparent makes figure, axes and legend backgrounds transparent.
	Transparent bool `yaml:"transparent"`
}

// LoadOptions reads options in YAML format.  Unknown fields are an error.
// An empty input gives the default options.
func LoadOptions(r io.Reader) (*Options, error) {
	opt := &Options{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(opt)
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	if err := opt.Validate(); err != nil {
		return nil, err
	}
	return opt, nil
}

// Validate checks the options for consistency.
func (opt *Options) Validate() error {
	check := func(name string, x float64) error {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%s %g: %w", name, x, ErrInvalidOptions)
		}
		return nil
	}
	if err := check("figure width ratio", opt.FigureWidthRatio); err != nil {
		return err
	}
	if opt.FigureWidthRatio > 1 {
		return fmt.Errorf("figure width ratio %g: %w", opt.FigureWidthRatio, ErrInvalidOptions)
	}
	if err := check("figure aspect ratio", opt.FigureAspectRatio); err != nil {
		return err
	}
	if err := check("line width", opt.LineWidth); err != nil {
		return err
	}
	if err := check("ladder ratio", opt.LadderRatio); err != nil {
		return err
	}
	if opt.LadderRatio != 0 && opt.LadderRatio <= 1 {
		return fmt.Errorf("ladder ratio %g: %w", opt.LadderRatio, ErrInvalidOptions)
	}
	if opt.Columns < 0 {
		return fmt.Errorf("%d columns: %w", opt.Columns, ErrInvalidOptions)
	}
	if _, err := opt.palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	return nil
}

// PageSizeName returns the page size to use when no name is given
// explicitly.
func (opt *Options) PageSizeName() string {
	if opt.PageSize == "" {
		return paper.Letter.Name()
	}
	return opt.PageSize
}

func (opt *Options) figureRatios() (widthRatio, aspectRatio float64) {
	widthRatio = opt.FigureWidthRatio
	if widthRatio == 0 {
		widthRatio = paper.DefaultFigureWidthRatio
	}
	if opt.Columns > 1 {
		widthRatio /= float64(opt.Columns)
	}
	aspectRatio = opt.FigureAspectRatio
	if aspectRatio == 0 {
		aspectRatio = paper.GoldenRatio
	}
	return widthRatio, aspectRatio
}

func (opt *Options) ladder() (*ladder.Ladder, error) {
	width := opt.LineWidth
	if width == 0 {
		width = ladder.DefaultWidth
	}
	ratio := opt.LadderRatio
	if ratio == 0 {
		ratio = ladder.ISORatio
	}
	return ladder.New(width, ratio)
}

func (opt *Options) palette() (*palette.Palette, error) {
	def := palette.Default()
	colors := make([]palette.RGB, len(palette.Entries))
	for i, e := range palette.Entries {
		colors[i] = def.Color(e)
	}
	for i, s := range []string{opt.Background, opt.Foreground, opt.Neutral} {
		if s == "" {
			continue
		}
		c, err := palette.Parse(s)
		if err != nil {
			return nil, err
		}
		colors[i] = c
	}
	if opt.Neutral == "" {
		colors[palette.Neutral] = palette.NeutralOf(colors[palette.Background], colors[palette.Foreground])
	}
	return palette.New(colors[palette.Background], colors[palette.Foreground], colors[palette.Neutral])
}
