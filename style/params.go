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
	"seehuhn.de/go/figstyle/palette"
	"seehuhn.de/go/figstyle/rc"
)

// Params returns the matplotlib configuration values for the state.
// Every call returns a new value.
func (s *State) Params() (*rc.Params, error) {
	background := any(s.palette.Color(palette.Background))
	if s.opt.Transparent {
		background = palette.Transparent
	}
	figW, figH := s.page.FigureSize()
	axis := s.Color(AxisColor)
	axisWidth := s.Width(AxisWidth)

	entries := []struct {
		key   string
		value any
	}{
		{"figure.figsize", [2]float64{figW, figH}},
		{"figure.facecolor", background},
		{"figure.edgecolor", background},

		{"axes.facecolor", background},
		{"axes.edgecolor", axis},
		{"axes.labelcolor", s.Color(TextColor)},
		{"axes.linewidth", axisWidth},
		{"axes.labelpad", LabelPad},
		{"axes.grid", s.opt.UseGrid},
		{"axes.axisbelow", true},
		{"axes.spines.left", true},
		{"axes.spines.bottom", true},
		{"axes.spines.top", false},
		{"axes.spines.right", false},

		{"grid.color", s.Color(GridColor)},
		{"grid.linewidth", s.Width(GridWidth)},
		{"grid.linestyle", "-"},

		{"lines.color", s.Color(PlotColor)},
		{"lines.linewidth", s.Width(PlotWidth)},
		{"lines.markersize", s.markerSize},
		{"lines.markeredgewidth", s.Width(MarkerEdgeWidth)},

		{"patch.edgecolor", axis},
		{"patch.linewidth", axisWidth},

		{"legend.frameon", true},
		{"legend.facecolor", background},
		{"legend.edgecolor", axis},

		{"xtick.color", axis},
		{"xtick.direction", "out"},
		{"xtick.major.size", MajorTickLength},
		{"xtick.minor.size", MinorTickLength},
		{"xtick.major.width", axisWidth},
		{"xtick.minor.width", axisWidth},
		{"xtick.major.pad", TickPad},
		{"xtick.minor.pad", TickPad},
		{"ytick.color", axis},
		{"ytick.direction", "out"},
		{"ytick.major.size", MajorTickLength},
		{"ytick.minor.size", MinorTickLength},
		{"ytick.major.width", axisWidth},
		{"ytick.minor.width", axisWidth},
		{"ytick.major.pad", TickPad},
		{"ytick.minor.pad", TickPad},

		{"text.color", s.Color(TextColor)},
		{"text.usetex", s.opt.UseTeX},
		{"font.family", "serif"},

		{"pgf.texsystem", "pdflatex"},
		{"pgf.rcfonts", !s.opt.UseTeX},

		{"savefig.transparent", s.opt.Transparent},
	}

	p := &rc.Params{}
	for _, e := range entries {
		if err := p.Set(e.key, e.value); err != nil {
			return nil, err
		}
	}
	return p, nil
}
