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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"seehuhn.de/go/figstyle/internal/float"
	"seehuhn.de/go/figstyle/ladder"
	"seehuhn.de/go/figstyle/palette"
	"seehuhn.de/go/figstyle/paper"
	"seehuhn.de/go/figstyle/specimen"
	"seehuhn.de/go/figstyle/style"
)

func (a *app) rcCommand() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "rc [page]",
		Short: "Write a matplotlibrc style file",
		Long: "Write the style for the given page size in matplotlibrc format.\n" +
			"The output can be used with matplotlib.style.use().",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.resolve(args)
			if err != nil {
				return err
			}
			params, err := st.Params()
			if err != nil {
				return err
			}
			data, err := render(func(w io.Writer) error {
				fmt.Fprintf(w, "# figstyle: %s\n", st.Page())
				_, err := params.WriteTo(w)
				return err
			})
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, outFile, data)
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write to `file` instead of standard output")
	return cmd
}

func (a *app) jsonCommand() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "json [page]",
		Short: "Write the style as JSON",
		Long: "Write the style for the given page size as a JSON object, for use\n" +
			"with matplotlib.rcParams.update().",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.resolve(args)
			if err != nil {
				return err
			}
			params, err := st.Params()
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(params, "", "  ")
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, outFile, append(data, '\n'))
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write to `file` instead of standard output")
	return cmd
}

func (a *app) pagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pages",
		Short: "List the known page sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opt, err := a.options()
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tPAGE (in)\tASPECT\tFIGURE (in)\tSAMPLES")
			for _, name := range paper.Names() {
				st, err := style.Resolve(name, opt)
				if err != nil {
					return err
				}
				p := st.Page()
				fw, fh := p.FigureSize()
				fmt.Fprintf(w, "%s\t%s x %s\t%s\t%s x %s\t%d\n",
					name,
					float.Format(p.Width(), 3), float.Format(p.Height(), 3),
					float.Format(p.AspectRatio(), 3),
					float.Format(fw, 3), float.Format(fh, 3),
					p.SampleCount())
			}
			return w.Flush()
		},
	}
}

func (a *app) paletteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palette [page]",
		Short: "Show the colors and line widths of a style",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := a.resolve(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			swatch := func(c palette.RGB) string { return "" }
			if isTerminal(out) {
				swatch = func(c palette.RGB) string {
					s := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex()))
					return s.Render("    ") + " "
				}
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "COLOR\tVALUE\tROLES")
			for _, e := range palette.Entries {
				c := st.Palette().Color(e)
				var roles []string
				for _, r := range style.ColorRoles {
					if r.Entry() == e {
						roles = append(roles, r.String())
					}
				}
				fmt.Fprintf(w, "%s\t%s%s\t%s\n", e, swatch(c), c.Hex(), strings.Join(roles, ", "))
			}
			fmt.Fprintln(w)

			l := st.Ladder()
			fmt.Fprintln(w, "WIDTH\tMM\tPT\tROLES")
			for _, rung := range ladder.Rungs {
				var roles []string
				for _, r := range style.WidthRoles {
					if r.Rung() == rung {
						roles = append(roles, r.String())
					}
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", rung,
					float.Format(l.Width(rung), 2),
					float.Format(l.Points(rung), 3),
					strings.Join(roles, ", "))
			}
			return w.Flush()
		},
	}
}

func (a *app) specimenCommand() *cobra.Command {
	var outFile string
	cmd := &cobra.Command{
		Use:   "specimen [page]",
		Short: "Write a PDF sample sheet for a style",
		Long: "Write a one-page PDF file which shows the figure area, grid,\n" +
			"line widths and colors of the style for the given page size.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (outFile == "" || outFile == "-") && isTerminal(cmd.OutOrStdout()) {
				return errTerminal
			}
			st, err := a.resolve(args)
			if err != nil {
				return err
			}
			data, err := render(func(w io.Writer) error {
				return specimen.Write(w, st)
			})
			if err != nil {
				return err
			}
			return a.writeOutput(cmd, outFile, data)
		},
	}
	cmd.Flags().StringVarP(&outFile, "output", "o", "", "write to `file` instead of standard output")
	return cmd
}
