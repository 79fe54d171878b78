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

// Figstyle writes matplotlib style files for figures in documents.
//
// Usage:
//
//	figstyle rc a4 -o a4.mplstyle
//	figstyle json beamer
//	figstyle pages
//	figstyle palette
//	figstyle specimen letter -o letter.pdf
//
// Style options can be read from a YAML file given by the --config flag.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/figstyle/style"
)

func main() {
	a := &app{}
	err := a.rootCommand().Execute()
	if err != nil {
		a.log().Error(err)
		os.Exit(1)
	}
}

type app struct {
	configFile string
	verbose    bool

	logger *log.Logger
}

func (a *app) rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "figstyle",
		Short: "Consistent matplotlib styles for letter, A4 and beamer documents",
		Long: `figstyle derives the figure size, colors and line widths of a plot style
from the page size of the target document, and writes them as a matplotlib
style file.

Page sizes: letter, a4, beamer.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
				Prefix: "figstyle",
			})
			if a.verbose {
				a.logger.SetLevel(log.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().StringVar(&a.configFile, "config", "", "read style options from a YAML `file`")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "print debug messages")

	cmd.AddCommand(a.rcCommand())
	cmd.AddCommand(a.jsonCommand())
	cmd.AddCommand(a.pagesCommand())
	cmd.AddCommand(a.paletteCommand())
	cmd.AddCommand(a.specimenCommand())

	return cmd
}

func (a *app) log() *log.Logger {
	if a.logger == nil {
		a.logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "figstyle"})
	}
	return a.logger
}

// options reads the style options from the config file, if one was given.
func (a *app) options() (*style.Options, error) {
	if a.configFile == "" {
		return &style.Options{}, nil
	}
	fd, err := os.Open(a.configFile)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	opt, err := style.LoadOptions(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.configFile, err)
	}
	a.log().Debug("loaded options", "file", a.configFile)
	return opt, nil
}

// resolve derives the style for the page size given on the command line,
// or for the page size from the options if args is empty.
func (a *app) resolve(args []string) (*style.State, error) {
	opt, err := a.options()
	if err != nil {
		return nil, err
	}
	name := opt.PageSizeName()
	if len(args) > 0 {
		name = args[0]
	}
	st, err := style.Resolve(name, opt)
	if err != nil {
		return nil, err
	}
	w, h := st.FigureSize()
	a.log().Debug("resolved style", "page", name, "width", w, "height", h)
	return st, nil
}

// writeOutput writes data to the named file, or to the command's output if
// fileName is empty or "-".
func (a *app) writeOutput(cmd *cobra.Command, fileName string, data []byte) error {
	if fileName == "" || fileName == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	err := os.WriteFile(fileName, data, 0o644)
	if err != nil {
		return err
	}
	a.log().Info("wrote "+fileName, "bytes", len(data))
	return nil
}

var errTerminal = errors.New("refusing to write binary data to a terminal")

// isTerminal reports whether w is connected to a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func render(fn func(w io.Writer) error) ([]byte, error) {
	buf := &bytes.Buffer{}
	err := fn(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
