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
	"bytes"
	"flag"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
)

const header = `// seehuhn.de/go/figstyle - consistent styling for scientific figures
// Copyright (C) %s  Jochen Voss <voss@seehuhn.de>
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

`

func main() {
	year := flag.String("year", "2026", "copyright year for new headers")
	dryRun := flag.Bool("n", false, "only list the files which would be changed")
	flag.Parse()

	root := "."
	if flag.NArg() > 0 {
		root = flag.Arg(0)
	}

	hdr := []byte(strings.Replace(header, "%s", *year, 1))
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && (strings.HasPrefix(d.Name(), "_") || d.Name() == "testdata") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if hasHeader(body) {
			return nil
		}
		if !bytes.HasPrefix(body, []byte("package ")) && !bytes.HasPrefix(body, []byte("// ")) {
			log.Printf("ATTENTION %s", path)
			return nil
		}

		log.Printf("updating %s", path)
		if *dryRun {
			return nil
		}
		return os.WriteFile(path, append(hdr, body...), 0o644)
	})
	if err != nil {
		log.Fatal(err)
	}
}

// hasHeader reports whether the file starts with a license header for
// this project, for any copyright year.
func hasHeader(body []byte) bool {
	first, _, _ := strings.Cut(header, "\n")
	return bytes.HasPrefix(body, []byte(first+"\n"))
}
