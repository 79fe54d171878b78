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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHasHeader(t *testing.T) {
	for _, year := range []string{"2021", "2026"} {
		body := strings.Replace(header, "%s", year, 1) + "package main\n"
		if !hasHeader([]byte(body)) {
			t.Errorf("header for %s not recognized", year)
		}
	}
	if hasHeader([]byte("package main\n")) {
		t.Error("missing header not detected")
	}
}

func TestOwnHeader(t *testing.T) {
	body, err := os.ReadFile(filepath.Join(".", "main.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !hasHeader(body) {
		t.Error("main.go has no license header")
	}
}
