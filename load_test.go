// seehuhn.de/go/lut3d - apply 3D colour lookup tables to images
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

package lut3d

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadDefault(t *testing.T) {
	g, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Identity(DefaultSize)
	if d := cmp.Diff(want, g, cmp.AllowUnexported(Grid{})); d != "" {
		t.Errorf("default table is not the identity (-want +got):\n%s", d)
	}
}

func TestLoadExtensions(t *testing.T) {
	dir := t.TempDir()
	cube := "LUT_3D_SIZE 2\n" + strings.Repeat("0.5 0.5 0.5\n", 8)
	m3d := "in 8\nout 3\n" + strings.Repeat("1 1 1\n", 8)

	tests := []struct {
		name string
		body string
		size int
	}{
		{"a.cube", cube, 2},
		{"b.CUBE", cube, 2},
		{"c.Cube", cube, 2},
		{"d.m3d", m3d, 2},
		{"e.M3D", m3d, 2},
		{"f.3dl", make3DL(-1), lut3dlSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			g, err := Load(path)
			if err != nil {
				t.Fatal(err)
			}
			if g.Size() != tt.size {
				t.Errorf("size = %d, want %d", g.Size(), tt.size)
			}
			if tt.size != 2 {
				return
			}
			if c := g.At(1, 1, 1); !closeColor(c, Color{0.5, 0.5, 0.5}, 1e-12) {
				t.Errorf("At(1, 1, 1) = %v", c)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.cube")
	if err := os.WriteFile(bad, []byte("LUT_3D_SIZE 40\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want error
	}{
		{"missing", filepath.Join(dir, "missing.cube"), ErrIO},
		{"unknown extension", filepath.Join(dir, "missing.png"), ErrUnrecognizedExtension},
		{"no extension", filepath.Join(dir, "table"), ErrUnrecognizedExtension},
		{"too large", bad, ErrUnsupportedSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}

	_, err := Load(filepath.Join(dir, "missing.dat"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("I/O error does not wrap the cause: %v", err)
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"x.cube", FormatCube},
		{"dir.v2/x.DAT", FormatDAT},
		{"x.tar.3dl", Format3DL},
		{"X.M3d", FormatM3D},
	}
	for _, tt := range tests {
		got, err := FormatFromPath(tt.path)
		if err != nil || got != tt.want {
			t.Errorf("FormatFromPath(%q) = %v, %v, want %v", tt.path, got, err, tt.want)
		}
	}
	if _, err := FormatFromPath("dir.cube/file"); !errors.Is(err, ErrUnrecognizedExtension) {
		t.Errorf("directory extension used: %v", err)
	}
}

func FuzzDecode(f *testing.F) {
	f.Add(byte(FormatCube), []byte("LUT_3D_SIZE 2\nDOMAIN_MAX 2 2 2\n"+strings.Repeat("0 0.5 1\n", 8)))
	f.Add(byte(FormatM3D), []byte("in 8\nout 256\nvalues b g r\n"+m3dData(8)))
	f.Add(byte(FormatM3D), []byte("in 1\nout 2\n1 1 1\n"))
	f.Add(byte(Format3DL), []byte("0 64\n0 0 0\n"))
	f.Add(byte(FormatDAT), []byte("# x\n0 0 0\n"))
	f.Fuzz(func(t *testing.T, sel byte, data []byte) {
		format := Format(sel%4 + 1)
		g, err := Decode(bytes.NewReader(data), format)
		if err != nil {
			// ErrIO is possible for overlong lines
			for _, kind := range []error{ErrInvalidFormat, ErrUnsupportedSize, ErrUnexpectedEOF, ErrIO} {
				if errors.Is(err, kind) {
					return
				}
			}
			t.Fatalf("%s: unexpected error kind: %v", format, err)
		}
		n := g.Size()
		if n < 1 || n > MaxSize || len(g.cells) != n*n*n {
			t.Fatalf("%s: invalid grid of size %d with %d cells", format, n, len(g.cells))
		}
	})
}
