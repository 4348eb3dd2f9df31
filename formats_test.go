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
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"testing"
)

// writeSamples writes the samples of a grid, one per line, in file order.
func writeSamples(w io.Writer, g *Grid, format string) {
	n := g.Size()
	for k := range n {
		for j := range n {
			for i := range n {
				c := g.At(k, j, i)
				fmt.Fprintf(w, format, c.R, c.G, c.B)
			}
		}
	}
}

func gridsClose(a, b *Grid, eps float64) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.cells {
		if !closeColor(a.cells[i], b.cells[i], eps) {
			return false
		}
	}
	return true
}

func TestDAT(t *testing.T) {
	want, _ := Identity(datSize)
	var buf strings.Builder
	buf.WriteString("# DaVinci table\n\n")
	n := 0
	for k := range datSize {
		for j := range datSize {
			for i := range datSize {
				c := want.At(k, j, i)
				fmt.Fprintf(&buf, "  %g\t%g %g\n", c.R, c.G, c.B)
				n++
				if n%1000 == 0 {
					buf.WriteString("   \n# comment\n")
				}
			}
		}
	}

	got, err := Decode(strings.NewReader(buf.String()), FormatDAT)
	if err != nil {
		t.Fatal(err)
	}
	if !gridsClose(got, want, 1e-12) {
		t.Error("decoded table differs from identity")
	}
}

func TestDATErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("0 0 0\n0 0 0.03125\n"), FormatDAT)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("short file: got %v, want ErrUnexpectedEOF", err)
	}
	_, err = Decode(strings.NewReader("0 0 0\n0 0 abc\n"), FormatDAT)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("malformed file: got %v, want ErrInvalidFormat", err)
	}
}

func make3DL(lines int) string {
	var buf strings.Builder
	buf.WriteString("0 64 128 192 256 320 384 448 512 576 640 704 768 832 896 960 1023\n")
	n := 0
	for k := range lut3dlSize {
		for j := range lut3dlSize {
			for i := range lut3dlSize {
				if n == lines {
					return buf.String()
				}
				fmt.Fprintf(&buf, "%d %d %d\n", k*256, j*256, i*256)
				n++
			}
		}
	}
	return buf.String()
}

func Test3DL(t *testing.T) {
	got, err := Decode(strings.NewReader(make3DL(-1)), Format3DL)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Identity(lut3dlSize)
	if !gridsClose(got, want, 1e-12) {
		t.Error("decoded table differs from identity")
	}
	if c := got.At(16, 8, 0); c != (Color{1, 0.5, 0}) {
		t.Errorf("At(16, 8, 0) = %v", c)
	}
}

func Test3DLErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", ErrUnexpectedEOF},
		{"header only", "0 64 128\n", ErrUnexpectedEOF},
		{"short", make3DL(17*17*17 - 1), ErrUnexpectedEOF},
		{"float samples", "header\n0.5 0 0\n", ErrInvalidFormat},
		{"two columns", "header\n0 0\n", ErrInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in), Format3DL)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestM3DSize(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 1}, {0, 1}, {1, 1}, {2, 2}, {8, 2}, {9, 3}, {27, 3}, {28, 4},
		{36 * 36 * 36, 36}, {36*36*36 + 1, 37}, {math.MaxInt32, 37},
	}
	for _, tt := range tests {
		if got := m3dSize(tt.in); got != tt.want {
			t.Errorf("m3dSize(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func m3dData(n int) string {
	var buf strings.Builder
	for i := range n {
		fmt.Fprintf(&buf, "%d %d %d\n", i, 2*i, 3*i)
	}
	return buf.String()
}

func TestM3D(t *testing.T) {
	in := "# pandora\nin 8\nout 256\nvalues r g b\n" + m3dData(8)
	g, err := Decode(strings.NewReader(in), FormatM3D)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 2 {
		t.Fatalf("size = %d, want 2", g.Size())
	}
	want := Color{7.0 / 255, 14.0 / 255, 21.0 / 255}
	if got := g.At(1, 1, 1); !closeColor(got, want, 1e-12) {
		t.Errorf("At(1, 1, 1) = %v, want %v", got, want)
	}

	in = "in 9\nout 4096\n" + m3dData(27)
	g, err = Decode(strings.NewReader(in), FormatM3D)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Fatalf("size = %d, want 3", g.Size())
	}
}

func TestM3DColumnOrder(t *testing.T) {
	for _, values := range []string{"blue green red", "b g r", "bgr"} {
		t.Run(values, func(t *testing.T) {
			in := "in 1\nout 11\nvalues " + values + "\n1 2 3\n"
			g, err := Decode(strings.NewReader(in), FormatM3D)
			if err != nil {
				t.Fatal(err)
			}
			want := Color{0.3, 0.2, 0.1}
			if got := g.At(0, 0, 0); !closeColor(got, want, 1e-12) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestM3DErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"no in", "out 256\n" + m3dData(8), ErrInvalidFormat},
		{"no out", "in 8\n" + m3dData(8), ErrInvalidFormat},
		{"out too small", "in 8\nout 1\n" + m3dData(8), ErrInvalidFormat},
		{"bad column", "in 8\nout 256\nvalues r x b\n" + m3dData(8), ErrInvalidFormat},
		{"missing column", "in 8\nout 256\nvalues r g\n" + m3dData(8), ErrInvalidFormat},
		{"short packed columns", "in 8\nout 256\nvalues rg\n" + m3dData(8), ErrInvalidFormat},
		{"bad packed column", "in 8\nout 256\nvalues rxb\n" + m3dData(8), ErrInvalidFormat},
		{"bad in", "in eight\nout 256\n", ErrInvalidFormat},
		{"too large", "in 50653\nout 256\n", ErrUnsupportedSize},
		{"truncated", "in 8\nout 256\nvalues r g b\n" + m3dData(7), ErrUnexpectedEOF},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.in), FormatM3D)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}
