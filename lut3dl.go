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
	"io"
	"strconv"
	"strings"
)

const (
	// lut3dlSize is the grid size assumed for .3dl files.
	lut3dlSize = 17

	// lut3dlScale converts the integer samples of .3dl files to [0, 1].
	lut3dlScale = 16 * 16 * 16
)

// decode3DL reads a table in Autodesk .3dl format.
//
// The first line holds the input shaper and is ignored.  Each following
// data line holds three integers.
//
// TODO(voss): derive the grid size and scale from the shaper line, to
// support 32x32x32 tables with 12-bit samples.
func decode3DL(r io.Reader) (*Grid, error) {
	lr := newLineReader(r, Format3DL)

	_, ok, err := lr.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, lr.eof()
	}

	g, err := NewGrid(lut3dlSize)
	if err != nil {
		return nil, err
	}
	for k := range lut3dlSize {
		for j := range lut3dlSize {
			for i := range lut3dlSize {
				text, err := lr.nextData()
				if err != nil {
					return nil, err
				}
				fields := strings.Fields(text)
				if len(fields) < 3 {
					return nil, lr.invalid("expected 3 integers, found %d fields", len(fields))
				}
				var v [3]float64
				for c := range v {
					x, err := strconv.Atoi(fields[c])
					if err != nil {
						return nil, lr.invalid("malformed integer %q", fields[c])
					}
					v[c] = float64(x) / lut3dlScale
				}
				g.Set(k, j, i, Color{R: v[0], G: v[1], B: v[2]})
			}
		}
	}
	return g, nil
}
