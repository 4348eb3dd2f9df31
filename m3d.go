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

// decodeM3D reads a table in Pandora .m3d format.
//
// The header declares the number of grid points ("in"), the range of the
// output values ("out") and optionally the order of the colour columns
// ("values", either as separate words or as three letters like "bgr").  The header ends with the "values" line, or with the first
// line of numbers.
func decodeM3D(r io.Reader) (*Grid, error) {
	lr := newLineReader(r, FormatM3D)

	in, out := -1, -1
	colMap := [3]int{0, 1, 2}
header:
	for {
		text, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		fields := strings.Fields(text)
		if len(fields) == 0 || isSkippable(text) {
			continue
		}
		switch fields[0] {
		case "in", "out":
			if len(fields) < 2 {
				return nil, lr.invalid("missing value for %q", fields[0])
			}
			n, err := strconv.ParseInt(fields[1], 0, 0)
			if err != nil {
				return nil, lr.invalid("malformed %s value %q", fields[0], fields[1])
			}
			if fields[0] == "in" {
				in = int(n)
			} else {
				out = int(n)
			}
		case "values":
			cols := fields[1:]
			if len(cols) == 1 && len(cols[0]) == 3 {
				// "values rgb"
				cols = strings.Split(cols[0], "")
			}
			if len(cols) < 3 {
				return nil, lr.invalid("values needs three columns")
			}
			for id := range colMap {
				switch cols[id][0] {
				case 'r':
					colMap[id] = 0
				case 'g':
					colMap[id] = 1
				case 'b':
					colMap[id] = 2
				default:
					return nil, lr.invalid("invalid colour column %q", cols[id])
				}
			}
			break header
		default:
			if _, err := strconv.ParseFloat(fields[0], 64); err == nil {
				lr.unread()
				break header
			}
		}
	}

	if in == -1 || out == -1 {
		return nil, &FormatError{
			Format: FormatM3D,
			Reason: "in and out must be defined",
			Err:    ErrInvalidFormat,
		}
	}
	if out < 2 {
		return nil, &FormatError{
			Format: FormatM3D,
			Reason: "out must be at least 2",
			Err:    ErrInvalidFormat,
		}
	}
	size := m3dSize(in)
	if size > MaxSize {
		return nil, lr.tooLarge(size)
	}
	scale := 1 / float64(out-1)

	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	for k := range size {
		for j := range size {
			for i := range size {
				text, err := lr.nextData()
				if err != nil {
					return nil, err
				}
				v, err := lr.parseTriple(text)
				if err != nil {
					return nil, err
				}
				g.Set(k, j, i, Color{
					R: v[colMap[0]] * scale,
					G: v[colMap[1]] * scale,
					B: v[colMap[2]] * scale,
				})
			}
		}
	}
	return g, nil
}

// m3dSize returns the smallest s with s*s*s >= in.  The search stops just
// above MaxSize.
func m3dSize(in int) int {
	size := 1
	for size*size*size < in && size <= MaxSize {
		size++
	}
	return size
}
