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

import "io"

// datSize is the grid size of DaVinci .dat files.
const datSize = 33

// decodeDAT reads a table in DaVinci .dat format.  Each data line holds the
// three components of one sample.
func decodeDAT(r io.Reader) (*Grid, error) {
	lr := newLineReader(r, FormatDAT)
	g, err := NewGrid(datSize)
	if err != nil {
		return nil, err
	}
	for k := range datSize {
		for j := range datSize {
			for i := range datSize {
				text, err := lr.nextData()
				if err != nil {
					return nil, err
				}
				v, err := lr.parseTriple(text)
				if err != nil {
					return nil, err
				}
				g.Set(k, j, i, Color{R: v[0], G: v[1], B: v[2]})
			}
		}
	}
	return g, nil
}
