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

// decodeCube reads a table in Iridas .cube format.
//
// Lines before the LUT_3D_SIZE keyword are ignored, except for DOMAIN_MIN
// and DOMAIN_MAX.  Each sample read after a domain directive is multiplied
// component-wise by DOMAIN_MAX - DOMAIN_MIN.
func decodeCube(r io.Reader) (*Grid, error) {
	lr := newLineReader(r, FormatCube)
	domainMin := [3]float64{0, 0, 0}
	domainMax := [3]float64{1, 1, 1}

	size := 0
	for size == 0 {
		text, ok, err := lr.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &FormatError{
				Format: FormatCube,
				Reason: "missing LUT_3D_SIZE",
				Err:    ErrUnsupportedSize,
			}
		}
		text = strings.TrimSpace(text)

		if rest, found := strings.CutPrefix(text, "LUT_3D_SIZE"); found && isSpaceLead(rest) {
			n, err := strconv.ParseInt(strings.TrimSpace(rest), 0, 0)
			if err != nil {
				return nil, lr.invalid("malformed LUT_3D_SIZE %q", strings.TrimSpace(rest))
			}
			if n < 1 || n > MaxSize {
				return nil, lr.tooLarge(int(n))
			}
			size = int(n)
		} else if strings.HasPrefix(text, "DOMAIN_") {
			if err := lr.parseDomain(text, &domainMin, &domainMax); err != nil {
				return nil, err
			}
		}
	}

	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	for k := range size {
		for j := range size {
			for i := range size {
				var text string
				for {
					text, err = lr.nextData()
					if err != nil {
						return nil, err
					}
					text = strings.TrimSpace(text)
					if !strings.HasPrefix(text, "DOMAIN_") {
						break
					}
					if err := lr.parseDomain(text, &domainMin, &domainMax); err != nil {
						return nil, err
					}
				}

				v, err := lr.parseTriple(text)
				if err != nil {
					return nil, err
				}
				g.Set(k, j, i, Color{
					R: v[0] * (domainMax[0] - domainMin[0]),
					G: v[1] * (domainMax[1] - domainMin[1]),
					B: v[2] * (domainMax[2] - domainMin[2]),
				})
			}
		}
	}
	return g, nil
}

// parseDomain handles a DOMAIN_MIN or DOMAIN_MAX line.
func (lr *lineReader) parseDomain(text string, domainMin, domainMax *[3]float64) error {
	var dst *[3]float64
	var rest string
	if r, ok := strings.CutPrefix(text, "DOMAIN_MIN"); ok && isSpaceLead(r) {
		dst, rest = domainMin, r
	} else if r, ok := strings.CutPrefix(text, "DOMAIN_MAX"); ok && isSpaceLead(r) {
		dst, rest = domainMax, r
	} else {
		return lr.invalid("unknown directive %q", strings.Fields(text)[0])
	}
	v, err := lr.parseTriple(rest)
	if err != nil {
		return err
	}
	*dst = v
	return nil
}

func isSpaceLead(s string) bool {
	return s != "" && (s[0] == ' ' || s[0] == '\t')
}
