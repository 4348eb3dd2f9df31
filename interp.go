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
	"fmt"
	"strings"
)

// Interpolation selects how a [Grid] is evaluated between grid points.
type Interpolation int

// Supported interpolation modes.  The zero value is Tetrahedral.
const (
	// Tetrahedral splits each grid cell into six tetrahedra and blends the
	// four corners of the tetrahedron containing the input.
	Tetrahedral Interpolation = iota

	// Trilinear blends the eight corners of the enclosing grid cell.
	Trilinear

	// Nearest uses the value of the closest grid point.
	Nearest
)

func (m Interpolation) String() string {
	switch m {
	case Tetrahedral:
		return "tetrahedral"
	case Trilinear:
		return "trilinear"
	case Nearest:
		return "nearest"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(m))
	}
}

// ParseInterpolation converts an interpolation name ("nearest", "trilinear"
// or "tetrahedral") to an Interpolation value.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(name) {
	case "tetrahedral":
		return Tetrahedral, nil
	case "trilinear":
		return Trilinear, nil
	case "nearest":
		return Nearest, nil
	}
	return 0, fmt.Errorf("lut3d: unknown interpolation %q", name)
}

// sampler evaluates a grid at a point in grid index space.
type sampler func(g *Grid, r, gg, b float64) Color

func (m Interpolation) sampler() (sampler, error) {
	switch m {
	case Tetrahedral:
		return (*Grid).tetrahedral, nil
	case Trilinear:
		return (*Grid).trilinear, nil
	case Nearest:
		return (*Grid).nearest, nil
	default:
		return nil, fmt.Errorf("lut3d: unknown interpolation %d", int(m))
	}
}

// Interpolate evaluates the grid at the point (r, gg, b) in grid index
// space.  Coordinates are clamped to [0, Size()-1].
// It panics if m is not a valid Interpolation.
func (g *Grid) Interpolate(m Interpolation, r, gg, b float64) Color {
	interp, err := m.sampler()
	if err != nil {
		panic(err)
	}
	top := float64(g.size - 1)
	return interp(g, clamp(r, 0, top), clamp(gg, 0, top), clamp(b, 0, top))
}

// nearest returns the grid point closest to (r, gg, b).
func (g *Grid) nearest(r, gg, b float64) Color {
	return g.At(int(r+0.5), int(gg+0.5), int(b+0.5))
}

// cell holds the eight corners of the grid cell containing a point, and the
// position of the point inside the cell.
type cell struct {
	c000, c001, c010, c011 Color
	c100, c101, c110, c111 Color

	fr, fg, fb float64
}

// enclosingCell finds the corners of the grid cell containing (r, gg, b).
// At the top edge of the grid the upper neighbour coincides with the grid
// point itself; the fractional part is zero there.
func (g *Grid) enclosingCell(r, gg, b float64) cell {
	ri, gi, bi := int(r), int(gg), int(b)
	rn, gn, bn := g.next(ri), g.next(gi), g.next(bi)

	return cell{
		c000: g.At(ri, gi, bi),
		c001: g.At(ri, gi, bn),
		c010: g.At(ri, gn, bi),
		c011: g.At(ri, gn, bn),
		c100: g.At(rn, gi, bi),
		c101: g.At(rn, gi, bn),
		c110: g.At(rn, gn, bi),
		c111: g.At(rn, gn, bn),

		fr: r - float64(ri),
		fg: gg - float64(gi),
		fb: b - float64(bi),
	}
}

func (g *Grid) next(i int) int {
	return min(i+1, g.size-1)
}

// trilinear blends the corners of the enclosing cell, first along the red
// axis, then along green, then along blue.
func (g *Grid) trilinear(r, gg, b float64) Color {
	if g.size == 1 {
		return g.cells[0]
	}
	c := g.enclosingCell(r, gg, b)

	c00 := lerp(c.c000, c.c100, c.fr)
	c10 := lerp(c.c010, c.c110, c.fr)
	c01 := lerp(c.c001, c.c101, c.fr)
	c11 := lerp(c.c011, c.c111, c.fr)
	c0 := lerp(c00, c10, c.fg)
	c1 := lerp(c01, c11, c.fg)
	return lerp(c0, c1, c.fb)
}

// tetrahedral performs tetrahedral interpolation, following the partition
// of the unit cube used in the Truelight Software Library.
func (g *Grid) tetrahedral(r, gg, b float64) Color {
	if g.size == 1 {
		return g.cells[0]
	}
	c := g.enclosingCell(r, gg, b)
	fr, fg, fb := c.fr, c.fg, c.fb

	if fr > fg {
		if fg > fb {
			// fr > fg > fb
			return blend4(c.c000, 1-fr, c.c100, fr-fg, c.c110, fg-fb, c.c111, fb)
		} else if fr > fb {
			// fr > fb >= fg
			return blend4(c.c000, 1-fr, c.c100, fr-fb, c.c101, fb-fg, c.c111, fg)
		} else {
			// fb >= fr > fg
			return blend4(c.c000, 1-fb, c.c001, fb-fr, c.c101, fr-fg, c.c111, fg)
		}
	} else {
		if fb > fg {
			// fb > fg >= fr
			return blend4(c.c000, 1-fb, c.c001, fb-fg, c.c011, fg-fr, c.c111, fr)
		} else if fb > fr {
			// fg >= fb > fr
			return blend4(c.c000, 1-fg, c.c010, fg-fb, c.c011, fb-fr, c.c111, fr)
		} else {
			// fg >= fr >= fb
			return blend4(c.c000, 1-fg, c.c010, fg-fr, c.c110, fr-fb, c.c111, fb)
		}
	}
}

func lerp(v0, v1 Color, f float64) Color {
	return Color{
		R: v0.R + (v1.R-v0.R)*f,
		G: v0.G + (v1.G-v0.G)*f,
		B: v0.B + (v1.B-v0.B)*f,
	}
}

// blend4 returns the weighted sum of four samples.
func blend4(a Color, wa float64, b Color, wb float64, c Color, wc float64, d Color, wd float64) Color {
	return Color{
		R: wa*a.R + wb*b.R + wc*c.R + wd*d.R,
		G: wa*a.G + wb*b.G + wc*c.G + wd*d.G,
		B: wa*a.B + wb*b.B + wc*c.B + wd*d.B,
	}
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
