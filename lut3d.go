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

// Package lut3d applies three-dimensional colour lookup tables to packed RGB
// pixel buffers.
//
// A lookup table is a cubic [Grid] of colour samples.  Grids are read from
// the text formats used by colour grading tools (.cube, .dat, .3dl and .m3d
// files), or synthesised as an identity table when no file is given.  The
// grid is evaluated at arbitrary colours using nearest-neighbour, trilinear
// or tetrahedral interpolation.
//
// # Loading Tables
//
// Use [Load] to read a table from a file, selecting the parser by the file
// name extension, or [Decode] to read from an [io.Reader]:
//
//	g, err := lut3d.Load("grade.cube")
//	if err != nil {
//	    // handle error
//	}
//	c := g.Interpolate(lut3d.Tetrahedral, 1.5, 7.25, 3)
//
// # Filtering Images
//
// A [Filter] combines a table, an interpolation mode and a pixel format:
//
//	f, err := lut3d.New(&lut3d.Options{File: "grade.cube"})
//	if err != nil {
//	    // handle error
//	}
//	err = f.Configure(lut3d.RGBA)
//	out, err := f.Apply(frame)
package lut3d

import "fmt"

// MaxSize is the largest supported number of grid points per axis.
const MaxSize = 36

// DefaultSize is the size of the identity grid used when no table file is
// given.
const DefaultSize = 32

// Color is a single RGB sample.
//
// Components are nominally in [0, 1], but values outside this range are
// kept as they are.  Clipping only happens when a colour is written to a
// pixel buffer.
type Color struct {
	R, G, B float64
}

func (c Color) String() string {
	return fmt.Sprintf("%g %g %g", c.R, c.G, c.B)
}

// Grid is a cubic table of colour samples.
//
// The sample at index (r, g, b) is the output colour for the input colour
// (r, g, b)/(Size()-1).  A Grid must not be modified once it is used by a
// [Filter]; after that it is safe for concurrent reads.
type Grid struct {
	size  int
	cells []Color
}

// NewGrid allocates a grid with the given number of points per axis.
// All samples are initially black.
func NewGrid(size int) (*Grid, error) {
	if size < 1 || size > MaxSize {
		return nil, fmt.Errorf("%w: %d points per axis", ErrUnsupportedSize, size)
	}
	return &Grid{
		size:  size,
		cells: make([]Color, size*size*size),
	}, nil
}

// Identity returns a grid which maps every colour to itself.
func Identity(size int) (*Grid, error) {
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	c := 1.0
	if size > 1 {
		c = 1 / float64(size-1)
	}
	for k := range size {
		for j := range size {
			for i := range size {
				g.Set(k, j, i, Color{
					R: float64(k) * c,
					G: float64(j) * c,
					B: float64(i) * c,
				})
			}
		}
	}
	return g, nil
}

// Size returns the number of grid points per axis.
func (g *Grid) Size() int {
	return g.size
}

// At returns the sample stored at the given axis indices.
// It panics if an index is outside [0, Size()).
func (g *Grid) At(r, gi, b int) Color {
	return g.cells[g.offset(r, gi, b)]
}

// Set stores a sample at the given axis indices.
// It panics if an index is outside [0, Size()).
func (g *Grid) Set(r, gi, b int, c Color) {
	g.cells[g.offset(r, gi, b)] = c
}

func (g *Grid) offset(r, gi, b int) int {
	n := g.size
	if uint(r) >= uint(n) || uint(gi) >= uint(n) || uint(b) >= uint(n) {
		panic(fmt.Sprintf("lut3d: grid index (%d, %d, %d) out of range [0, %d)", r, gi, b, n))
	}
	return (r*n+gi)*n + b
}
