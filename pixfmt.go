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

import "fmt"

// PixelFormat describes the layout of a packed RGB pixel buffer.
//
// Offsets and Step are counted in samples, not bytes: for 16-bit formats
// every sample occupies two bytes.
type PixelFormat struct {
	Name string

	// Depth is the number of bits per sample, either 8 or 16.
	Depth int

	// R, G and B give the position of each colour component within a pixel.
	R, G, B int

	// A gives the position of the fourth component (alpha or padding) in
	// four-component formats, and is -1 otherwise.
	A int

	// Step is the number of samples per pixel, 3 or 4.
	Step int

	// BigEndian selects the byte order of 16-bit samples.
	BigEndian bool
}

// Packed RGB pixel formats.  16-bit formats are little-endian unless their
// name ends in "be".
var (
	RGB24 = PixelFormat{Name: "rgb24", Depth: 8, R: 0, G: 1, B: 2, A: -1, Step: 3}
	BGR24 = PixelFormat{Name: "bgr24", Depth: 8, R: 2, G: 1, B: 0, A: -1, Step: 3}
	RGBA  = PixelFormat{Name: "rgba", Depth: 8, R: 0, G: 1, B: 2, A: 3, Step: 4}
	BGRA  = PixelFormat{Name: "bgra", Depth: 8, R: 2, G: 1, B: 0, A: 3, Step: 4}
	ARGB  = PixelFormat{Name: "argb", Depth: 8, R: 1, G: 2, B: 3, A: 0, Step: 4}
	ABGR  = PixelFormat{Name: "abgr", Depth: 8, R: 3, G: 2, B: 1, A: 0, Step: 4}
	XRGB  = PixelFormat{Name: "0rgb", Depth: 8, R: 1, G: 2, B: 3, A: 0, Step: 4}
	XBGR  = PixelFormat{Name: "0bgr", Depth: 8, R: 3, G: 2, B: 1, A: 0, Step: 4}
	RGBX  = PixelFormat{Name: "rgb0", Depth: 8, R: 0, G: 1, B: 2, A: 3, Step: 4}
	BGRX  = PixelFormat{Name: "bgr0", Depth: 8, R: 2, G: 1, B: 0, A: 3, Step: 4}

	RGB48  = PixelFormat{Name: "rgb48", Depth: 16, R: 0, G: 1, B: 2, A: -1, Step: 3}
	BGR48  = PixelFormat{Name: "bgr48", Depth: 16, R: 2, G: 1, B: 0, A: -1, Step: 3}
	RGBA64 = PixelFormat{Name: "rgba64", Depth: 16, R: 0, G: 1, B: 2, A: 3, Step: 4}
	BGRA64 = PixelFormat{Name: "bgra64", Depth: 16, R: 2, G: 1, B: 0, A: 3, Step: 4}

	RGB48BE  = PixelFormat{Name: "rgb48be", Depth: 16, R: 0, G: 1, B: 2, A: -1, Step: 3, BigEndian: true}
	RGBA64BE = PixelFormat{Name: "rgba64be", Depth: 16, R: 0, G: 1, B: 2, A: 3, Step: 4, BigEndian: true}
)

// PixelFormats lists the predefined pixel formats by name.
var PixelFormats = map[string]PixelFormat{}

func init() {
	for _, pf := range []PixelFormat{
		RGB24, BGR24, RGBA, BGRA, ARGB, ABGR, XRGB, XBGR, RGBX, BGRX,
		RGB48, BGR48, RGBA64, BGRA64, RGB48BE, RGBA64BE,
	} {
		PixelFormats[pf.Name] = pf
	}
}

// BytesPerSample returns the size of one colour sample in bytes.
func (pf PixelFormat) BytesPerSample() int {
	return pf.Depth / 8
}

// BytesPerPixel returns the size of one pixel in bytes.
func (pf PixelFormat) BytesPerPixel() int {
	return pf.Step * pf.BytesPerSample()
}

// MaxValue returns the largest sample value, 2^Depth - 1.
func (pf PixelFormat) MaxValue() int {
	return 1<<pf.Depth - 1
}

func (pf PixelFormat) String() string {
	if pf.Name != "" {
		return pf.Name
	}
	return fmt.Sprintf("%d-bit step %d (r=%d g=%d b=%d a=%d)",
		pf.Depth, pf.Step, pf.R, pf.G, pf.B, pf.A)
}

// check verifies that the descriptor can be used by a Filter.
func (pf PixelFormat) check() error {
	if pf.Depth != 8 && pf.Depth != 16 {
		return fmt.Errorf("%w: %s: depth %d", ErrUnsupportedPixelFormat, pf, pf.Depth)
	}
	if pf.Step != 3 && pf.Step != 4 {
		return fmt.Errorf("%w: %s: step %d", ErrUnsupportedPixelFormat, pf, pf.Step)
	}

	var used [4]bool
	offsets := []int{pf.R, pf.G, pf.B}
	if pf.A >= 0 {
		offsets = append(offsets, pf.A)
	} else if pf.Step == 4 {
		return fmt.Errorf("%w: %s: missing fourth component", ErrUnsupportedPixelFormat, pf)
	}
	for _, o := range offsets {
		if o < 0 || o >= pf.Step || used[o] {
			return fmt.Errorf("%w: %s: bad component offset %d", ErrUnsupportedPixelFormat, pf, o)
		}
		used[o] = true
	}
	return nil
}
