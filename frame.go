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
	"image"
)

// Frame is a packed pixel buffer.
//
// Row y starts at byte offset y*Stride in Pix.  The layout of the pixels
// is given by the PixelFormat the Filter is configured with.
type Frame struct {
	Pix    []byte
	Stride int // bytes per row
	Width  int
	Height int

	// ReadOnly indicates that Pix is shared with other users and must not
	// be modified.  Filter.Apply writes such frames into a new buffer.
	ReadOnly bool
}

// NewFrame allocates a zeroed frame for the given pixel format, without
// padding between rows.
func NewFrame(pf PixelFormat, width, height int) *Frame {
	stride := width * pf.BytesPerPixel()
	return &Frame{
		Pix:    make([]byte, stride*height),
		Stride: stride,
		Width:  width,
		Height: height,
	}
}

// check verifies that the frame holds Width*Height pixels of the given
// format.
func (f *Frame) check(pf PixelFormat) error {
	if f.Width < 0 || f.Height < 0 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidFrame, f.Width, f.Height)
	}
	if f.Width == 0 || f.Height == 0 {
		return nil
	}
	rowBytes := f.Width * pf.BytesPerPixel()
	if f.Stride < rowBytes {
		return fmt.Errorf("%w: stride %d < %d bytes per row", ErrInvalidFrame, f.Stride, rowBytes)
	}
	need := (f.Height-1)*f.Stride + rowBytes
	if len(f.Pix) < need {
		return fmt.Errorf("%w: %d bytes < %d", ErrInvalidFrame, len(f.Pix), need)
	}
	return nil
}

// row returns the bytes of row y which hold pixel data.
func (f *Frame) row(y int, pf PixelFormat) []byte {
	start := y * f.Stride
	return f.Pix[start : start+f.Width*pf.BytesPerPixel()]
}

// FrameFromImage wraps the pixels of an image without copying.
// [*image.NRGBA] uses the RGBA pixel format and [*image.NRGBA64] uses
// RGBA64BE.  Other image types, including the premultiplied [*image.RGBA]
// and [*image.RGBA64], are not supported and ok is false.
func FrameFromImage(img image.Image) (f *Frame, pf PixelFormat, ok bool) {
	var pix []byte
	var stride int
	switch img := img.(type) {
	case *image.NRGBA:
		pix, stride, pf = img.Pix, img.Stride, RGBA
	case *image.NRGBA64:
		pix, stride, pf = img.Pix, img.Stride, RGBA64BE
	default:
		return nil, PixelFormat{}, false
	}
	b := img.Bounds()
	return &Frame{
		Pix:    pix,
		Stride: stride,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, pf, true
}
