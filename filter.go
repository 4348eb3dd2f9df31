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
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Options configures a [Filter].
type Options struct {
	// File is the name of the table file.  If File is empty, an identity
	// table of size DefaultSize is used.
	File string

	// Interp selects the interpolation mode.
	Interp Interpolation

	// Workers is the number of goroutines used to map the rows of a frame.
	// Values less than 2 map all rows on the calling goroutine.
	Workers int
}

// Set sets an option by name.  The recognised keys are "file", "interp"
// and "workers".
func (o *Options) Set(key, value string) error {
	switch key {
	case "file":
		o.File = value
	case "interp":
		m, err := ParseInterpolation(value)
		if err != nil {
			return err
		}
		o.Interp = m
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("lut3d: invalid number of workers %q", value)
		}
		o.Workers = n
	default:
		return fmt.Errorf("lut3d: unknown option %q", key)
	}
	return nil
}

// Filter maps the colours of pixel buffers through a 3D lookup table.
//
// A Filter is created with [New] or [NewWithGrid], and then bound to a pixel
// format using [Filter.Configure].  Once configured, Apply and ApplyTo may be
// called concurrently from several goroutines, as long as the frames do
// not overlap.
type Filter struct {
	grid    *Grid
	interp  Interpolation
	sample  sampler
	workers int

	format PixelFormat
	mapRow func(dst, src []byte, copyFourth bool)
}

// New creates a filter, reading the table given in opt.File.
// If opt is nil, the default options are used.
func New(opt *Options) (*Filter, error) {
	if opt == nil {
		opt = &Options{}
	}
	g, err := Load(opt.File)
	if err != nil {
		return nil, err
	}
	return NewWithGrid(g, opt)
}

// NewWithGrid creates a filter for an existing table.  The File field of
// opt is ignored.  The grid must not be modified while the filter is in use.
func NewWithGrid(g *Grid, opt *Options) (*Filter, error) {
	if opt == nil {
		opt = &Options{}
	}
	sample, err := opt.Interp.sampler()
	if err != nil {
		return nil, err
	}
	return &Filter{
		grid:    g,
		interp:  opt.Interp,
		sample:  sample,
		workers: opt.Workers,
	}, nil
}

// Grid returns the lookup table used by the filter.
func (f *Filter) Grid() *Grid {
	return f.grid
}

// Interpolation returns the interpolation mode used by the filter.
func (f *Filter) Interpolation() Interpolation {
	return f.interp
}

// Configure binds the filter to a pixel format.  All frames passed to
// Apply and ApplyTo afterwards must use this format.
func (f *Filter) Configure(pf PixelFormat) error {
	if err := pf.check(); err != nil {
		return err
	}
	switch {
	case pf.Depth == 8:
		f.mapRow = newRowMapper(pf, f.grid, f.sample, codec8)
	case pf.BigEndian:
		f.mapRow = newRowMapper(pf, f.grid, f.sample, codec16BE)
	default:
		f.mapRow = newRowMapper(pf, f.grid, f.sample, codec16LE)
	}
	f.format = pf
	return nil
}

// Format returns the pixel format set by Configure.
func (f *Filter) Format() PixelFormat {
	return f.format
}

// Apply maps the colours of a frame.  Unless in.ReadOnly is set, the frame
// is modified in place and returned.  Otherwise the result is written to a
// newly allocated frame of the same shape, and the fourth component of
// four-component formats is copied from the input.
func (f *Filter) Apply(in *Frame) (*Frame, error) {
	out := in
	if in.ReadOnly {
		out = &Frame{
			Pix:    make([]byte, len(in.Pix)),
			Stride: in.Stride,
			Width:  in.Width,
			Height: in.Height,
		}
	}
	if err := f.ApplyTo(out, in); err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyTo maps the colours of src and writes the result to dst.  The two
// frames must have the same dimensions.  dst and src may be the same frame;
// otherwise their buffers must not overlap.
func (f *Filter) ApplyTo(dst, src *Frame) error {
	if f.mapRow == nil {
		return ErrNotConfigured
	}
	if err := src.check(f.format); err != nil {
		return err
	}
	if err := dst.check(f.format); err != nil {
		return err
	}
	if dst.Width != src.Width || dst.Height != src.Height {
		return fmt.Errorf("%w: output is %dx%d, input is %dx%d",
			ErrInvalidFrame, dst.Width, dst.Height, src.Width, src.Height)
	}
	if src.Width == 0 || src.Height == 0 {
		return nil
	}

	copyFourth := f.format.Step == 4 && &dst.Pix[0] != &src.Pix[0]

	h := src.Height
	workers := min(f.workers, h)
	if workers <= 1 {
		f.mapRows(dst, src, 0, h, copyFourth)
		return nil
	}

	chunkSize := (h + workers - 1) / workers
	var eg errgroup.Group
	for start := 0; start < h; start += chunkSize {
		end := min(start+chunkSize, h)
		eg.Go(func() error {
			f.mapRows(dst, src, start, end, copyFourth)
			return nil
		})
	}
	return eg.Wait()
}

func (f *Filter) mapRows(dst, src *Frame, start, end int, copyFourth bool) {
	for y := start; y < end; y++ {
		f.mapRow(dst.row(y, f.format), src.row(y, f.format), copyFourth)
	}
}

// sampleCodec reads and writes pixel samples of one width and byte order.
// Sample positions are counted in samples, not bytes.
type sampleCodec[T uint8 | uint16] struct {
	get func(buf []byte, i int) T
	put func(buf []byte, i int, v T)
}

var (
	codec8 = sampleCodec[uint8]{
		get: func(buf []byte, i int) uint8 { return buf[i] },
		put: func(buf []byte, i int, v uint8) { buf[i] = v },
	}
	codec16LE = sampleCodec[uint16]{
		get: func(buf []byte, i int) uint16 { return binary.LittleEndian.Uint16(buf[2*i:]) },
		put: func(buf []byte, i int, v uint16) { binary.LittleEndian.PutUint16(buf[2*i:], v) },
	}
	codec16BE = sampleCodec[uint16]{
		get: func(buf []byte, i int) uint16 { return binary.BigEndian.Uint16(buf[2*i:]) },
		put: func(buf []byte, i int, v uint16) { binary.BigEndian.PutUint16(buf[2*i:], v) },
	}
)

// newRowMapper returns a function which maps one row of pixels.  The
// largest sample value is the maximum of T.
func newRowMapper[T uint8 | uint16](pf PixelFormat, g *Grid, sample sampler, codec sampleCodec[T]) func(dst, src []byte, copyFourth bool) {
	var zero T
	maxVal := float64(^zero)
	scale := (1 / maxVal) * float64(g.size-1)

	r, gg, b, a, step := pf.R, pf.G, pf.B, pf.A, pf.Step
	bps := pf.BytesPerSample()

	return func(dst, src []byte, copyFourth bool) {
		n := len(src) / bps
		for x := 0; x+step <= n; x += step {
			c := sample(g,
				float64(codec.get(src, x+r))*scale,
				float64(codec.get(src, x+gg))*scale,
				float64(codec.get(src, x+b))*scale)
			if copyFourth {
				codec.put(dst, x+a, codec.get(src, x+a))
			}
			codec.put(dst, x+r, clip[T](c.R, maxVal))
			codec.put(dst, x+gg, clip[T](c.G, maxVal))
			codec.put(dst, x+b, clip[T](c.B, maxVal))
		}
	}
}

// clip converts a colour component in [0, 1] to a sample value, rounding to
// the nearest integer.  Values outside [0, 1] (and NaN) are clipped.
func clip[T uint8 | uint16](v, maxVal float64) T {
	x := v * maxVal
	if !(x > 0) {
		return 0
	}
	if x >= maxVal {
		return T(maxVal)
	}
	return T(x + 0.5)
}
