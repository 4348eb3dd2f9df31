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
)

// Error kinds.  Errors returned by this package can be tested against these
// values using [errors.Is].
var (
	// ErrIO indicates that a table file could not be opened or read.
	ErrIO = errors.New("lut3d: I/O error")

	// ErrUnrecognizedExtension indicates that a file name extension does
	// not correspond to any supported table format.
	ErrUnrecognizedExtension = errors.New("lut3d: unrecognized file extension")

	// ErrInvalidFormat indicates malformed table data.
	ErrInvalidFormat = errors.New("lut3d: invalid table data")

	// ErrUnsupportedSize indicates a table which is empty or has more than
	// MaxSize points per axis.
	ErrUnsupportedSize = errors.New("lut3d: unsupported table size")

	// ErrUnexpectedEOF indicates that table data ended before all grid
	// points were read.
	ErrUnexpectedEOF = errors.New("lut3d: unexpected end of table data")

	// ErrUnsupportedPixelFormat indicates an unusable pixel format descriptor.
	ErrUnsupportedPixelFormat = errors.New("lut3d: unsupported pixel format")

	// ErrInvalidFrame indicates a pixel buffer whose geometry does not match
	// its dimensions or the configured pixel format.
	ErrInvalidFrame = errors.New("lut3d: invalid frame")

	// ErrNotConfigured is returned by Filter.Apply before Filter.Configure
	// has been called.
	ErrNotConfigured = errors.New("lut3d: filter has no pixel format")
)

// FormatError describes a problem found while parsing a table file.
type FormatError struct {
	Format Format
	Line   int // 1-based line number, 0 if not known
	Reason string

	// Err is one of ErrInvalidFormat, ErrUnsupportedSize or
	// ErrUnexpectedEOF.
	Err error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("lut3d: invalid %s file (line %d): %s", e.Format, e.Line, e.Reason)
	}
	return fmt.Sprintf("lut3d: invalid %s file: %s", e.Format, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
