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
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies one of the supported table file formats.
type Format int

// Supported table file formats.
const (
	FormatCube Format = iota + 1 // Iridas .cube
	FormatDAT                    // DaVinci .dat
	Format3DL                    // Autodesk .3dl
	FormatM3D                    // Pandora .m3d
)

func (f Format) String() string {
	switch f {
	case FormatCube:
		return "CUBE"
	case FormatDAT:
		return "DAT"
	case Format3DL:
		return "3DL"
	case FormatM3D:
		return "M3D"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Extensions maps lower-case file name extensions to table formats.
var Extensions = map[string]Format{
	".cube": FormatCube,
	".dat":  FormatDAT,
	".3dl":  Format3DL,
	".m3d":  FormatM3D,
}

// FormatFromPath selects a table format using the extension of a file name.
// The comparison is case-insensitive.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnrecognizedExtension, path)
	}
	f, ok := Extensions[strings.ToLower(ext)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedExtension, ext)
	}
	return f, nil
}

// Decode reads a table in the given format.
func Decode(r io.Reader, format Format) (*Grid, error) {
	switch format {
	case FormatCube:
		return decodeCube(r)
	case FormatDAT:
		return decodeDAT(r)
	case Format3DL:
		return decode3DL(r)
	case FormatM3D:
		return decodeM3D(r)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnrecognizedExtension, format)
	}
}

// Load reads a table from a file.  The file format is determined by the
// file name extension.  If path is empty, an identity grid of size
// DefaultSize is returned.
//
// The whole table is read before Load returns; no partially filled grid is
// ever returned.
func Load(path string) (*Grid, error) {
	if path == "" {
		return Identity(DefaultSize)
	}

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	defer fd.Close()

	g, err := Decode(fd, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}
