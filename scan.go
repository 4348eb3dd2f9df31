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
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// lineReader reads a table file line by line and keeps track of line
// numbers for error messages.
type lineReader struct {
	s      *bufio.Scanner
	format Format
	line   int

	pending bool // the current line is returned again by the next call
	text    string
}

func newLineReader(r io.Reader, format Format) *lineReader {
	return &lineReader{
		s:      bufio.NewScanner(r),
		format: format,
	}
}

// next returns the next line.  At the end of the input, ok is false and err
// is either nil or an I/O error.
func (lr *lineReader) next() (text string, ok bool, err error) {
	if lr.pending {
		lr.pending = false
		return lr.text, true, nil
	}
	if !lr.s.Scan() {
		if err := lr.s.Err(); err != nil {
			return "", false, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return "", false, nil
	}
	lr.line++
	lr.text = lr.s.Text()
	return lr.text, true, nil
}

// unread arranges for the most recent line to be returned again.
func (lr *lineReader) unread() {
	lr.pending = true
}

// nextData returns the next line which is not skippable.
// Running out of input is reported as ErrUnexpectedEOF.
func (lr *lineReader) nextData() (string, error) {
	for {
		text, ok, err := lr.next()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", lr.eof()
		}
		if !isSkippable(text) {
			return text, nil
		}
	}
}

func (lr *lineReader) eof() error {
	return &FormatError{
		Format: lr.format,
		Reason: "file ends before all grid points are defined",
		Err:    ErrUnexpectedEOF,
	}
}

func (lr *lineReader) invalid(format string, args ...any) error {
	return &FormatError{
		Format: lr.format,
		Line:   lr.line,
		Reason: fmt.Sprintf(format, args...),
		Err:    ErrInvalidFormat,
	}
}

func (lr *lineReader) tooLarge(size int) error {
	return &FormatError{
		Format: lr.format,
		Line:   lr.line,
		Reason: fmt.Sprintf("grid size %d is not in [1, %d]", size, MaxSize),
		Err:    ErrUnsupportedSize,
	}
}

// parseTriple parses three whitespace-separated floating point numbers.
func (lr *lineReader) parseTriple(text string) ([3]float64, error) {
	var res [3]float64
	fields := strings.Fields(text)
	if len(fields) < 3 {
		return res, lr.invalid("expected 3 numbers, found %d fields", len(fields))
	}
	for i := range res {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return res, lr.invalid("malformed number %q", fields[i])
		}
		res[i] = x
	}
	return res, nil
}

// isSkippable reports whether a line is blank or a comment.
func isSkippable(text string) bool {
	text = strings.TrimLeft(text, " \t\r\n\v\f")
	return text == "" || text[0] == '#'
}
