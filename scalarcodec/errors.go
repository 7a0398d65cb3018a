// Copyright (C) 2024 Based Contributors
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package scalarcodec implements the three scalar encoding policies that
// act as the semantic reference for every SIMD path: BaseConversion,
// Chunked, and ByteRange.
package scalarcodec

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by Decode when the encoded text is empty.
var ErrEmptyInput = errors.New("scalarcodec: cannot decode empty input")

// InvalidCharacterError reports a code point that does not belong to the
// Dictionary (and is not its padding scalar).
type InvalidCharacterError struct {
	CodePoint rune
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("scalarcodec: invalid character in input: %q (U+%04X)", e.CodePoint, e.CodePoint)
}

// InvalidPaddingError reports malformed padding: interior padding
// followed by non-padding data, or a padding run whose length is
// outside {0, required(len(data))}.
type InvalidPaddingError struct {
	Reason string
}

func (e *InvalidPaddingError) Error() string {
	return fmt.Sprintf("scalarcodec: invalid padding: %s", e.Reason)
}
