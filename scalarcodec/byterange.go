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

package scalarcodec

import "github.com/coryzibell/based/dictionary"

// EncodeByteRange maps each byte b of data to dict.EncodeDigit(int(b)),
// i.e. rangeStart + b. The output has exactly len(data) scalars.
func EncodeByteRange(data []byte, dict *dictionary.Dictionary) []rune {
	out := make([]rune, len(data))
	for i, b := range data {
		c, ok := dict.EncodeDigit(int(b))
		if !ok {
			// Base() is always 256 for ByteRange dictionaries, so
			// EncodeDigit never fails here; this branch exists only to
			// document the invariant rather than to be reachable.
			panic("scalarcodec: ByteRange dictionary rejected a valid byte value")
		}
		out[i] = c
	}
	return out
}

// DecodeByteRange inverts EncodeByteRange, rejecting any scalar outside
// [rangeStart, rangeStart+256).
func DecodeByteRange(text []rune, dict *dictionary.Dictionary) ([]byte, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}
	out := make([]byte, len(text))
	for i, c := range text {
		digit, ok := dict.DecodeDigit(c)
		if !ok {
			return nil, &InvalidCharacterError{CodePoint: c}
		}
		out[i] = byte(digit)
	}
	return out, nil
}
