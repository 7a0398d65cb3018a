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

// Encode dispatches to the scalar reference encoder matching dict's
// policy. Every SIMD codec in this module must be bit-for-bit
// equivalent to this function for the same (data, dict).
func Encode(data []byte, dict *dictionary.Dictionary) []rune {
	switch dict.Policy() {
	case dictionary.BaseConversion:
		return EncodeBaseConversion(data, dict)
	case dictionary.Chunked:
		return EncodeChunked(data, dict)
	case dictionary.ByteRange:
		return EncodeByteRange(data, dict)
	default:
		panic("scalarcodec: unknown policy")
	}
}

// Decode dispatches to the scalar reference decoder matching dict's
// policy.
func Decode(text []rune, dict *dictionary.Dictionary) ([]byte, error) {
	switch dict.Policy() {
	case dictionary.BaseConversion:
		return DecodeBaseConversion(text, dict)
	case dictionary.Chunked:
		return DecodeChunked(text, dict)
	case dictionary.ByteRange:
		return DecodeByteRange(text, dict)
	default:
		panic("scalarcodec: unknown policy")
	}
}
