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

// BitsPerSymbol returns log2(base) when base is a power of two, or 0
// otherwise. Chunked dictionaries always report a nonzero value here.
// classify computes the same value with its own unexported
// bitsPerSymbol.
func BitsPerSymbol(base int) int {
	if base <= 0 || base&(base-1) != 0 {
		return 0
	}
	bits := 0
	for base > 1 {
		base >>= 1
		bits++
	}
	return bits
}

// chunkedBlockChars is the number of output symbols per "whole bytes"
// block for a given bit width: lcm(8,k)/k. Padding, when configured,
// pads the output up to a multiple of this count.
func chunkedBlockChars(k int) int {
	return lcm(8, k) / k
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}

// EncodeChunked packs data into fixed k = log2(base) bit groups, most
// significant bit of byte 0 first, and translates each group via
// dict.EncodeDigit. The final group's low bits are zero-extended. If
// dict has padding configured, padding scalars are appended until the
// output length is a multiple of chunkedBlockChars(k).
func EncodeChunked(data []byte, dict *dictionary.Dictionary) []rune {
	k := BitsPerSymbol(dict.Base())
	if k == 0 {
		return nil
	}

	var out []rune
	var bitBuf uint32
	bitsInBuf := 0
	mask := uint32(1)<<uint(k) - 1

	emit := func(digit int) {
		c, _ := dict.EncodeDigit(digit)
		out = append(out, c)
	}

	for _, b := range data {
		bitBuf = (bitBuf << 8) | uint32(b)
		bitsInBuf += 8
		for bitsInBuf >= k {
			bitsInBuf -= k
			emit(int((bitBuf >> uint(bitsInBuf)) & mask))
		}
	}
	if bitsInBuf > 0 {
		emit(int((bitBuf << uint(k-bitsInBuf)) & mask))
	}

	if pad, ok := dict.Padding(); ok {
		blockLen := chunkedBlockChars(k)
		for len(out)%blockLen != 0 {
			out = append(out, pad)
		}
	}
	return out
}

// DecodeChunked inverts EncodeChunked.
//
// Padding handling: once the padding scalar is encountered, every
// remaining scalar must also be padding, or decoding fails with
// InvalidPaddingError — interior padding followed by data is rejected
// rather than silently truncating the input (see DESIGN.md). A trailing
// padding run is only valid if its length is exactly the number needed
// to bring the preceding data symbols up to a whole multiple of the
// policy's block-character count. Text with no padding at all is
// accepted whatever its length.
func DecodeChunked(text []rune, dict *dictionary.Dictionary) ([]byte, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}

	k := BitsPerSymbol(dict.Base())
	if k == 0 {
		return nil, &InvalidCharacterError{CodePoint: text[0]}
	}

	pad, hasPad := dict.Padding()

	dataLen := len(text)
	if hasPad {
		for i, c := range text {
			if c == pad {
				dataLen = i
				break
			}
		}
		for _, c := range text[dataLen:] {
			if c != pad {
				return nil, &InvalidPaddingError{Reason: "padding run followed by non-padding data"}
			}
		}
		padLen := len(text) - dataLen
		blockLen := chunkedBlockChars(k)
		required := (blockLen - dataLen%blockLen) % blockLen
		if padLen != 0 && padLen != required {
			return nil, &InvalidPaddingError{Reason: "padding length does not match the required block size"}
		}
	}

	data := text[:dataLen]
	out := make([]byte, 0, (dataLen*k)/8+1)
	var bitBuf uint32
	bitsInBuf := 0

	for _, c := range data {
		digit, ok := dict.DecodeDigit(c)
		if !ok {
			return nil, &InvalidCharacterError{CodePoint: c}
		}
		bitBuf = (bitBuf << uint(k)) | uint32(digit)
		bitsInBuf += k
		for bitsInBuf >= 8 {
			bitsInBuf -= 8
			out = append(out, byte((bitBuf>>uint(bitsInBuf))&0xFF))
		}
	}
	return out, nil
}
