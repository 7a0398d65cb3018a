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

import (
	"math/big"

	"github.com/coryzibell/based/dictionary"
)

// EncodeBaseConversion treats data as a big-endian nonnegative integer
// and emits its digits in base dict.Base(), most significant first,
// preserving leading zero bytes as repeated encode_digit(0) runs.
func EncodeBaseConversion(data []byte, dict *dictionary.Dictionary) []rune {
	if len(data) == 0 {
		return nil
	}

	leadingZeros := 0
	for leadingZeros < len(data) && data[leadingZeros] == 0 {
		leadingZeros++
	}

	zeroDigit, _ := dict.EncodeDigit(0)
	if leadingZeros == len(data) {
		out := make([]rune, len(data))
		for i := range out {
			out[i] = zeroDigit
		}
		return out
	}

	base := big.NewInt(int64(dict.Base()))
	num := new(big.Int).SetBytes(data[leadingZeros:])

	var digits []rune
	rem := new(big.Int)
	for num.Sign() != 0 {
		num.DivMod(num, base, rem)
		c, _ := dict.EncodeDigit(int(rem.Int64()))
		digits = append(digits, c)
	}
	for i := 0; i < leadingZeros; i++ {
		digits = append(digits, zeroDigit)
	}

	// digits were appended least-significant first; reverse in place.
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}
	return digits
}

// DecodeBaseConversion inverts EncodeBaseConversion: a run of
// encode_digit(0) scalars at the head of the text that precedes any
// nonzero-valued digit becomes that many leading zero bytes; the
// remaining scalars are parsed as a base-B integer and serialized
// big-endian.
func DecodeBaseConversion(text []rune, dict *dictionary.Dictionary) ([]byte, error) {
	if len(text) == 0 {
		return nil, ErrEmptyInput
	}

	base := big.NewInt(int64(dict.Base()))
	num := new(big.Int)
	leadingZeros := 0

	for _, c := range text {
		digit, ok := dict.DecodeDigit(c)
		if !ok {
			return nil, &InvalidCharacterError{CodePoint: c}
		}
		if num.Sign() == 0 && digit == 0 {
			leadingZeros++
			continue
		}
		num.Mul(num, base)
		num.Add(num, big.NewInt(int64(digit)))
	}

	if num.Sign() == 0 {
		return make([]byte, leadingZeros), nil
	}

	out := make([]byte, leadingZeros, leadingZeros+len(num.Bytes()))
	out = append(out, num.Bytes()...)
	return out, nil
}
