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

package based

import (
	"github.com/coryzibell/based/classify"
	"github.com/coryzibell/based/codec"
	"github.com/coryzibell/based/dictionary"
	"github.com/coryzibell/based/internal/simd"
	"github.com/coryzibell/based/scalarcodec"
)

// dispatchEncode implements the eight-step decision tree of spec.md
// §4.7. The bit-packing kernels in steps 3-7 are all specific to the
// Chunked policy's semantics (spec.md §9: policy is part of a
// Dictionary's identity, never a hint), so any non-Chunked Dictionary
// skips straight to the scalar reference encoder.
func dispatchEncode(data []byte, dict *dictionary.Dictionary) []rune {
	if special := codec.Match(dict); special != nil {
		return special.Encode(data)
	}

	if dict.Policy() != dictionary.Chunked {
		return scalarcodec.Encode(data, dict)
	}

	meta := classify.Classify(dict)
	k := meta.BitsPerSymbol
	if k != 4 && k != 5 && k != 6 && k != 8 {
		return scalarcodec.Encode(data, dict)
	}

	switch {
	case meta.Strategy.Kind == classify.Sequential && meta.AllASCII:
		return encodeBlocked(data, dict, k, func(indices []int) []rune {
			return simd.EncodeSequential(indices, meta.Strategy.Start)
		})

	case meta.Strategy.Kind == classify.GappedSequential:
		return encodeBlocked(data, dict, k, func(indices []int) []rune {
			return simd.EncodeGapped(indices, meta.Strategy)
		})

	case meta.Strategy.Kind == classify.Ranged && len(meta.ContiguousRanges) <= 5:
		return encodeBlocked(data, dict, k, func(indices []int) []rune {
			return simd.EncodeRangeReduced(indices, meta.Strategy.Info)
		})

	case meta.LutClass == classify.LutSmallDirect && meta.AllASCII && meta.Strategy.Kind == classify.Arbitrary:
		table := smallDirectTable(dict)
		return encodeBlocked(data, dict, k, func(indices []int) []rune {
			return simd.EncodeSmallDirect(indices, table)
		})

	case meta.LutClass == classify.LutLargePlatformDependent && meta.AllASCII:
		table := largeLutTable(dict)
		return encodeBlocked(data, dict, k, func(indices []int) []rune {
			return simd.EncodeLargeLut(indices, table)
		})

	default:
		return scalarcodec.Encode(data, dict)
	}
}

// encodeBlocked runs a translation kernel over every full StrideBytes(k)
// block of data and appends the scalar tail for the remainder, spec.md
// §4.8's Remainder Glue. Padding, when configured, is only ever applied
// by the scalar tail.
func encodeBlocked(data []byte, dict *dictionary.Dictionary, k int, translate func([]int) []rune) []rune {
	stride := simd.StrideBytes(k)
	full := len(data) / stride
	blockLen := full * stride

	out := make([]rune, 0, (len(data)*8)/k+4)
	for i := 0; i < blockLen; i += stride {
		indices := simd.PackBlock(k, data[i:i+stride])
		out = append(out, translate(indices)...)
	}
	out = append(out, scalarcodec.EncodeChunked(data[blockLen:], dict)...)
	return out
}

// dispatchDecode mirrors dispatchEncode. Sequential and SmallDirect are
// the only strategies with a real vectorizable inverse (spec.md §4.5);
// every other strategy decodes via the Dictionary's lookup table, which
// spec.md §4.5 explicitly sanctions as the correctness-focused path when
// "no cheap inverse shuffle exists portably".
func dispatchDecode(text []rune, dict *dictionary.Dictionary) ([]byte, error) {
	if special := codec.Match(dict); special != nil {
		return special.Decode(text)
	}

	if dict.Policy() != dictionary.Chunked {
		return scalarcodec.Decode(text, dict)
	}

	meta := classify.Classify(dict)
	k := meta.BitsPerSymbol
	if k != 4 && k != 5 && k != 6 && k != 8 || !meta.AllASCII {
		return scalarcodec.Decode(text, dict)
	}

	switch {
	case meta.Strategy.Kind == classify.Sequential:
		return decodeBlocked(text, dict, k, func(cps []rune) ([]int, bool) {
			return simd.DecodeSequential(cps, meta.Strategy.Start, meta.Base)
		})

	case meta.LutClass == classify.LutSmallDirect && meta.Strategy.Kind == classify.Arbitrary:
		table := smallDirectTable(dict)
		return decodeBlocked(text, dict, k, func(cps []rune) ([]int, bool) {
			return simd.DecodeSmallDirect(cps, table)
		})

	default:
		return scalarcodec.Decode(text, dict)
	}
}

// decodeBlocked runs a decode translation kernel over every full
// StrideIndices(k) block of text and hands the remaining characters to
// the scalar decoder. A padding run that falls inside a full block makes
// the kernel reject that block, and the whole text is then decoded by the
// scalar decoder instead.
func decodeBlocked(text []rune, dict *dictionary.Dictionary, k int, translate func([]rune) ([]int, bool)) ([]byte, error) {
	stride := simd.StrideIndices(k)
	full := len(text) / stride
	blockLen := full * stride

	out := make([]byte, 0, (blockLen*k)/8+len(text))
	for i := 0; i < blockLen; i += stride {
		indices, ok := translate(text[i:i+stride])
		if !ok {
			return scalarcodec.Decode(text, dict)
		}
		out = append(out, simd.UnpackBlock(k, indices)...)
	}

	tail, err := scalarcodec.Decode(text[blockLen:], dict)
	if err != nil {
		if len(text[blockLen:]) == 0 && blockLen > 0 {
			return out, nil
		}
		return nil, err
	}
	return append(out, tail...), nil
}

// smallDirectTable builds the 16-byte shuffle table mapping index to
// code point for a base<=16 Arbitrary alphabet.
func smallDirectTable(dict *dictionary.Dictionary) simd.Lane16 {
	var table simd.Lane16
	symbols := dict.Symbols()
	for i, c := range symbols {
		table[i] = byte(c)
	}
	return table
}

// largeLutTable builds the 64-byte lookup table mapping index to code
// point for a 17<=base<=64 alphabet.
func largeLutTable(dict *dictionary.Dictionary) simd.Lut64 {
	var table simd.Lut64
	symbols := dict.Symbols()
	for i, c := range symbols {
		table[i] = byte(c)
	}
	return table
}
