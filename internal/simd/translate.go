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

package simd

import "github.com/coryzibell/based/classify"

// EncodeSequential maps each index to start+index, sixteen lanes at a
// time, via a plain lane add (a single vector instruction on real
// hardware).
func EncodeSequential(indices []int, start rune) []rune {
	out := make([]rune, len(indices))
	for i := range indices {
		out[i] = start + rune(indices[i])
	}
	return out
}

// DecodeSequential inverts EncodeSequential. Validation is the
// saturating-subtract-then-compare sequence spec.md describes: any code
// point outside [start, start+base) fails the whole block.
func DecodeSequential(codepoints []rune, start rune, base int) ([]int, bool) {
	out := make([]int, len(codepoints))
	for chunk := 0; chunk < len(codepoints); chunk += 16 {
		end := min16(chunk+16, len(codepoints))
		for i := chunk; i < end; i++ {
			c := codepoints[i]
			if c < start {
				return nil, false
			}
			idx := saturatingSubRune(c, start)
			if idx >= base {
				return nil, false
			}
			out[i] = idx
		}
	}
	return out, true
}

func saturatingSubRune(a, b rune) int {
	if a <= b {
		return 0
	}
	return int(a - b)
}

// EncodeGapped implements the GappedSequential translation: each index's
// code point is base_offset + index plus the cumulative adjustment of
// the last threshold it has reached or passed. Processed sixteen indices
// per block; each of the len(Thresholds) compares is a single vector
// ">=" against a broadcast threshold, whose mask conditionally overwrites
// the running adjustment lane (later, larger thresholds are applied
// after earlier ones, so the final value is always the adjustment of the
// greatest threshold the index reached).
func EncodeGapped(indices []int, strat classify.Strategy) []rune {
	out := make([]rune, len(indices))
	for chunk := 0; chunk < len(indices); chunk += 16 {
		end := min16(chunk+16, len(indices))
		n := end - chunk

		var block Lane16
		for i := 0; i < n; i++ {
			block[i] = byte(indices[chunk+i])
		}

		var adjust Lane16
		for j, threshold := range strat.Thresholds {
			mask := block.CompareGE(byte(threshold))
			adjustBroadcast := Broadcast(byte(strat.Adjustments[j]))
			adjust = adjust.Blend(adjustBroadcast, mask)
		}

		for i := 0; i < n; i++ {
			out[chunk+i] = strat.BaseOffset + rune(indices[chunk+i]) + rune(adjust[i])
		}
	}
	return out
}

// EncodeRangeReduced implements the Range-Reduced translation (spec.md
// §4.5): saturating-subtract to a compressed index, an optional
// comparison-blend step for alphabets with three or more runs, a
// 16-byte shuffle through the offset table, and a final add of the
// looked-up offset to the *uncompressed* index. See RangeInfo.Offset and
// classify/rangeinfo.go for why the add uses the uncompressed index.
func EncodeRangeReduced(indices []int, info classify.RangeInfo) []rune {
	out := make([]rune, len(indices))
	for chunk := 0; chunk < len(indices); chunk += 16 {
		end := min16(chunk+16, len(indices))
		n := end - chunk

		var block Lane16
		for i := 0; i < n; i++ {
			block[i] = byte(indices[chunk+i])
		}

		compressed := block.SaturatingSub(info.SubsThreshold)
		if info.CmpValue != nil && info.OverrideVal != nil {
			mask := block.CompareLT(*info.CmpValue)
			override := Broadcast(*info.OverrideVal)
			compressed = compressed.Blend(override, mask)
		}
		for i := range compressed {
			compressed[i] = min16(compressed[i], 15)
		}

		var offsetTable Lane16
		for i, o := range info.OffsetLUT {
			offsetTable[i] = byte(o)
		}
		offsets := compressed.Shuffle(offsetTable)

		for i := 0; i < n; i++ {
			out[chunk+i] = rune(indices[chunk+i] + int(int8(offsets[i])))
		}
	}
	return out
}

// EncodeSmallDirect implements the base<=16 Arbitrary-LUT translation: a
// single 16-byte shuffle maps index directly to code point.
func EncodeSmallDirect(indices []int, table Lane16) []rune {
	out := make([]rune, len(indices))
	for chunk := 0; chunk < len(indices); chunk += 16 {
		end := min16(chunk+16, len(indices))
		n := end - chunk

		var block Lane16
		for i := 0; i < n; i++ {
			block[i] = byte(indices[chunk+i])
		}
		result := block.Shuffle(table)
		for i := 0; i < n; i++ {
			out[chunk+i] = rune(result[i])
		}
	}
	return out
}

// DecodeSmallDirect recovers indices from code points by brute-force
// equality against each of the sixteen table entries, the SSSE3-style
// "16-way parallel compare-then-blend" spec.md §4.5 names as an option
// when no cheap inverse shuffle exists. Returns false if any code point
// in the block matches none of the sixteen entries.
func DecodeSmallDirect(codepoints []rune, table Lane16) ([]int, bool) {
	out := make([]int, len(codepoints))
	for chunk := 0; chunk < len(codepoints); chunk += 16 {
		end := min16(chunk+16, len(codepoints))
		n := end - chunk

		var block Lane16
		for i := 0; i < n; i++ {
			if codepoints[chunk+i] < 0 || codepoints[chunk+i] > 0xFF {
				return nil, false
			}
			block[i] = byte(codepoints[chunk+i])
		}

		var index Lane16
		var matched Lane16
		for entry := 0; entry < 16; entry++ {
			mask := block.CompareEQ(table[entry])
			index = index.Blend(Broadcast(byte(entry)), mask)
			matched = matched.Or(mask)
		}
		for i := 0; i < n; i++ {
			if matched[i] == 0 {
				return nil, false
			}
			out[chunk+i] = int(index[i])
		}
	}
	return out, true
}

// EncodeLargeLut implements the 17<=base<=64 Arbitrary-LUT translation
// via a 64-entry table lookup: a single vpermb on AVX-512 VBMI, a
// four-register vqtbl4q_u8 lookup on NEON. Both reduce to the same
// arithmetic here.
func EncodeLargeLut(indices []int, table Lut64) []rune {
	out := make([]rune, len(indices))
	for i, idx := range indices {
		out[i] = rune(table.Lookup(byte(idx)))
	}
	return out
}
