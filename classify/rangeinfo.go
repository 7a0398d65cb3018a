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

package classify

// RangeInfo precomputes the lookup aids the Range-Reduced translation
// kernel needs for an alphabet whose symbols form 2-5 contiguous ASCII
// runs (spec.md §3 RangeInfo, §4.5 Range-Reduced).
//
// Construction is grounded on original_source/src/simd/lut/large.rs's
// RangeInfo::build_multi_range, with one deliberate correction: the
// source's encode path adds the post-reduction *compressed* value to
// the looked-up offset ("chars = compressed + offset_vec", commented
// "NOT original index!"), which discards the low bits of every index
// inside the range that collapses to a saturated zero and cannot
// reconstruct the original symbol. spec.md §4.5 step 3 ("Add offset to
// the uncompressed index") describes the only version of this
// algorithm that actually round-trips, so that is what is implemented
// here and in internal/simd.
type RangeInfo struct {
	SubsThreshold uint8
	CmpValue      *uint8
	OverrideVal   *uint8
	OffsetLUT     [16]int8
}

// BuildRangeInfo constructs a RangeInfo for 1-5 contiguous ranges. It
// returns false if construction is not possible (more than 5 ranges, or
// an offset that cannot be expressed as a compressed LUT within the
// 16-entry table): every index of every range is checked against the
// built table before it is returned.
func BuildRangeInfo(ranges []ContiguousRange) (RangeInfo, bool) {
	var info RangeInfo
	switch n := len(ranges); {
	case n == 0 || n > maxRangedRuns:
		return RangeInfo{}, false
	case n == 1:
		info = buildSingleRange(ranges)
	case n == 2:
		info = buildTwoRanges(ranges)
	default:
		var ok bool
		if info, ok = buildSmallMultiRange(ranges); !ok {
			return RangeInfo{}, false
		}
	}
	for _, r := range ranges {
		for i := r.FirstIndex; i <= r.LastIndex; i++ {
			if info.Offset(i) != r.Offset() {
				return RangeInfo{}, false
			}
		}
	}
	return info, true
}

func buildSingleRange(ranges []ContiguousRange) RangeInfo {
	var info RangeInfo
	offset := int8(ranges[0].Offset())
	for i := range info.OffsetLUT {
		info.OffsetLUT[i] = offset
	}
	return info
}

func buildTwoRanges(ranges []ContiguousRange) RangeInfo {
	r0, r1 := ranges[0], ranges[1]
	var info RangeInfo
	info.SubsThreshold = uint8(r0.LastIndex)
	info.OffsetLUT[0] = int8(r0.Offset())

	width := r1.LastIndex - r0.LastIndex
	if width > 15 {
		width = 15
	}
	for i := 1; i <= width; i++ {
		info.OffsetLUT[i] = int8(r1.Offset())
	}
	return info
}

func buildSmallMultiRange(ranges []ContiguousRange) (RangeInfo, bool) {
	largestIdx, secondIdx := 0, 1
	if ranges[1].Len() > ranges[0].Len() {
		largestIdx, secondIdx = 1, 0
	}
	for i := 2; i < len(ranges); i++ {
		if ranges[i].Len() > ranges[largestIdx].Len() {
			secondIdx = largestIdx
			largestIdx = i
		} else if ranges[i].Len() > ranges[secondIdx].Len() {
			secondIdx = i
		}
	}
	largest, second := ranges[largestIdx], ranges[secondIdx]

	var info RangeInfo
	info.SubsThreshold = uint8(second.LastIndex)

	var cmpValue uint8
	if largestIdx < secondIdx {
		cmpValue = uint8(second.FirstIndex)
	} else {
		cmpValue = uint8(largest.FirstIndex)
	}

	info.OffsetLUT[0] = int8(second.Offset())
	compressedIdx := 1
	for i, r := range ranges {
		if i == largestIdx || i == secondIdx {
			continue
		}
		if r.FirstIndex <= second.LastIndex {
			continue
		}
		length := r.Len()
		for j := 0; j < length && compressedIdx+j < 16; j++ {
			info.OffsetLUT[compressedIdx+j] = int8(r.Offset())
		}
		compressedIdx += length
		if compressedIdx >= 15 {
			break
		}
	}
	if compressedIdx > 15 {
		compressedIdx = 15
	}
	info.OffsetLUT[compressedIdx] = int8(largest.Offset())

	overrideVal := uint8(compressedIdx)
	info.CmpValue = &cmpValue
	info.OverrideVal = &overrideVal
	return info, true
}

// Offset returns the additive offset for a raw (uncompressed) index
// under this RangeInfo, replicating the saturating-subtract /
// compare-blend / shuffle sequence described in spec.md §4.5 over plain
// integers instead of vector registers.
func (info RangeInfo) Offset(index int) int {
	compressed := saturatingSub(index, int(info.SubsThreshold))
	if info.CmpValue != nil && info.OverrideVal != nil {
		if index < int(*info.CmpValue) {
			compressed = int(*info.OverrideVal)
		}
	}
	if compressed > 15 {
		compressed = 15
	}
	return int(info.OffsetLUT[compressed])
}

func saturatingSub(a, b int) int {
	if a <= b {
		return 0
	}
	return a - b
}
