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

import "github.com/coryzibell/based/internal/cpufeature"

// Variant names a SIMD register width/feature shape. The translation and
// bit-packing kernels in this package are written once in portable Go
// and do not consult Variant, so their output is identical under every
// Variant (spec.md §8's Feature Parity property); Variant records the
// register shape selected for the running CPU, the same axis a real
// SSSE3 vs. AVX2 vs. NEON implementation would vary.
type Variant int

const (
	Generic Variant = iota
	SSSE3
	AVX2
	NEON
)

func (v Variant) String() string {
	switch v {
	case SSSE3:
		return "SSSE3"
	case AVX2:
		return "AVX2"
	case NEON:
		return "NEON"
	default:
		return "Generic"
	}
}

// LaneWidth returns the number of lanes Variant processes per logical
// vector instruction: 16 for a 128-bit register (SSSE3, NEON, and the
// portable Generic fallback), 32 for AVX2's 256-bit register processing
// two 128-bit lanes per call.
func (v Variant) LaneWidth() int {
	if v == AVX2 {
		return 32
	}
	return 16
}

// selectedVariant is assigned once at package initialization from
// detected CPU features, mirroring the teacher's init()-time
// ansCompress/ansDecompress/ansDecodeTable function-variable assignment
// in ion/zion/iguana/ans32_amd64.go: dispatch decides the variant once,
// not on every call.
var selectedVariant = detectVariant()

func detectVariant() Variant {
	fs := cpufeature.Detect()
	switch {
	case fs.AVX512VBMI, fs.AVX2:
		return AVX2
	case fs.NEON:
		return NEON
	case fs.SSSE3:
		return SSSE3
	default:
		return Generic
	}
}

// SelectedVariant returns the Variant chosen for the running CPU.
func SelectedVariant() Variant {
	return selectedVariant
}
