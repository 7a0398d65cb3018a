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

// Package simd emulates the 128-bit/64-byte vector register operations
// the dispatch engine's SIMD codecs are built from: byte shuffles,
// saturating subtract, and lane-wise compare/blend. Every operation here
// is expressible as a single vector instruction on SSSE3/AVX2/NEON
// hardware; this package implements the same arithmetic over plain Go
// arrays so the dispatch shape (see Variant in variant.go) can be
// exercised and tested without hand-written, per-architecture assembly.
package simd

import "fmt"

// Lane16 emulates a 128-bit vector register as sixteen byte lanes, the
// Go shape of the teacher's Vec8x16.
type Lane16 [16]byte

func (v Lane16) String() string {
	return fmt.Sprintf("%02x", [16]byte(v))
}

// Shuffle looks up table[v[i]&0x0F] into lane i, emulating SSSE3's
// pshufb / NEON's vqtbl1q_u8: a lane whose high bit is set yields zero
// instead of wrapping, matching the "out of range index" behavior of
// both real instructions.
func (v Lane16) Shuffle(table Lane16) Lane16 {
	var out Lane16
	for i, idx := range v {
		if idx&0x80 != 0 {
			continue
		}
		out[i] = table[idx&0x0F]
	}
	return out
}

// SaturatingSub subtracts c from every lane, clamping at zero instead of
// wrapping (the vector psubusb / uqsub8 semantics).
func (v Lane16) SaturatingSub(c byte) Lane16 {
	var out Lane16
	for i, b := range v {
		if b < c {
			out[i] = 0
		} else {
			out[i] = b - c
		}
	}
	return out
}

// CompareLT returns a lane mask: 0xFF where v[i] < c, else 0x00.
func (v Lane16) CompareLT(c byte) Lane16 {
	var out Lane16
	for i, b := range v {
		if b < c {
			out[i] = 0xFF
		}
	}
	return out
}

// CompareGE returns a lane mask: 0xFF where v[i] >= c, else 0x00.
func (v Lane16) CompareGE(c byte) Lane16 {
	var out Lane16
	for i, b := range v {
		if b >= c {
			out[i] = 0xFF
		}
	}
	return out
}

// CompareEQ returns a lane mask: 0xFF where v[i] == c, else 0x00.
func (v Lane16) CompareEQ(c byte) Lane16 {
	var out Lane16
	for i, b := range v {
		if b == c {
			out[i] = 0xFF
		}
	}
	return out
}

// Broadcast fills every lane with c.
func Broadcast(c byte) Lane16 {
	var out Lane16
	for i := range out {
		out[i] = c
	}
	return out
}

// Blend selects lane i from sel when mask[i] is nonzero, else from v.
func (v Lane16) Blend(sel, mask Lane16) Lane16 {
	var out Lane16
	for i := range out {
		if mask[i] != 0 {
			out[i] = sel[i]
		} else {
			out[i] = v[i]
		}
	}
	return out
}

// Or returns the lane-wise bitwise OR of v and w.
func (v Lane16) Or(w Lane16) Lane16 {
	var out Lane16
	for i := range out {
		out[i] = v[i] | w[i]
	}
	return out
}

// Lut64 emulates a 64-byte lookup table addressable by a 6-bit index,
// the shape AVX-512 VBMI's vpermb or NEON's four-register vqtbl4q_u8
// lookup operates over.
type Lut64 [64]byte

// Lookup returns table[idx & 0x3F].
func (t Lut64) Lookup(idx byte) byte {
	return t[idx&0x3F]
}

// AsLane16Quads splits a Lut64 into the four Lane16 sub-tables a
// four-register NEON lookup would hold.
func (t Lut64) AsLane16Quads() [4]Lane16 {
	var out [4]Lane16
	for q := 0; q < 4; q++ {
		copy(out[q][:], t[q*16:q*16+16])
	}
	return out
}
