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

import "testing"

func TestVariantLaneWidth(t *testing.T) {
	if Generic.LaneWidth() != 16 {
		t.Fatalf("Generic.LaneWidth() = %d, want 16", Generic.LaneWidth())
	}
	if AVX2.LaneWidth() != 32 {
		t.Fatalf("AVX2.LaneWidth() = %d, want 32", AVX2.LaneWidth())
	}
	if NEON.LaneWidth() != 16 {
		t.Fatalf("NEON.LaneWidth() = %d, want 16", NEON.LaneWidth())
	}
}

func TestSelectedVariantIsStable(t *testing.T) {
	a := SelectedVariant()
	b := SelectedVariant()
	if a != b {
		t.Fatalf("SelectedVariant() is not stable across calls: %v != %v", a, b)
	}
}

func TestVariantString(t *testing.T) {
	cases := map[Variant]string{
		Generic: "Generic",
		SSSE3:   "SSSE3",
		AVX2:    "AVX2",
		NEON:    "NEON",
	}
	for v, want := range cases {
		if got := v.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", v, got, want)
		}
	}
}
