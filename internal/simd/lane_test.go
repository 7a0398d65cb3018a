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

func TestLane16Shuffle(t *testing.T) {
	var table Lane16
	for i := range table {
		table[i] = byte(i * 10)
	}
	idx := Lane16{0, 1, 2, 15, 0x80, 0x90, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	got := idx.Shuffle(table)
	want := Lane16{0, 10, 20, 150, 0, 0, 30, 40, 50, 60, 70, 80, 90, 100, 110, 120}
	if got != want {
		t.Fatalf("Shuffle = %v, want %v", got, want)
	}
}

func TestLane16SaturatingSub(t *testing.T) {
	v := Lane16{0, 5, 10, 255}
	got := v.SaturatingSub(10)
	want := Lane16{0, 0, 0, 245}
	if got != want {
		t.Fatalf("SaturatingSub = %v, want %v", got, want)
	}
}

func TestLane16CompareAndBlend(t *testing.T) {
	v := Lane16{1, 5, 10, 20}
	mask := v.CompareLT(10)
	// Lanes 4-15 of v are zero, which is also < 10.
	want := Broadcast(0xFF)
	want[2], want[3] = 0, 0
	if mask != want {
		t.Fatalf("CompareLT mask = %v, want %v", mask, want)
	}
	sel := Broadcast(99)
	blended := v.Blend(sel, mask)
	wantBlend := Broadcast(99)
	wantBlend[2], wantBlend[3] = 10, 20
	if blended != wantBlend {
		t.Fatalf("Blend = %v, want %v", blended, wantBlend)
	}
}

func TestLut64Lookup(t *testing.T) {
	var table Lut64
	for i := range table {
		table[i] = byte(i + 1)
	}
	if got := table.Lookup(5); got != 6 {
		t.Fatalf("Lookup(5) = %d, want 6", got)
	}
	quads := table.AsLane16Quads()
	if quads[2][3] != table[2*16+3] {
		t.Fatalf("AsLane16Quads produced an inconsistent quad")
	}
}
