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

func TestMin16(t *testing.T) {
	if got := min16(3, 5); got != 3 {
		t.Fatalf("min16(3, 5) = %d, want 3", got)
	}
	if got := min16(5, 3); got != 3 {
		t.Fatalf("min16(5, 3) = %d, want 3", got)
	}
	if got := min16(byte(200), byte(15)); got != 15 {
		t.Fatalf("min16(200, 15) = %d, want 15", got)
	}
}
