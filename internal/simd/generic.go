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

import "golang.org/x/exp/constraints"

// min16 returns the smaller of a and b, used throughout this package to
// clamp a chunk boundary to the tail of a slice and to clamp a
// compressed Range-Reduced index into the 16-entry offset table.
func min16[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}
