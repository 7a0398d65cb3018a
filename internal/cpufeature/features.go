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

// Package cpufeature reports the runtime CPU's SIMD capabilities, gating
// which internal/simd kernel variant the dispatch engine is allowed to
// select. Detection happens once; callers hold the result rather than
// repeatedly probing golang.org/x/sys/cpu, following the same
// check-once, branch-on-a-plain-value shape as the teacher's
// vm.avx512level gating.
package cpufeature

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// FeatureSet reports which SIMD extensions the running CPU supports.
// This is the Go shape of the spec's detect_features() operation.
type FeatureSet struct {
	SSE3       bool
	SSSE3      bool
	SSE41      bool
	AVX2       bool
	AVX512VBMI bool
	NEON       bool
}

var detected = detect()

func detect() FeatureSet {
	var fs FeatureSet
	switch runtime.GOARCH {
	case "amd64", "386":
		fs.SSE3 = cpu.X86.HasSSE3
		fs.SSSE3 = cpu.X86.HasSSSE3
		fs.SSE41 = cpu.X86.HasSSE41
		fs.AVX2 = cpu.X86.HasAVX2
		fs.AVX512VBMI = cpu.X86.HasAVX512VBMI
	case "arm64":
		// NEON is a mandatory part of the arm64 baseline; unlike the
		// optional x86 extensions above, there is no "has NEON" flag to
		// probe in golang.org/x/sys/cpu because it cannot be absent.
		fs.NEON = true
	}
	return fs
}

// Detect returns the current process's FeatureSet. Detection runs once
// at package initialization; this call is cheap and may be made from
// any goroutine.
func Detect() FeatureSet {
	return detected
}
