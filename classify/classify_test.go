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

import (
	"reflect"
	"testing"

	"github.com/coryzibell/based/dictionary"
)

func mustDict(t *testing.T, symbols []rune, policy dictionary.Policy) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.New(symbols, policy, nil, nil)
	if err != nil {
		t.Fatalf("dictionary.New: %v", err)
	}
	return d
}

func TestClassifySequential(t *testing.T) {
	d := mustDict(t, []rune("ABCDEFGHIJKLMNOP"), dictionary.Chunked)
	meta := Classify(d)
	if meta.Strategy.Kind != Sequential {
		t.Fatalf("Kind = %v, want Sequential", meta.Strategy.Kind)
	}
	if meta.Strategy.Start != 'A' {
		t.Fatalf("Start = %q, want 'A'", meta.Strategy.Start)
	}
	if meta.BitsPerSymbol != 4 {
		t.Fatalf("BitsPerSymbol = %d, want 4", meta.BitsPerSymbol)
	}
	if meta.LutClass != LutNone {
		t.Fatalf("Sequential strategy should never set a LutClass, got %v", meta.LutClass)
	}
}

func TestClassifyByteRange(t *testing.T) {
	start := rune(0x1F3F7)
	d, err := dictionary.New(nil, dictionary.ByteRange, nil, &start)
	if err != nil {
		t.Fatalf("dictionary.New: %v", err)
	}
	meta := Classify(d)
	if meta.Base != 256 || meta.BitsPerSymbol != 8 {
		t.Fatalf("Base/BitsPerSymbol = %d/%d, want 256/8", meta.Base, meta.BitsPerSymbol)
	}
	if meta.AllASCII {
		t.Fatal("a 256-wide ByteRange alphabet can never be all-ASCII")
	}
	if meta.Strategy.Kind != Sequential || meta.Strategy.Start != start {
		t.Fatalf("Strategy = %+v, want Sequential{Start: %q}", meta.Strategy, start)
	}
}

func TestClassifyRangedBase64(t *testing.T) {
	symbols := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
	d := mustDict(t, symbols, dictionary.Chunked)
	meta := Classify(d)
	if meta.Strategy.Kind != Ranged {
		t.Fatalf("Kind = %v, want Ranged", meta.Strategy.Kind)
	}
	if len(meta.ContiguousRanges) != 5 {
		t.Fatalf("expected 5 contiguous ranges, got %d: %+v", len(meta.ContiguousRanges), meta.ContiguousRanges)
	}
	for i := 0; i < 64; i++ {
		want := symbols[i]
		got := rune(i) + rune(meta.Strategy.Info.Offset(i))
		if got != want {
			t.Fatalf("index %d: RangeInfo.Offset gives %q, want %q", i, got, want)
		}
	}
}

func TestClassifyRangedBase32(t *testing.T) {
	symbols := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")
	d := mustDict(t, symbols, dictionary.Chunked)
	meta := Classify(d)
	if meta.Strategy.Kind != Ranged {
		t.Fatalf("Kind = %v, want Ranged", meta.Strategy.Kind)
	}
	for i := 0; i < 32; i++ {
		want := symbols[i]
		got := rune(i) + rune(meta.Strategy.Info.Offset(i))
		if got != want {
			t.Fatalf("index %d: RangeInfo.Offset gives %q, want %q", i, got, want)
		}
	}
}

func TestClassifyGappedSequential(t *testing.T) {
	// A-Z then b-z: the seven code points between 'Z' and 'b' ('[' through
	// 'a') are missing, still within the gap budget (7 <= 8) and
	// all-ASCII, so GappedSequential applies.
	symbols := append([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), []rune("bcdefghijklmnopqrstuvwxyz")...)
	d := mustDict(t, symbols, dictionary.BaseConversion)
	meta := Classify(d)
	if meta.Strategy.Kind != GappedSequential {
		t.Fatalf("Kind = %v, want GappedSequential", meta.Strategy.Kind)
	}
	if meta.Strategy.BaseOffset != 'A' {
		t.Fatalf("BaseOffset = %q, want 'A'", meta.Strategy.BaseOffset)
	}
}

func TestClassifyArbitrary(t *testing.T) {
	symbols := []rune("zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA9876543210_-")
	d := mustDict(t, symbols, dictionary.Chunked)
	meta := Classify(d)
	if meta.Strategy.Kind != Arbitrary {
		t.Fatalf("Kind = %v, want Arbitrary", meta.Strategy.Kind)
	}
	if meta.LutClass != LutLargePlatformDependent {
		t.Fatalf("LutClass = %v, want LutLargePlatformDependent", meta.LutClass)
	}
}

func TestClassifyArbitraryNonPowerOfTwoHasNoLutClass(t *testing.T) {
	symbols := []rune("fkmnrstvwxyz01")
	d := mustDict(t, symbols, dictionary.BaseConversion)
	meta := Classify(d)
	if meta.Strategy.Kind != Arbitrary {
		t.Fatalf("Kind = %v, want Arbitrary", meta.Strategy.Kind)
	}
	if meta.LutClass != LutNone {
		// base=14 is not a power of two, so bits_per_symbol is 0 and
		// lut_class stays None per spec.md §4.3 step 4.
		t.Fatalf("LutClass = %v, want LutNone for a non-power-of-two base", meta.LutClass)
	}
}

func TestClassifyIdempotent(t *testing.T) {
	symbols := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
	d := mustDict(t, symbols, dictionary.Chunked)
	a := Classify(d)
	b := Classify(d)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("Classify is not idempotent: %+v != %+v", a, b)
	}
}

func TestContiguousRangeOffset(t *testing.T) {
	r := ContiguousRange{FirstIndex: 5, LastIndex: 9, FirstCodePoint: 'A'}
	if r.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", r.Len())
	}
	if r.Offset() != int('A')-5 {
		t.Fatalf("Offset() = %d, want %d", r.Offset(), int('A')-5)
	}
}
