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

import (
	"testing"

	"github.com/coryzibell/based/classify"
	"github.com/coryzibell/based/dictionary"
)

func TestEncodeDecodeSequential(t *testing.T) {
	indices := []int{0, 1, 2, 15, 16, 17, 31}
	out := EncodeSequential(indices, 'A')
	want := []rune{'A', 'B', 'C', 'P', 'Q', 'R', '`'}
	for i, r := range want {
		if out[i] != r {
			t.Fatalf("index %d: got %q, want %q", i, out[i], r)
		}
	}
	back, ok := DecodeSequential(out, 'A', 32)
	if !ok {
		t.Fatal("DecodeSequential failed on valid input")
	}
	for i, idx := range indices {
		if back[i] != idx {
			t.Fatalf("index %d: decoded %d, want %d", i, back[i], idx)
		}
	}
}

func TestDecodeSequentialRejectsOutOfRange(t *testing.T) {
	if _, ok := DecodeSequential([]rune{'Z' + 1}, 'A', 26); ok {
		t.Fatal("expected DecodeSequential to reject a code point past the end of the range")
	}
	if _, ok := DecodeSequential([]rune{'A' - 1}, 'A', 26); ok {
		t.Fatal("expected DecodeSequential to reject a code point before the start of the range")
	}
}

func buildDict(t *testing.T, symbols []rune, policy dictionary.Policy) *dictionary.Dictionary {
	t.Helper()
	d, err := dictionary.New(symbols, policy, nil, nil)
	if err != nil {
		t.Fatalf("dictionary.New: %v", err)
	}
	return d
}

func TestEncodeRangeReducedMatchesBase64Alphabet(t *testing.T) {
	symbols := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
	d := buildDict(t, symbols, dictionary.Chunked)
	meta := classify.Classify(d)
	if meta.Strategy.Kind != classify.Ranged {
		t.Fatalf("expected Ranged strategy, got %v", meta.Strategy.Kind)
	}

	indices := make([]int, 64)
	for i := range indices {
		indices[i] = i
	}
	out := EncodeRangeReduced(indices, meta.Strategy.Info)
	for i, r := range out {
		if r != symbols[i] {
			t.Fatalf("index %d: got %q, want %q", i, r, symbols[i])
		}
	}
}

func TestEncodeGappedSequential(t *testing.T) {
	symbols := append([]rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ"), []rune("bcdefghijklmnopqrstuvwxyz")...)
	d := buildDict(t, symbols, dictionary.BaseConversion)
	meta := classify.Classify(d)
	if meta.Strategy.Kind != classify.GappedSequential {
		t.Fatalf("expected GappedSequential strategy, got %v", meta.Strategy.Kind)
	}

	indices := make([]int, len(symbols))
	for i := range indices {
		indices[i] = i
	}
	out := EncodeGapped(indices, meta.Strategy)
	for i, r := range out {
		if r != symbols[i] {
			t.Fatalf("index %d: got %q, want %q", i, r, symbols[i])
		}
	}
}

func TestEncodeDecodeSmallDirect(t *testing.T) {
	symbols := []rune("0123456789ABCDEF")
	var table Lane16
	for i, c := range symbols {
		table[i] = byte(c)
	}
	indices := []int{0, 1, 15, 8, 4, 2}
	out := EncodeSmallDirect(indices, table)
	for i, r := range out {
		if r != symbols[indices[i]] {
			t.Fatalf("index %d: got %q, want %q", i, r, symbols[indices[i]])
		}
	}
	back, ok := DecodeSmallDirect(out, table)
	if !ok {
		t.Fatal("DecodeSmallDirect failed on valid input")
	}
	for i, idx := range indices {
		if back[i] != idx {
			t.Fatalf("index %d: decoded %d, want %d", i, back[i], idx)
		}
	}
}

func TestDecodeSmallDirectRejectsUnknownCodePoint(t *testing.T) {
	symbols := []rune("0123456789ABCDEF")
	var table Lane16
	for i, c := range symbols {
		table[i] = byte(c)
	}
	if _, ok := DecodeSmallDirect([]rune{'Z'}, table); ok {
		t.Fatal("expected DecodeSmallDirect to reject a code point not in the table")
	}
}

func TestEncodeLargeLut(t *testing.T) {
	symbols := []rune("zyxwvutsrqponmlkjihgfedcbaZYXWVUTSRQPONMLKJIHGFEDCBA9876543210_-")
	var table Lut64
	for i, c := range symbols {
		table[i] = byte(c)
	}
	indices := []int{0, 1, 2, 63, 32, 16}
	out := EncodeLargeLut(indices, table)
	for i, r := range out {
		if r != symbols[indices[i]] {
			t.Fatalf("index %d: got %q, want %q", i, r, symbols[indices[i]])
		}
	}
}
