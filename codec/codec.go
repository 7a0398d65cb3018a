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

// Package codec implements hand-fused specializations for the four RFC
// 4648 alphabets: standard and URL-safe Base64, and standard and
// Extended Hex Base32. Their translation reduces to a Range-Reduced table
// classified once at package initialization, so encoding skips the
// per-call classify+dispatch path and goes straight to a bit-packing
// kernel plus that precomputed translation; decoding uses the scalar
// reference decoder. Behavior is bit-identical to what the generic dispatcher
// would produce for the same Dictionary; this package exists purely as
// a fast path.
package codec

import (
	"github.com/coryzibell/based/classify"
	"github.com/coryzibell/based/dictionary"
	"github.com/coryzibell/based/internal/simd"
	"github.com/coryzibell/based/scalarcodec"
)

// Specialization is a known alphabet fused with its precomputed
// classification, keyed by Dictionary identity in the dispatch engine.
type Specialization struct {
	Dict *dictionary.Dictionary
	meta classify.DictionaryMetadata
}

func build(symbols []rune, pad rune) *Specialization {
	p := pad
	dict, err := dictionary.New(symbols, dictionary.Chunked, &p, nil)
	if err != nil {
		panic("codec: built-in alphabet failed validation: " + err.Error())
	}
	return &Specialization{Dict: dict, meta: classify.Classify(dict)}
}

var (
	// stdBase64Symbols is A-Z, a-z, 0-9, '+', '/': RFC 4648 §4.
	stdBase64Symbols = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/")
	// urlBase64Symbols replaces '+','/' with '-','_': RFC 4648 §5.
	urlBase64Symbols = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_")
	// stdBase32Symbols is A-Z, 2-7: RFC 4648 §6.
	stdBase32Symbols = []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ234567")
	// hexBase32Symbols is 0-9, A-V: RFC 4648 §7 ("Extended Hex").
	hexBase32Symbols = []rune("0123456789ABCDEFGHIJKLMNOPQRSTUV")
)

var (
	// Base64 is the RFC 4648 standard Base64 specialization.
	Base64 = build(stdBase64Symbols, '=')
	// Base64URL is the RFC 4648 URL- and filename-safe Base64 specialization.
	Base64URL = build(urlBase64Symbols, '=')
	// Base32 is the RFC 4648 standard Base32 specialization.
	Base32 = build(stdBase32Symbols, '=')
	// Base32ExtendedHex is the RFC 4648 Extended Hex Base32 specialization.
	Base32ExtendedHex = build(hexBase32Symbols, '=')
)

var known = []*Specialization{Base64, Base64URL, Base32, Base32ExtendedHex}

// Match returns the Specialization whose alphabet dict describes, or nil
// if dict does not match one of the four known alphabets. Matching is by
// symbol identity (same ordered symbols, policy and padding), not
// pointer identity: a caller-built Dictionary with the same symbol set
// as, say, standard Base64 dispatches to the fast path exactly like the
// value returned by based.StandardBase64. This is dispatch step 2 of
// spec.md §4.7.
func Match(dict *dictionary.Dictionary) *Specialization {
	if dict.Policy() != dictionary.Chunked {
		return nil
	}
	pad, hasPad := dict.Padding()
	for _, s := range known {
		if s.Dict == dict {
			return s
		}
		sPad, sHasPad := s.Dict.Padding()
		if hasPad != sHasPad || (hasPad && pad != sPad) {
			continue
		}
		if slicesEqual(dict.Symbols(), s.Dict.Symbols()) {
			return s
		}
	}
	return nil
}

func slicesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Encode runs the fused bit-packing + Range-Reduced translation kernel
// over full blocks, then appends the scalar reference encoder's output
// for the trailing bytes that don't fill a whole block (spec.md §4.8
// Remainder Glue). The scalar tail is also where Chunked padding, if
// configured, is applied — exactly once, after every bit has been
// consumed.
func (s *Specialization) Encode(data []byte) []rune {
	k := s.meta.BitsPerSymbol
	stride := simd.StrideBytes(k)
	full := len(data) / stride
	blockLen := full * stride

	out := make([]rune, 0, (len(data)*8)/k+4)
	for i := 0; i < blockLen; i += stride {
		indices := simd.PackBlock(k, data[i:i+stride])
		out = append(out, simd.EncodeRangeReduced(indices, s.meta.Strategy.Info)...)
	}
	out = append(out, scalarcodec.EncodeChunked(data[blockLen:], s.Dict)...)
	return out
}

// Decode validates and decodes text against s.Dict. Range-Reduced
// alphabets decode via the Dictionary's DecodeLut-equivalent sparse/fast
// table rather than an inverse SIMD shuffle, exactly as spec.md §4.5
// sanctions ("no cheap inverse shuffle exists portably" applies equally
// to Range-Reduced as to Arbitrary-LUT; decode correctness, not
// decode throughput, is what's required here).
func (s *Specialization) Decode(text []rune) ([]byte, error) {
	return scalarcodec.Decode(text, s.Dict)
}
