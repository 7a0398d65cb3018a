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

// Package based is a binary-to-text codec whose central value is a
// dispatch engine that selects a specialized SIMD-shaped encoder/decoder
// at runtime from a declarative description of the output alphabet (a
// Dictionary). Callers describe their alphabet once with NewDictionary,
// then call Encode/Decode; the engine picks a known specialization, a
// generic vectorized codec, or the scalar reference implementation,
// transparently.
package based

import (
	"github.com/coryzibell/based/classify"
	"github.com/coryzibell/based/codec"
	"github.com/coryzibell/based/dictionary"
	"github.com/coryzibell/based/internal/cpufeature"
)

// Dictionary, Policy and the three policy constants are re-exported so
// callers constructing alphabets don't need a second import.
type Dictionary = dictionary.Dictionary
type Policy = dictionary.Policy

const (
	BaseConversion = dictionary.BaseConversion
	Chunked        = dictionary.Chunked
	ByteRange      = dictionary.ByteRange
)

// DictionaryMetadata is the classifier's derived view of a Dictionary.
type DictionaryMetadata = classify.DictionaryMetadata

// FeatureSet reports the running CPU's SIMD capabilities.
type FeatureSet = cpufeature.FeatureSet

// NewDictionary validates symbols/policy/padding/rangeStart and returns
// an immutable Dictionary. This is the library's validate_dictionary
// operation.
func NewDictionary(symbols []rune, policy Policy, padding *rune, rangeStart *rune) (*Dictionary, error) {
	return dictionary.New(symbols, policy, padding, rangeStart)
}

// Classify returns dict's derived structural metadata. Classify is pure:
// calling it twice on the same Dictionary returns equal metadata.
func Classify(dict *Dictionary) DictionaryMetadata {
	return classify.Classify(dict)
}

// Encode maps data to text under dict, selecting a known specialization,
// a generic vectorized codec, or the scalar reference encoder depending
// on dict's classification.
func Encode(data []byte, dict *Dictionary) []rune {
	return dispatchEncode(data, dict)
}

// Decode inverts Encode. It returns scalarcodec.ErrEmptyInput,
// *scalarcodec.InvalidCharacterError, or *scalarcodec.InvalidPaddingError
// on malformed input.
func Decode(text []rune, dict *Dictionary) ([]byte, error) {
	return dispatchDecode(text, dict)
}

// DetectFeatures reports the running CPU's SIMD capabilities.
func DetectFeatures() FeatureSet {
	return cpufeature.Detect()
}

// StandardBase64 returns the RFC 4648 standard Base64 Dictionary
// (A-Z, a-z, 0-9, '+', '/', padding '=').
func StandardBase64() *Dictionary { return codec.Base64.Dict }

// URLBase64 returns the RFC 4648 URL- and filename-safe Base64
// Dictionary (A-Z, a-z, 0-9, '-', '_', padding '=').
func URLBase64() *Dictionary { return codec.Base64URL.Dict }

// StandardBase32 returns the RFC 4648 standard Base32 Dictionary
// (A-Z, 2-7, padding '=').
func StandardBase32() *Dictionary { return codec.Base32.Dict }

// ExtendedHexBase32 returns the RFC 4648 Extended Hex Base32 Dictionary
// (0-9, A-V, padding '=').
func ExtendedHexBase32() *Dictionary { return codec.Base32ExtendedHex.Dict }
