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

// Package dictionary describes an output alphabet and the policy used to
// encode digits into it. A Dictionary is immutable once constructed and
// is the sole description against which every codec's output is defined.
package dictionary

import (
	"fmt"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Policy selects the scalar encoding semantics a Dictionary follows.
type Policy int

const (
	// BaseConversion treats the input as a big-endian integer and emits
	// its digits in base B, preserving leading zero bytes as leading
	// zero-digits.
	BaseConversion Policy = iota
	// Chunked slices the input into fixed k = log2(B) bit groups, RFC
	// 4648 style.
	Chunked
	// ByteRange maps byte b to the Unicode scalar range_start + b.
	ByteRange
)

func (p Policy) String() string {
	switch p {
	case BaseConversion:
		return "BaseConversion"
	case Chunked:
		return "Chunked"
	case ByteRange:
		return "ByteRange"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// fastTableSize mirrors the original implementation's lookup-table
// threshold: alphabets whose symbols all have code points below this
// value get a dense array lookup instead of a map probe.
const fastTableSize = 256

// noIndex is the fast-table sentinel for "no symbol maps to this code
// point".
const noIndex = -1

// Dictionary is an immutable description of an output symbol set and its
// encoding policy. Construct one with New; the zero value is not valid.
type Dictionary struct {
	symbols  []rune
	policy   Policy
	padding  *rune
	toIndex  map[rune]int
	fast     [fastTableSize]int32
	hasFast  bool
	rangeLo  rune
	hasRange bool
}

// Base returns the radix of the Dictionary: 256 for ByteRange, otherwise
// the number of symbols.
func (d *Dictionary) Base() int {
	if d.policy == ByteRange {
		return 256
	}
	return len(d.symbols)
}

// Policy returns the Dictionary's encoding policy.
func (d *Dictionary) Policy() Policy { return d.policy }

// Padding returns the padding scalar, if configured.
func (d *Dictionary) Padding() (rune, bool) {
	if d.padding == nil {
		return 0, false
	}
	return *d.padding, true
}

// RangeStart returns the ByteRange starting code point. It is only valid
// when Policy() == ByteRange.
func (d *Dictionary) RangeStart() (rune, bool) {
	if !d.hasRange {
		return 0, false
	}
	return d.rangeLo, true
}

// Symbols returns a copy of the ordered symbol list. For ByteRange
// dictionaries this is empty; the range is described by RangeStart
// instead.
func (d *Dictionary) Symbols() []rune {
	return slices.Clone(d.symbols)
}

// String returns a compact debug representation.
func (d *Dictionary) String() string {
	return fmt.Sprintf("Dictionary{base=%d,policy=%s}", d.Base(), d.policy)
}

// EncodeDigit maps a digit in [0, Base()) to its output scalar. It
// returns false if the digit is out of range.
func (d *Dictionary) EncodeDigit(i int) (rune, bool) {
	if d.policy == ByteRange {
		if i < 0 || i >= 256 {
			return 0, false
		}
		return d.rangeLo + rune(i), true
	}
	if i < 0 || i >= len(d.symbols) {
		return 0, false
	}
	return d.symbols[i], true
}

// DecodeDigit maps an output scalar back to its digit, consulting the
// fast table when available and falling back to the sparse map
// otherwise. It returns false if c is not part of the Dictionary.
func (d *Dictionary) DecodeDigit(c rune) (int, bool) {
	if d.policy == ByteRange {
		if c >= d.rangeLo && c < d.rangeLo+256 {
			return int(c - d.rangeLo), true
		}
		return 0, false
	}
	if d.hasFast && c >= 0 && int(c) < fastTableSize {
		idx := d.fast[c]
		if idx == noIndex {
			return 0, false
		}
		return int(idx), true
	}
	idx, ok := d.toIndex[c]
	return idx, ok
}

// ValidationError describes why a Dictionary could not be constructed.
// It names the offending rune (when applicable) and its code point so
// callers can produce an actionable diagnostic.
type ValidationError struct {
	Reason  string
	Rune    rune
	HasRune bool
}

func (e *ValidationError) Error() string {
	if e.HasRune {
		return fmt.Sprintf("dictionary: %s: %q (U+%04X)", e.Reason, e.Rune, e.Rune)
	}
	return fmt.Sprintf("dictionary: %s", e.Reason)
}

func errReason(reason string) error {
	return &ValidationError{Reason: reason}
}

func errRune(reason string, r rune) error {
	return &ValidationError{Reason: reason, Rune: r, HasRune: true}
}

// validChunkedBases are the power-of-two alphabet sizes the Chunked
// policy accepts (k = log2(B) in 1..8).
var validChunkedBases = map[int]bool{
	2: true, 4: true, 8: true, 16: true, 32: true, 64: true, 128: true, 256: true,
}

// isAllowedControl reports whether r may appear in an alphabet despite
// being a control character: only tab, LF and CR are allowed.
func isAllowedControl(r rune) bool {
	return r == '\t' || r == '\n' || r == '\r'
}

// isValidScalar reports whether cp is a valid Unicode scalar value: in
// range and not a surrogate code point (surrogates are not valid runes
// on their own).
func isValidScalar(cp rune) bool {
	return cp >= 0 && cp <= 0x10FFFF && !(cp >= 0xD800 && cp <= 0xDFFF)
}

// New validates symbols/policy/padding/rangeStart and, if valid, returns
// an immutable Dictionary. This is the Go shape of the spec's
// validate_dictionary operation.
//
// For ByteRange, symbols must be empty and rangeStart must be non-nil;
// for BaseConversion/Chunked, rangeStart must be nil.
func New(symbols []rune, policy Policy, padding *rune, rangeStart *rune) (*Dictionary, error) {
	if policy == ByteRange {
		return newByteRange(padding, rangeStart)
	}
	if rangeStart != nil {
		return nil, errReason("range_start is only valid for the ByteRange policy")
	}
	return newSymbolDictionary(symbols, policy, padding)
}

func newByteRange(padding *rune, rangeStart *rune) (*Dictionary, error) {
	if padding != nil {
		return nil, errReason("padding is not allowed for the ByteRange policy")
	}
	if rangeStart == nil {
		return nil, errReason("ByteRange policy requires range_start")
	}
	start := *rangeStart
	end := start + 255
	if !isValidScalar(end) {
		return nil, errRune("range_start+255 is not a valid Unicode scalar value", end)
	}
	for offset := rune(0); offset <= 255; offset++ {
		if !isValidScalar(start + offset) {
			return nil, errRune("range_start produces an invalid Unicode scalar value within the 256-byte range", start+offset)
		}
	}
	return &Dictionary{policy: ByteRange, rangeLo: start, hasRange: true}, nil
}

func newSymbolDictionary(symbols []rune, policy Policy, padding *rune) (*Dictionary, error) {
	if len(symbols) == 0 {
		return nil, errReason("alphabet cannot be empty")
	}
	if len(symbols) < 2 {
		return nil, errReason("alphabet must contain more than one symbol")
	}
	if len(symbols) > 256 {
		return nil, errReason(fmt.Sprintf("alphabet cannot exceed 256 symbols, got %d", len(symbols)))
	}
	base := len(symbols)
	if policy == Chunked && !validChunkedBases[base] {
		return nil, errReason(fmt.Sprintf("chunked policy requires a power-of-two alphabet size in {2,4,8,16,32,64,128,256}, got %d", base))
	}

	toIndex := make(map[rune]int, base)
	for i, c := range symbols {
		if _, dup := toIndex[c]; dup {
			return nil, errRune("duplicate symbol in alphabet", c)
		}
		if unicode.IsControl(c) && !isAllowedControl(c) {
			return nil, errRune("control character not allowed in alphabet", c)
		}
		if unicode.IsSpace(c) && !isAllowedControl(c) {
			return nil, errRune("whitespace character not allowed in alphabet", c)
		}
		toIndex[c] = i
	}

	if padding != nil {
		pad := *padding
		if _, exists := toIndex[pad]; exists {
			return nil, errRune("padding character conflicts with an alphabet symbol", pad)
		}
		if unicode.IsControl(pad) && !isAllowedControl(pad) {
			return nil, errRune("control character not allowed as padding", pad)
		}
	}

	d := &Dictionary{
		symbols: slices.Clone(symbols),
		policy:  policy,
		padding: padding,
		toIndex: maps.Clone(toIndex),
	}

	allFast := true
	for _, c := range symbols {
		if c < 0 || int(c) >= fastTableSize {
			allFast = false
			break
		}
	}
	if allFast {
		for i := range d.fast {
			d.fast[i] = noIndex
		}
		for i, c := range symbols {
			d.fast[c] = int32(i)
		}
		d.hasFast = true
	}

	return d, nil
}
