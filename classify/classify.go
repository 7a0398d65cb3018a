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

// Package classify analyzes a Dictionary and produces the structural
// metadata (DictionaryMetadata) the dispatch engine uses to pick a codec.
// Classify is pure and deterministic: two invocations against the same
// Dictionary always return equal metadata.
package classify

import (
	"golang.org/x/exp/slices"

	"github.com/coryzibell/based/dictionary"
)

// StrategyKind is the structural strategy the Classifier assigns to a
// Dictionary. Kept as a tagged variant (this type plus the relevant
// fields on Strategy) rather than an interface, so dispatch can switch
// on it directly instead of paying for a virtual call per block.
type StrategyKind int

const (
	Sequential StrategyKind = iota
	GappedSequential
	Ranged
	Arbitrary
)

func (k StrategyKind) String() string {
	switch k {
	case Sequential:
		return "Sequential"
	case GappedSequential:
		return "GappedSequential"
	case Ranged:
		return "Ranged"
	default:
		return "Arbitrary"
	}
}

// Strategy is the tagged-variant result of classifying a Dictionary's
// symbol layout. Only the fields relevant to Kind are populated.
type Strategy struct {
	Kind StrategyKind

	// Sequential
	Start rune

	// GappedSequential
	BaseOffset  rune
	Thresholds  []int // post-gap indices, ascending
	Adjustments []int // cumulative code-point adjustment at each threshold

	// Ranged
	Info RangeInfo
}

// LutClass buckets a non-Sequential Dictionary by the table shape its
// Arbitrary-LUT translation kernel would need.
type LutClass int

const (
	LutNone LutClass = iota
	LutSmallDirect            // base <= 16: single 16-byte shuffle table
	LutLargePlatformDependent // 17 <= base <= 64
)

// ContiguousRange is a maximal run of symbols with consecutive code
// points.
type ContiguousRange struct {
	FirstIndex     int
	LastIndex      int
	FirstCodePoint rune
}

// Len returns the number of indices the range covers.
func (r ContiguousRange) Len() int { return r.LastIndex - r.FirstIndex + 1 }

// Offset returns the additive constant such that, for any index i in
// [FirstIndex, LastIndex], the symbol's code point equals i + Offset().
func (r ContiguousRange) Offset() int { return int(r.FirstCodePoint) - r.FirstIndex }

// DictionaryMetadata is the derived, cacheable classification of a
// Dictionary.
type DictionaryMetadata struct {
	Base             int
	BitsPerSymbol    int
	AllASCII         bool
	ContiguousRanges []ContiguousRange
	Strategy         Strategy
	LutClass         LutClass
}

// maxGapBudget is G in spec.md: the maximum total number of missing code
// points a GappedSequential alphabet may have.
const maxGapBudget = 8

// maxRangedRuns is the largest number of contiguous runs the Range-
// Reduced strategy supports (spec.md §4.5, §9: 6+ runs are elided).
const maxRangedRuns = 5

// Classify derives DictionaryMetadata for dict. It is pure: calling it
// twice on the same Dictionary returns equal results.
func Classify(dict *dictionary.Dictionary) DictionaryMetadata {
	if dict.Policy() == dictionary.ByteRange {
		start, _ := dict.RangeStart()
		return DictionaryMetadata{
			Base:          256,
			BitsPerSymbol: 8,
			AllASCII:      false,
			ContiguousRanges: []ContiguousRange{
				{FirstIndex: 0, LastIndex: 255, FirstCodePoint: start},
			},
			Strategy: Strategy{Kind: Sequential, Start: start},
			LutClass: LutNone,
		}
	}

	symbols := dict.Symbols()
	base := len(symbols)
	bits := bitsPerSymbol(base)
	allASCII := true
	for _, c := range symbols {
		if c >= 128 {
			allASCII = false
			break
		}
	}

	ranges := contiguousRanges(symbols)
	strategy := classifyStrategy(symbols, ranges, allASCII)

	lutClass := LutNone
	if (bits == 4 || bits == 5 || bits == 6) && strategy.Kind != Sequential {
		if base <= 16 {
			lutClass = LutSmallDirect
		} else if base <= 64 {
			lutClass = LutLargePlatformDependent
		}
	}

	return DictionaryMetadata{
		Base:             base,
		BitsPerSymbol:    bits,
		AllASCII:         allASCII,
		ContiguousRanges: ranges,
		Strategy:         strategy,
		LutClass:         lutClass,
	}
}

func bitsPerSymbol(base int) int {
	if base <= 0 || base&(base-1) != 0 {
		return 0
	}
	bits := 0
	for base > 1 {
		base >>= 1
		bits++
	}
	return bits
}

// contiguousRanges scans symbols once, opening a new range whenever the
// code point does not continue the previous one.
func contiguousRanges(symbols []rune) []ContiguousRange {
	if len(symbols) == 0 {
		return nil
	}
	var ranges []ContiguousRange
	start := 0
	for i := 1; i <= len(symbols); i++ {
		brokeRun := i == len(symbols) || symbols[i] != symbols[i-1]+1
		if brokeRun {
			ranges = append(ranges, ContiguousRange{
				FirstIndex:     start,
				LastIndex:      i - 1,
				FirstCodePoint: symbols[start],
			})
			start = i
		}
	}
	return ranges
}

func classifyStrategy(symbols []rune, ranges []ContiguousRange, allASCII bool) Strategy {
	if len(ranges) == 1 {
		return Strategy{Kind: Sequential, Start: symbols[0]}
	}

	if allASCII {
		if gapped, ok := tryGappedSequential(symbols, ranges); ok {
			return gapped
		}
		if len(ranges) >= 2 && len(ranges) <= maxRangedRuns {
			if info, ok := BuildRangeInfo(ranges); ok {
				return Strategy{Kind: Ranged, Info: info}
			}
		}
	}

	return Strategy{Kind: Arbitrary}
}

// tryGappedSequential classifies a Dictionary as GappedSequential when
// the total number of missing code points between the first and last
// symbol is at most maxGapBudget.
func tryGappedSequential(symbols []rune, ranges []ContiguousRange) (Strategy, bool) {
	if len(ranges) < 2 {
		return Strategy{}, false
	}

	thresholds := make([]int, 0, len(ranges)-1)
	adjustments := make([]int, 0, len(ranges)-1)
	cumulative := 0

	for i := 1; i < len(ranges); i++ {
		gap := int(ranges[i].FirstCodePoint) - int(ranges[i-1].FirstCodePoint) - ranges[i-1].Len()
		if gap <= 0 {
			// A run that starts at or below the end of the previous run
			// (e.g. '2'-'7' after 'A'-'Z') has no forward gap to add,
			// so the alphabet is not GappedSequential.
			return Strategy{}, false
		}
		cumulative += gap
		thresholds = append(thresholds, ranges[i].FirstIndex)
		adjustments = append(adjustments, cumulative)
	}

	if cumulative > maxGapBudget {
		return Strategy{}, false
	}

	slices.Sort(thresholds)
	return Strategy{
		Kind:        GappedSequential,
		BaseOffset:  symbols[0],
		Thresholds:  thresholds,
		Adjustments: adjustments,
	}, true
}
