// Package zrange encodes sorted-set range boundaries into the textual
// tokens the server's range-query grammar expects. All types are immutable
// values: the with-style setters return copies, encoding is pure and safe
// for concurrent use.
package zrange

import (
	"math"
	"strconv"

	"github.com/xuenqlve/rediskit/errors"
)

// Sentinels for unbounded score boundaries.
var (
	NegInf = math.Inf(-1)
	Inf    = math.Inf(1)
)

// ScoreRange describes a score interval. The zero value of the exclusive
// flags means both boundaries are inclusive.
type ScoreRange struct {
	Min          float64
	Max          float64
	MinExclusive bool
	MaxExclusive bool
}

// Score builds an inclusive score range [min, max].
func Score(min, max float64) ScoreRange {
	return ScoreRange{Min: min, Max: max}
}

// AllScores builds the unbounded range (-inf, +inf).
func AllScores() ScoreRange {
	return Score(NegInf, Inf)
}

func (r ScoreRange) ExcludeMin() ScoreRange {
	r.MinExclusive = true
	return r
}

func (r ScoreRange) ExcludeMax() ScoreRange {
	r.MaxExclusive = true
	return r
}

// MinToken renders the lower boundary argument.
func (r ScoreRange) MinToken() string {
	return encodeScore(r.Min, !r.MinExclusive)
}

// MaxToken renders the upper boundary argument.
func (r ScoreRange) MaxToken() string {
	return encodeScore(r.Max, !r.MaxExclusive)
}

// Validate reports a bound that is no usable number. NaN is the only value
// of float64 the encoding cannot express; infinities are the unbounded
// sentinels and every other value renders fine.
func (r ScoreRange) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return errors.ErrInvalidBound
	}
	return nil
}

// encodeScore turns one boundary into its wire token. Infinity tokens carry
// no exclusivity marker, so the inclusive flag is ignored for them.
func encodeScore(value float64, inclusive bool) string {
	if math.IsInf(value, -1) {
		return "-inf"
	}
	if math.IsInf(value, 1) {
		return "+inf"
	}
	s := strconv.FormatFloat(value, 'g', -1, 64)
	if !inclusive {
		return "(" + s
	}
	return s
}
