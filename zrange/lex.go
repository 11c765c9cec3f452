package zrange

// LexRange describes a lexicographical member interval. Unbounded sides
// encode to the server's "-" / "+" tokens, finite bounds to "[member" or
// "(member" depending on the exclusive flag.
type LexRange struct {
	Min          string
	Max          string
	MinUnbounded bool
	MaxUnbounded bool
	MinExclusive bool
	MaxExclusive bool
}

// Lex builds an inclusive lexical range [min, max].
func Lex(min, max string) LexRange {
	return LexRange{Min: min, Max: max}
}

// AllLex builds the unbounded lexical range.
func AllLex() LexRange {
	return LexRange{MinUnbounded: true, MaxUnbounded: true}
}

func (r LexRange) ExcludeMin() LexRange {
	r.MinExclusive = true
	return r
}

func (r LexRange) ExcludeMax() LexRange {
	r.MaxExclusive = true
	return r
}

func (r LexRange) MinToken() string {
	if r.MinUnbounded {
		return "-"
	}
	return encodeLex(r.Min, !r.MinExclusive)
}

func (r LexRange) MaxToken() string {
	if r.MaxUnbounded {
		return "+"
	}
	return encodeLex(r.Max, !r.MaxExclusive)
}

func encodeLex(value string, inclusive bool) string {
	if inclusive {
		return "[" + value
	}
	return "(" + value
}
