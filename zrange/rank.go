package zrange

// RankRange describes an index interval for rank-based commands. Both ends
// are inclusive and negative indexes count from the tail, matching the
// server semantics; no encoding is needed beyond the decimal text the
// driver writes itself.
type RankRange struct {
	Start int64
	Stop  int64
}

// Rank builds the rank range [start, stop].
func Rank(start, stop int64) RankRange {
	return RankRange{Start: start, Stop: stop}
}

// AllRanks covers the whole collection.
func AllRanks() RankRange {
	return Rank(0, -1)
}
