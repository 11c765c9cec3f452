package transform

import (
	"math"
	"strconv"
	"strings"
)

const okReply = "OK"

// StatusToBool converts a status reply into the boolean the binding exposes.
func StatusToBool(status string) bool {
	return strings.EqualFold(status, okReply)
}

// ParseScore parses a score reply, accepting the server's infinity spellings.
func ParseScore(s string) (float64, error) {
	switch strings.ToLower(s) {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}
