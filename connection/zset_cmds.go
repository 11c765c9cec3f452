package connection

import (
	"github.com/xuenqlve/rediskit/errors"
)

// Member is one sorted-set entry with its score.
type Member struct {
	Member string
	Score  float64
}

// Aggregate selects how ZUnionStore/ZInterStore combine scores.
type Aggregate string

const (
	AggregateSum Aggregate = "sum"
	AggregateMin Aggregate = "min"
	AggregateMax Aggregate = "max"
)

// Limit restricts a by-score or by-lex range to count members starting at
// offset. The zero value means no restriction.
type Limit struct {
	Offset int64
	Count  int64
}

// ZAddCmd is the immutable argument object for ZAdd variants. Each with-style
// method returns a modified copy, mirroring the builder surface of the
// server's ZADD options.
type ZAddCmd struct {
	key     string
	members []Member
	nx      bool
	xx      bool
	ch      bool
}

// ZAddMembers starts a ZAddCmd for the given entries.
func ZAddMembers(members ...Member) ZAddCmd {
	return ZAddCmd{members: members}
}

// To selects the destination key.
func (z ZAddCmd) To(key string) ZAddCmd {
	z.key = key
	return z
}

// NX only adds new members, never updating existing scores.
func (z ZAddCmd) NX() ZAddCmd {
	z.nx = true
	z.xx = false
	return z
}

// XX only updates existing members, never adding new ones.
func (z ZAddCmd) XX() ZAddCmd {
	z.xx = true
	z.nx = false
	return z
}

// CH makes the reply count changed members instead of only added ones.
func (z ZAddCmd) CH() ZAddCmd {
	z.ch = true
	return z
}

// ZStoreCmd is the immutable argument object for ZUnionStore/ZInterStore.
type ZStoreCmd struct {
	destination string
	keys        []string
	weights     []float64
	aggregate   Aggregate
}

// ZStoreKeys starts a ZStoreCmd over the given source sets.
func ZStoreKeys(keys ...string) ZStoreCmd {
	return ZStoreCmd{keys: keys}
}

// Weights applies one multiplier per source set. An empty list keeps the
// server default.
func (z ZStoreCmd) Weights(weights ...float64) ZStoreCmd {
	z.weights = weights
	return z
}

// AggregateUsing selects the combine function; empty keeps the server
// default (sum).
func (z ZStoreCmd) AggregateUsing(aggregate Aggregate) ZStoreCmd {
	z.aggregate = aggregate
	return z
}

// StoreAs selects the destination key.
func (z ZStoreCmd) StoreAs(destination string) ZStoreCmd {
	z.destination = destination
	return z
}

func (z ZStoreCmd) validate() error {
	if z.destination == "" {
		return errors.NewErrorMessage(errors.ErrCodeValidate, "store destination key is empty")
	}
	if len(z.keys) == 0 {
		return errors.NewErrorMessage(errors.ErrCodeValidate, "store needs at least one source key")
	}
	if len(z.weights) > 0 && len(z.weights) != len(z.keys) {
		return errors.NewErrorMessage(errors.ErrCodeValidate, "weights count does not match source key count")
	}
	return nil
}
