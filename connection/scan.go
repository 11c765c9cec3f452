package connection

import (
	"context"
	"sync/atomic"

	"github.com/xuenqlve/rediskit/transform"
)

const defaultScanCount = 2048

// KeyStream walks the keyspace with the cursor command and delivers matches
// over a channel. The channel closes when the cursor is exhausted, the
// context ends or Close is called; Err reports a failed fetch afterwards.
type KeyStream struct {
	ctx    context.Context
	cancel context.CancelFunc
	conn   *Conn

	pattern string
	count   int64

	keys   chan string
	errs   chan error
	closed atomic.Bool
}

// ScanKeys starts streaming keys matching pattern. A count <= 0 uses the
// default cursor batch size.
func (c *Conn) ScanKeys(ctx context.Context, pattern string, count int64) *KeyStream {
	if count <= 0 {
		count = defaultScanCount
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &KeyStream{
		ctx:     ctx,
		cancel:  cancel,
		conn:    c,
		pattern: pattern,
		count:   count,
		keys:    make(chan string),
		errs:    make(chan error, 1),
	}
	go s.fetch()
	return s
}

func (s *KeyStream) fetch() {
	defer close(s.keys)
	var cursor uint64
	for {
		keys, next, err := s.conn.client.Scan(s.ctx, cursor, s.pattern, s.count).Result()
		if err != nil {
			if s.ctx.Err() == nil {
				s.errs <- err
			}
			return
		}
		for _, key := range keys {
			select {
			case s.keys <- key:
			case <-s.ctx.Done():
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func (s *KeyStream) Keys() <-chan string {
	return s.keys
}

// Err reports the fetch failure that ended the stream, if any.
func (s *KeyStream) Err() error {
	select {
	case err := <-s.errs:
		return err
	default:
		return nil
	}
}

func (s *KeyStream) Close() {
	if s.closed.CompareAndSwap(false, true) {
		s.cancel()
	}
}

// MemberStream walks one sorted set and delivers member/score tuples.
type MemberStream struct {
	ctx    context.Context
	cancel context.CancelFunc
	conn   *Conn

	key     string
	pattern string
	count   int64

	members chan Member
	errs    chan error
	closed  atomic.Bool
}

// ScanMembers starts streaming the tuples of the sorted set at key.
func (c *Conn) ScanMembers(ctx context.Context, key, pattern string, count int64) *MemberStream {
	if count <= 0 {
		count = defaultScanCount
	}
	ctx, cancel := context.WithCancel(ctx)
	s := &MemberStream{
		ctx:     ctx,
		cancel:  cancel,
		conn:    c,
		key:     key,
		pattern: pattern,
		count:   count,
		members: make(chan Member),
		errs:    make(chan error, 1),
	}
	go s.fetch()
	return s
}

func (s *MemberStream) fetch() {
	defer close(s.members)
	var cursor uint64
	for {
		// the cursor reply alternates member and score text
		pairs, next, err := s.conn.client.ZScan(s.ctx, s.key, cursor, s.pattern, s.count).Result()
		if err != nil {
			if s.ctx.Err() == nil {
				s.errs <- err
			}
			return
		}
		for i := 0; i+1 < len(pairs); i += 2 {
			score, err := transform.ParseScore(pairs[i+1])
			if err != nil {
				s.errs <- err
				return
			}
			select {
			case s.members <- Member{Member: pairs[i], Score: score}:
			case <-s.ctx.Done():
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

func (s *MemberStream) Members() <-chan Member {
	return s.members
}

func (s *MemberStream) Err() error {
	select {
	case err := <-s.errs:
		return err
	default:
		return nil
	}
}

func (s *MemberStream) Close() {
	if s.closed.CompareAndSwap(false, true) {
		s.cancel()
	}
}
