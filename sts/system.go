// SPDX-License-Identifier: MIT
package sts

import (
	"fmt"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"
)

// Block is a triple of distinct points in ascending order.
type Block [3]int

// NewBlock sorts three points into a Block.
func NewBlock(a, b, c int) Block {
	x := Block{a, b, c}
	sort.Ints(x[:])
	return x
}

// pairs returns the three pairs of the block.
func (b Block) pairs() [3][2]int {
	return [3][2]int{{b[0], b[1]}, {b[0], b[2]}, {b[1], b[2]}}
}

// EventKind tells adds from switches.
type EventKind int

const (
	// EventAdd is a new block.
	EventAdd EventKind = iota + 1
	// EventSwitch is a block replacement.
	EventSwitch
)

// Event is reported to the observer after every change.
type Event struct {
	Kind     EventKind
	Block    Block
	Replaced Block // set for EventSwitch
	Blocks   int
}

// System is a partial Steiner triple system under construction.
// It implements search.Problem[Block] and search.Switcher.
type System struct {
	v       int
	target  int
	rows    []*roaring.Bitmap // rows[x] = uncovered partners of x
	blockOf [][]int           // blockOf[x][y] = index of covering block, -1 if live
	blocks  []Block
	cfg     config
}

// ValidOrder reports whether an STS(v) exists.
func ValidOrder(v int) bool {
	return v >= 1 && (v%6 == 1 || v%6 == 3)
}

// NewSystem prepares an empty system on v points.
func NewSystem(v int, opts ...Option) (*System, error) {
	if !ValidOrder(v) {
		return nil, fmt.Errorf("NewSystem: v=%d: %w", v, ErrInvalidOrder)
	}
	s := &System{
		v:       v,
		target:  v * (v - 1) / 6,
		rows:    make([]*roaring.Bitmap, v),
		blockOf: make([][]int, v),
		blocks:  make([]Block, 0, v*(v-1)/6),
		cfg:     newConfig(opts...),
	}
	for x := 0; x < v; x++ {
		s.rows[x] = roaring.New()
		s.rows[x].AddRange(0, uint64(v))
		s.rows[x].Remove(uint32(x))
		s.blockOf[x] = make([]int, v)
		for y := range s.blockOf[x] {
			s.blockOf[x][y] = -1
		}
	}
	return s, nil
}

// Order is the number of points.
func (s *System) Order() int { return s.v }

// Blocks returns a copy of the current blocks in insertion slot order.
func (s *System) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// LivePairs counts uncovered pairs.
func (s *System) LivePairs() int {
	var n uint64
	for _, r := range s.rows {
		n += r.GetCardinality()
	}
	return int(n / 2)
}

// Done reports whether the system has v(v-1)/6 blocks.
func (s *System) Done() bool { return len(s.blocks) >= s.target }

// Select returns a live block. Its gain is the number of pairs it covers.
func (s *System) Select() (Block, int64, bool) {
	if s.cfg.randomBlocks {
		return s.selectRandom()
	}
	for a := 0; a < s.v; a++ {
		it := s.rows[a].Iterator()
		for it.HasNext() {
			b := int(it.Next())
			if b < a {
				continue
			}
			common := roaring.And(s.rows[a], s.rows[b])
			if !common.IsEmpty() {
				return NewBlock(a, b, int(common.Minimum())), 3, true
			}
		}
	}
	return Block{}, 0, false
}

// selectRandom scans live pairs in random order and completes the first
// that admits a third point, choosing that point at random.
func (s *System) selectRandom() (Block, int64, bool) {
	live := s.livePairs()
	s.cfg.rng.Shuffle(len(live), func(i, j int) { live[i], live[j] = live[j], live[i] })
	for _, p := range live {
		common := roaring.And(s.rows[p[0]], s.rows[p[1]])
		card := common.GetCardinality()
		if card == 0 {
			continue
		}
		c, err := common.Select(uint32(s.cfg.rng.Int63n(int64(card))))
		if err != nil {
			continue
		}
		return NewBlock(p[0], p[1], int(c)), 3, true
	}
	return Block{}, 0, false
}

// livePairs lists uncovered pairs (a<b) in lexicographic order.
func (s *System) livePairs() [][2]int {
	var out [][2]int
	for a := 0; a < s.v; a++ {
		it := s.rows[a].Iterator()
		for it.HasNext() {
			if b := int(it.Next()); b > a {
				out = append(out, [2]int{a, b})
			}
		}
	}
	return out
}

// Commit adds b; all three of its pairs must be live.
func (s *System) Commit(b Block) error {
	if err := s.checkBlock(b); err != nil {
		return fmt.Errorf("System.Commit: %w", err)
	}
	for _, p := range b.pairs() {
		if s.blockOf[p[0]][p[1]] >= 0 {
			return fmt.Errorf("System.Commit: %v pair %v: %w", b, p, ErrPairCovered)
		}
	}
	s.blocks = append(s.blocks, b)
	s.cover(b, len(s.blocks)-1)
	s.notify(Event{Kind: EventAdd, Block: b, Blocks: len(s.blocks)})
	return nil
}

// Switch applies one random switch move. It returns false when no live pair
// exists or the structure does not admit the move.
func (s *System) Switch() (bool, error) {
	live := s.livePairs()
	if len(live) == 0 {
		return false, nil
	}
	rng := s.cfg.rng
	p := live[rng.Intn(len(live))]
	a, b := p[0], p[1]
	if rng.Intn(2) == 1 {
		a, b = b, a
	}

	var cands []int
	it := s.rows[a].Iterator()
	for it.HasNext() {
		if c := int(it.Next()); c != b {
			cands = append(cands, c)
		}
	}
	if len(cands) == 0 {
		return false, nil
	}
	c := cands[rng.Intn(len(cands))]
	idx := s.blockOf[b][c]
	if idx < 0 {
		// {a,b,c} is itself live; nothing to replace.
		return false, nil
	}

	old := s.blocks[idx]
	s.uncover(old)
	nb := NewBlock(a, b, c)
	s.blocks[idx] = nb
	s.cover(nb, idx)
	s.notify(Event{Kind: EventSwitch, Block: nb, Replaced: old, Blocks: len(s.blocks)})
	return true, nil
}

func (s *System) checkBlock(b Block) error {
	for _, x := range b {
		if x < 0 || x >= s.v {
			return fmt.Errorf("%v: point %d out of range: %w", b, x, ErrBadBlock)
		}
	}
	if b[0] == b[1] || b[0] == b[2] || b[1] == b[2] {
		return fmt.Errorf("%v: repeated point: %w", b, ErrBadBlock)
	}
	return nil
}

func (s *System) cover(b Block, idx int) {
	for _, p := range b.pairs() {
		x, y := p[0], p[1]
		s.blockOf[x][y], s.blockOf[y][x] = idx, idx
		s.rows[x].Remove(uint32(y))
		s.rows[y].Remove(uint32(x))
	}
}

func (s *System) uncover(b Block) {
	for _, p := range b.pairs() {
		x, y := p[0], p[1]
		s.blockOf[x][y], s.blockOf[y][x] = -1, -1
		s.rows[x].Add(uint32(y))
		s.rows[y].Add(uint32(x))
	}
}

func (s *System) notify(e Event) {
	if s.cfg.observer != nil {
		s.cfg.observer(e)
	}
}
