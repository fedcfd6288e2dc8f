package search

import (
	"fmt"
	"math"
	"strings"
	"sync/atomic"
)

// TieBreak decides which match wins when several infixes hit the target.
type TieBreak int

const (
	// LowestIndex returns the match with the smallest index, independent of
	// scheduling.
	LowestIndex TieBreak = iota
	// FirstFound returns whichever match is claimed first and stops every
	// worker immediately.
	FirstFound
)

func (t TieBreak) String() string {
	switch t {
	case LowestIndex:
		return "lowest"
	case FirstFound:
		return "first"
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak accepts "lowest" or "first". The empty string means lowest.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(s) {
	case "", "lowest":
		return LowestIndex, nil
	case "first":
		return FirstFound, nil
	default:
		return 0, fmt.Errorf("unknown tie-break policy %q", s)
	}
}

// noClaim is above every valid index since indices are < K^L <= MaxUint64.
const noClaim = math.MaxUint64

// claim is the single result slot shared by all workers.
type claim struct {
	index atomic.Uint64
}

func newClaim() *claim {
	c := &claim{}
	c.index.Store(noClaim)
	return c
}

func (c *claim) load() uint64 {
	return c.index.Load()
}

func (c *claim) claimed() (uint64, bool) {
	i := c.load()
	return i, i != noClaim
}

// first stores i if nothing has been claimed yet and reports whether it won.
func (c *claim) first(i uint64) bool {
	return c.index.CompareAndSwap(noClaim, i)
}

// lowest lowers the claim to i and reports whether i is now the claim.
func (c *claim) lowest(i uint64) bool {
	for {
		cur := c.index.Load()
		if i >= cur {
			return false
		}
		if c.index.CompareAndSwap(cur, i) {
			return true
		}
	}
}
