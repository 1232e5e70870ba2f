package domain

import "math/bits"

// ValueSet is a set of values 1..n backed by a bitset. It holds cell
// candidates, learned exclusions, and validator masks without capping the
// box dimension the way a single machine word would.
type ValueSet struct {
	words []uint64
}

// NewValueSet returns an empty set able to hold values 1..n.
func NewValueSet(n int) ValueSet {
	return ValueSet{words: make([]uint64, (n+63)/64)}
}

// FullValueSet returns the set {1..n}.
func FullValueSet(n int) ValueSet {
	s := NewValueSet(n)
	for w := range s.words {
		s.words[w] = ^uint64(0)
	}
	if rem := n % 64; rem != 0 {
		s.words[len(s.words)-1] = (uint64(1) << rem) - 1
	}
	return s
}

func (s ValueSet) Add(v int)      { s.words[(v-1)/64] |= 1 << uint((v-1)%64) }
func (s ValueSet) Remove(v int)   { s.words[(v-1)/64] &^= 1 << uint((v-1)%64) }
func (s ValueSet) Has(v int) bool { return s.words[(v-1)/64]&(1<<uint((v-1)%64)) != 0 }

// Len returns the number of values in the set.
func (s ValueSet) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// Min returns the smallest value in the set, or 0 if it is empty.
func (s ValueSet) Min() int {
	for i, w := range s.words {
		if w != 0 {
			return i*64 + bits.TrailingZeros64(w) + 1
		}
	}
	return 0
}

// Values returns the members in ascending order.
func (s ValueSet) Values() []int {
	out := make([]int, 0, s.Len())
	for i, w := range s.words {
		for w != 0 {
			out = append(out, i*64+bits.TrailingZeros64(w)+1)
			w &= w - 1
		}
	}
	return out
}

// Subtract removes every member of other from s.
func (s ValueSet) Subtract(other ValueSet) {
	for i := range s.words {
		if i < len(other.words) {
			s.words[i] &^= other.words[i]
		}
	}
}

// Clone returns an independent copy.
func (s ValueSet) Clone() ValueSet {
	return ValueSet{words: append([]uint64(nil), s.words...)}
}
