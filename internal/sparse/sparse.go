// Package sparse provides a sparse set over dense uint32 universes.
//
// The nfa package assigns state identities as consecutive arena indices, so
// a visited set for graph walks wants O(1) insert and membership without
// hashing. The set keeps a sparse index array plus a dense member array;
// the dense array doubles as the discovery-order sequence of a traversal.
package sparse

// Set is a set of uint32 values below a fixed capacity.
type Set struct {
	sparse []uint32 // value -> index into dense
	dense  []uint32 // members in insertion order
}

// NewSet creates a set able to hold values in [0, capacity).
func NewSet(capacity uint32) *Set {
	return &Set{
		sparse: make([]uint32, capacity),
		dense:  make([]uint32, 0, capacity),
	}
}

// Insert adds a value to the set; inserting a member again is a no-op.
// Values at or above the capacity are ignored.
func (s *Set) Insert(value uint32) {
	if value >= uint32(len(s.sparse)) || s.Contains(value) {
		return
	}
	s.sparse[value] = uint32(len(s.dense))
	s.dense = append(s.dense, value)
}

// Contains returns true if the value is a member.
func (s *Set) Contains(value uint32) bool {
	if value >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[value]
	return idx < uint32(len(s.dense)) && s.dense[idx] == value
}

// Len returns the number of members.
func (s *Set) Len() int {
	return len(s.dense)
}

// Dense returns the members in insertion order.
// The returned slice is valid until the next Insert or Clear.
func (s *Set) Dense() []uint32 {
	return s.dense
}

// Clear removes all members in O(1) time.
func (s *Set) Clear() {
	s.dense = s.dense[:0]
}
