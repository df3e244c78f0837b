package orderedset

import "slices"

// OrderedSet is a set of comparable members that remembers insertion order.
// Iteration via Values follows the order in which members were first added.
// Not safe for concurrent use.
type OrderedSet[T comparable] struct {
	members map[T]struct{}
	order   []T
}

func New[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		members: make(map[T]struct{}),
	}
}

// Add inserts v and reports whether it was absent before the call.
func (s *OrderedSet[T]) Add(v T) bool {
	if _, ok := s.members[v]; ok {
		return false
	}
	s.members[v] = struct{}{}
	s.order = append(s.order, v)
	return true
}

// Remove deletes v and reports whether it was present.
// The relative order of the remaining members is preserved.
func (s *OrderedSet[T]) Remove(v T) bool {
	if _, ok := s.members[v]; !ok {
		return false
	}
	delete(s.members, v)
	idx := slices.Index(s.order, v)
	s.order = slices.Delete(s.order, idx, idx+1)
	return true
}

func (s *OrderedSet[T]) Contains(v T) bool {
	_, ok := s.members[v]
	return ok
}

func (s *OrderedSet[T]) Len() int {
	return len(s.order)
}

// Values returns the members in insertion order. The slice is a copy; the
// caller may mutate it freely.
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.order)
}

// Equal reports membership equality. Insertion order does not participate:
// two sets holding the same members in different orders are equal.
func (s *OrderedSet[T]) Equal(other *OrderedSet[T]) bool {
	if s == other {
		return true
	}
	if other == nil || len(s.members) != len(other.members) {
		return false
	}
	for v := range s.members {
		if _, ok := other.members[v]; !ok {
			return false
		}
	}
	return true
}
