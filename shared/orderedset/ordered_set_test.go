package orderedset_test

import (
	"testing"

	"github.com/boredmathematician/tabular_go/shared/orderedset"
	"github.com/stretchr/testify/assert"
)

func TestOrderedSet_AddKeepsInsertionOrder(t *testing.T) {
	s := orderedset.New[string]()

	for _, v := range []string{"c", "a", "b"} {
		assert.True(t, s.Add(v))
	}
	assert.False(t, s.Add("a"), "re-adding an existing member must be a no-op")

	assert.Equal(t, []string{"c", "a", "b"}, s.Values())
	assert.Equal(t, 3, s.Len())
}

func TestOrderedSet_RemovePreservesRemainingOrder(t *testing.T) {
	s := orderedset.New[int]()
	for _, v := range []int{10, 5, 7, 3} {
		s.Add(v)
	}

	assert.True(t, s.Remove(5))
	assert.False(t, s.Remove(5))
	assert.False(t, s.Remove(42))

	assert.Equal(t, []int{10, 7, 3}, s.Values())
	assert.False(t, s.Contains(5))
	assert.True(t, s.Contains(7))
}

func TestOrderedSet_AddAfterRemoveMovesToEnd(t *testing.T) {
	s := orderedset.New[string]()
	s.Add("a")
	s.Add("b")

	s.Remove("a")
	assert.True(t, s.Add("a"))

	assert.Equal(t, []string{"b", "a"}, s.Values())
}

func TestOrderedSet_EqualIgnoresOrder(t *testing.T) {
	a := orderedset.New[string]()
	b := orderedset.New[string]()

	a.Add("x")
	a.Add("y")
	b.Add("y")
	b.Add("x")

	assert.True(t, a.Equal(b))

	b.Add("z")
	assert.False(t, a.Equal(b))
	assert.False(t, a.Equal(nil))
}

func TestOrderedSet_ValuesIsACopy(t *testing.T) {
	s := orderedset.New[string]()
	s.Add("a")
	s.Add("b")

	vals := s.Values()
	vals[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, s.Values())
}
