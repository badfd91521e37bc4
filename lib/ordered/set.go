package ordered

import (
	"fmt"
	"iter"

	"github.com/samber/lo"

	"github.com/benz9527/xcoll/lib/infra"
)

// elements holds the operations shared by Set and Multiset. Each element is
// stored as both its own key and its own value.
type elements[E any] struct {
	container[E, E]
}

// Insert returns the number of elements actually inserted. Sets silently
// reject elements already present.
func (s *elements[E]) Insert(elems ...E) int64 {
	inserted := int64(0)
	for _, e := range elems {
		if s.insert(e, e) {
			inserted++
		}
	}
	return inserted
}

// Remove deletes every copy of each element and returns the number of
// copies removed.
func (s *elements[E]) Remove(elems ...E) int64 {
	removed := int64(0)
	for _, e := range elems {
		removed += s.removeAll(e)
	}
	return removed
}

// Contains reports whether every element is present at least once.
func (s *elements[E]) Contains(elems ...E) bool {
	for _, e := range elems {
		if !s.tree.Contains(e) {
			return false
		}
	}
	return true
}

// At returns the element at sorted rank i, 0-indexed. It panics with
// *infra.ContractViolation if i is out of [0, Len()).
func (s *elements[E]) At(i int64) E {
	s.mustIndex("at", i)
	e, _ := s.tree.At(i)
	return e
}

func (s *elements[E]) First() (E, bool) {
	return s.first()
}

func (s *elements[E]) Last() (E, bool) {
	return s.last()
}

func (s *elements[E]) All() iter.Seq[E] {
	return s.keys()
}

func (s *elements[E]) Backward() iter.Seq[E] {
	return s.backwardKeys()
}

// Distinct yields each distinct element once, with its multiplicity.
func (s *elements[E]) Distinct() iter.Seq2[E, int64] {
	return s.distinct()
}

func (s *elements[E]) ToSlice() []E {
	res := make([]E, 0, s.Len())
	for e := range s.All() {
		res = append(res, e)
	}
	return res
}

func (s *elements[E]) String() string {
	return fmt.Sprintf("%s%v", s.kind, s.ToSlice())
}

// Set is an ordered set of unique elements.
// The algebra skips nil operands, the subset, disjoint and equality tests
// take a nil operand as the empty set.
type Set[E any] struct {
	elements[E]
}

func NewSet[E infra.OrderedKey](opts ...Option) *Set[E] {
	return NewSetFunc[E](infra.DefaultOrderedKeyComparator[E], opts...)
}

func NewSetFunc[E any](cmp infra.OrderedKeyComparator[E], opts ...Option) *Set[E] {
	return &Set[E]{
		elements: elements[E]{
			container: newContainer[E, E](cmp, kindSet, true, opts),
		},
	}
}

func SetOf[E infra.OrderedKey](elems ...E) *Set[E] {
	s := NewSet[E](WithInitCapacity(len(elems)))
	s.Insert(elems...)
	return s
}

func wrapSet[E any](c container[E, E]) *Set[E] {
	return &Set[E]{elements: elements[E]{container: c}}
}

func setContainers[E any](sets []*Set[E]) []*container[E, E] {
	return lo.FilterMap(sets, func(s *Set[E], _ int) (*container[E, E], bool) {
		if s == nil {
			return nil, false
		}
		return &s.container, true
	})
}

// operand treats a nil set as the empty set.
func (s *Set[E]) operand(other *Set[E]) *container[E, E] {
	if other == nil {
		empty := s.emptyLike()
		return &empty
	}
	return &other.container
}

func (s *Set[E]) Clone() *Set[E] {
	return wrapSet(s.clone())
}

func (s *Set[E]) Union(others ...*Set[E]) *Set[E] {
	return wrapSet(unionOf(&s.container, setContainers(others)))
}

func (s *Set[E]) Intersect(others ...*Set[E]) *Set[E] {
	return wrapSet(intersectOf(&s.container, setContainers(others)))
}

func (s *Set[E]) Subtract(others ...*Set[E]) *Set[E] {
	return wrapSet(subtractOf(&s.container, setContainers(others)))
}

func (s *Set[E]) UnionWith(others ...*Set[E]) {
	unionInto(&s.container, setContainers(others))
}

func (s *Set[E]) IntersectWith(others ...*Set[E]) {
	s.swap(intersectOf(&s.container, setContainers(others)))
}

func (s *Set[E]) SubtractWith(others ...*Set[E]) {
	s.swap(subtractOf(&s.container, setContainers(others)))
}

func (s *Set[E]) IsSubsetOf(other *Set[E]) bool {
	return isSubsetOf(&s.container, s.operand(other))
}

func (s *Set[E]) IsStrictSubsetOf(other *Set[E]) bool {
	return isStrictSubsetOf(&s.container, s.operand(other))
}

func (s *Set[E]) IsSupersetOf(other *Set[E]) bool {
	return isSubsetOf(s.operand(other), &s.container)
}

func (s *Set[E]) IsStrictSupersetOf(other *Set[E]) bool {
	return isStrictSubsetOf(s.operand(other), &s.container)
}

func (s *Set[E]) IsDisjointWith(other *Set[E]) bool {
	return isDisjointWith(&s.container, s.operand(other))
}

// Equal reports whether both sets hold the same elements.
func (s *Set[E]) Equal(other *Set[E]) bool {
	return isEqual(&s.container, s.operand(other))
}

// Multiset is an ordered collection of elements where duplicates accumulate.
// Remove drops every copy of an element; RemoveOne drops a single copy.
// nil operands behave as they do for Set.
type Multiset[E any] struct {
	elements[E]
}

func NewMultiset[E infra.OrderedKey](opts ...Option) *Multiset[E] {
	return NewMultisetFunc[E](infra.DefaultOrderedKeyComparator[E], opts...)
}

func NewMultisetFunc[E any](cmp infra.OrderedKeyComparator[E], opts ...Option) *Multiset[E] {
	return &Multiset[E]{
		elements: elements[E]{
			container: newContainer[E, E](cmp, kindMultiset, false, opts),
		},
	}
}

func MultisetOf[E infra.OrderedKey](elems ...E) *Multiset[E] {
	s := NewMultiset[E](WithInitCapacity(len(elems)))
	s.Insert(elems...)
	return s
}

func wrapMultiset[E any](c container[E, E]) *Multiset[E] {
	return &Multiset[E]{elements: elements[E]{container: c}}
}

func multisetContainers[E any](sets []*Multiset[E]) []*container[E, E] {
	return lo.FilterMap(sets, func(s *Multiset[E], _ int) (*container[E, E], bool) {
		if s == nil {
			return nil, false
		}
		return &s.container, true
	})
}

func (s *Multiset[E]) operand(other *Multiset[E]) *container[E, E] {
	if other == nil {
		empty := s.emptyLike()
		return &empty
	}
	return &other.container
}

// RemoveOne deletes a single copy of element.
func (s *Multiset[E]) RemoveOne(element E) bool {
	return s.removeOne(element)
}

func (s *Multiset[E]) Clone() *Multiset[E] {
	return wrapMultiset(s.clone())
}

// Union keeps, for each element, the largest multiplicity across operands.
func (s *Multiset[E]) Union(others ...*Multiset[E]) *Multiset[E] {
	return wrapMultiset(unionOf(&s.container, multisetContainers(others)))
}

// Intersect keeps, for each element, the smallest multiplicity across operands.
func (s *Multiset[E]) Intersect(others ...*Multiset[E]) *Multiset[E] {
	return wrapMultiset(intersectOf(&s.container, multisetContainers(others)))
}

// Subtract keeps count(e) minus the largest count of e in any operand.
func (s *Multiset[E]) Subtract(others ...*Multiset[E]) *Multiset[E] {
	return wrapMultiset(subtractOf(&s.container, multisetContainers(others)))
}

func (s *Multiset[E]) UnionWith(others ...*Multiset[E]) {
	unionInto(&s.container, multisetContainers(others))
}

func (s *Multiset[E]) IntersectWith(others ...*Multiset[E]) {
	s.swap(intersectOf(&s.container, multisetContainers(others)))
}

func (s *Multiset[E]) SubtractWith(others ...*Multiset[E]) {
	s.swap(subtractOf(&s.container, multisetContainers(others)))
}

func (s *Multiset[E]) IsSubsetOf(other *Multiset[E]) bool {
	return isSubsetOf(&s.container, s.operand(other))
}

func (s *Multiset[E]) IsStrictSubsetOf(other *Multiset[E]) bool {
	return isStrictSubsetOf(&s.container, s.operand(other))
}

func (s *Multiset[E]) IsSupersetOf(other *Multiset[E]) bool {
	return isSubsetOf(s.operand(other), &s.container)
}

func (s *Multiset[E]) IsStrictSupersetOf(other *Multiset[E]) bool {
	return isStrictSubsetOf(s.operand(other), &s.container)
}

func (s *Multiset[E]) IsDisjointWith(other *Multiset[E]) bool {
	return isDisjointWith(&s.container, s.operand(other))
}

// Equal reports whether both multisets hold the same elements with the same
// multiplicities.
func (s *Multiset[E]) Equal(other *Multiset[E]) bool {
	return isEqual(&s.container, s.operand(other))
}
