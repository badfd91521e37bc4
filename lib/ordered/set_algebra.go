package ordered

// Multiplicity algebra over containers whose elements are their own values.
// A set is the special case where every multiplicity is 1. Every operation
// walks the distinct elements of one operand and queries counts of the
// others, O(distinct * operands * log n).

// unionInto raises the multiplicity of every element of dst to the maximum
// multiplicity found across others.
func unionInto[E any](dst *container[E, E], others []*container[E, E]) {
	for _, other := range others {
		if other == dst {
			continue
		}
		for e, n := range other.distinct() {
			for missing := n - dst.tree.CountOf(e); missing > 0; missing-- {
				dst.insert(e, e)
			}
		}
	}
}

func unionOf[E any](self *container[E, E], others []*container[E, E]) container[E, E] {
	result := self.clone()
	unionInto(&result, others)
	return result
}

// intersectOf keeps the minimum multiplicity across self and every operand.
func intersectOf[E any](self *container[E, E], others []*container[E, E]) container[E, E] {
	result := self.emptyLike()
	for e, n := range self.distinct() {
		m := n
		for _, other := range others {
			if m = min(m, other.tree.CountOf(e)); m <= 0 {
				break
			}
		}
		for ; m > 0; m-- {
			result.insert(e, e)
		}
	}
	return result
}

// subtractOf keeps count_self(e) - max(count_other(e)), floored at 0.
func subtractOf[E any](self *container[E, E], others []*container[E, E]) container[E, E] {
	result := self.emptyLike()
	for e, n := range self.distinct() {
		removed := int64(0)
		for _, other := range others {
			removed = max(removed, other.tree.CountOf(e))
		}
		for m := n - removed; m > 0; m-- {
			result.insert(e, e)
		}
	}
	return result
}

// intersectLen is the length intersectOf(a, b) would have, without building it.
func intersectLen[E any](a, b *container[E, E]) int64 {
	total := int64(0)
	for e, n := range a.distinct() {
		total += min(n, b.tree.CountOf(e))
	}
	return total
}

func isSubsetOf[E any](a, b *container[E, E]) bool {
	return a.tree.Len() <= b.tree.Len() && intersectLen(a, b) == a.tree.Len()
}

func isStrictSubsetOf[E any](a, b *container[E, E]) bool {
	return a.tree.Len() < b.tree.Len() && intersectLen(a, b) == a.tree.Len()
}

func isDisjointWith[E any](a, b *container[E, E]) bool {
	if a.tree.Len() > b.tree.Len() {
		a, b = b, a
	}
	return intersectLen(a, b) == 0
}

func isEqual[E any](a, b *container[E, E]) bool {
	return a.tree.Len() == b.tree.Len() && intersectLen(a, b) == a.tree.Len()
}
