package ordered

import (
	"fmt"
	"iter"

	"go.uber.org/zap"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/tree"
)

const (
	kindSet       = "set"
	kindMultiset  = "multiset"
	kindDict      = "dict"
	kindMultiDict = "multidict"
)

// container is the shared adaptor over one order-statistic tree. It owns the
// tree, checks ranks before they reach the engine and records stats.
//
//	Set/Multiset/Dict/MultiDict
//	            |
//	        container ---- occurrences (CountOf/ProbabilityOf/ExpectedValueOf)
//	            |
//	   OrderStatisticTree
type container[K any, V any] struct {
	occurrences[K, V]
	logger *zap.Logger
	stats  *containerStats
	kind   string
}

func newContainer[K any, V any](
	cmp infra.OrderedKeyComparator[K],
	kind string,
	unique bool,
	opts []Option,
) container[K, V] {
	o := loadOptions(opts)
	treeOpts := []tree.OSTreeOpt[K, V]{
		tree.WithInitCapacity[K, V](o.initCap),
	}
	if unique {
		treeOpts = append(treeOpts, tree.WithUniqueKeys[K, V]())
	}
	if o.isDesc {
		treeOpts = append(treeOpts, tree.WithDesc[K, V]())
	}
	c := container[K, V]{
		occurrences: occurrences[K, V]{
			tree: tree.NewOrderStatisticTreeFunc[K, V](cmp, treeOpts...),
		},
		logger: o.logger.Named("ordered").With(zap.String("container", kind)),
		kind:   kind,
	}
	if o.enableStats {
		c.stats = newContainerStats(o.statsName, kind)
	}
	return c
}

// emptyLike returns an empty container ordered, logged and measured the same
// way as c. The tree comparator already carries the descending flag.
func (c *container[K, V]) emptyLike() container[K, V] {
	treeOpts := make([]tree.OSTreeOpt[K, V], 0, 1)
	if c.tree.IsUnique() {
		treeOpts = append(treeOpts, tree.WithUniqueKeys[K, V]())
	}
	return container[K, V]{
		occurrences: occurrences[K, V]{
			tree: tree.NewOrderStatisticTreeFunc[K, V](c.tree.Comparator(), treeOpts...),
		},
		logger: c.logger,
		stats:  c.stats,
		kind:   c.kind,
	}
}

func (c *container[K, V]) clone() container[K, V] {
	cp := *c
	cp.tree = c.tree.Clone()
	cp.stats.RecordElements(cp.tree.Len())
	return cp
}

// swap replaces the tree of c by the tree of other, which must not be used
// afterwards.
func (c *container[K, V]) swap(other container[K, V]) {
	// Elements of other were counted while it was built.
	c.stats.RecordElements(-c.tree.Len())
	c.tree.Release()
	c.tree = other.tree
}

func (c *container[K, V]) Len() int64 {
	return c.tree.Len()
}

func (c *container[K, V]) IsEmpty() bool {
	return c.tree.Len() <= 0
}

func (c *container[K, V]) Clear() {
	n := c.tree.Len()
	c.tree.Release()
	c.stats.RecordElements(-n)
}

func (c *container[K, V]) insert(key K, val V) bool {
	if !c.tree.Insert(key, val) {
		c.stats.IncreaseRejectCount()
		c.logger.Debug("duplicate key rejected", zap.Any("key", key))
		return false
	}
	c.stats.IncreaseInsertCount()
	return true
}

// put updates the value of a unique key or inserts the pair.
func (c *container[K, V]) put(key K, val V) {
	if c.tree.Put(key, val) {
		c.stats.IncreaseInsertCount()
	}
}

// removeAll removes every node matching key and returns how many were removed.
func (c *container[K, V]) removeAll(key K) int64 {
	n := c.tree.CountOf(key)
	if n <= 0 {
		return 0
	}
	c.tree.Remove(key)
	c.stats.RecordRemoveCount(n)
	return n
}

func (c *container[K, V]) removeOne(key K) bool {
	if _, ok := c.tree.RemoveOne(key); !ok {
		return false
	}
	c.stats.RecordRemoveCount(1)
	return true
}

// violate logs the contract violation and panics with it. It is only called
// by the must* checks, which are only called by exported methods, so the
// recorded frame is the caller of the exported method.
func (c *container[K, V]) violate(op string, reason string, fields ...zap.Field) {
	cv := infra.NewContractViolation(3, op, reason)
	c.logger.Error("contract violation", append(fields, zap.Object("violation", cv))...)
	panic(cv)
}

func (c *container[K, V]) mustIndex(op string, i int64) {
	if n := c.tree.Len(); i < 0 || i >= n {
		c.violate("["+c.kind+"] "+op,
			fmt.Sprintf("index %d out of range [0,%d)", i, n),
			zap.Int64("index", i),
		)
	}
}

// mustMatch checks that key equals the key at rank i. Index-based writes never
// relocate nodes.
func (c *container[K, V]) mustMatch(op string, i int64, key K) {
	if k, _ := c.tree.At(i); c.tree.Comparator()(k, key) != 0 {
		c.violate("["+c.kind+"] "+op,
			fmt.Sprintf("key %v does not match key %v at index %d", key, k, i),
			zap.Int64("index", i),
		)
	}
}

// distinct yields every distinct key with its multiplicity, jumping over
// runs of duplicates by rank. The next rank is taken after the yield, so the
// consumer may remove the key it was handed.
func (c *container[K, V]) distinct() iter.Seq2[K, int64] {
	return func(yield func(K, int64) bool) {
		for i := int64(0); i < c.tree.Len(); {
			k, _ := c.tree.At(i)
			if !yield(k, c.tree.CountOf(k)) {
				return
			}
			i = c.tree.UpperRank(k)
		}
	}
}

func (c *container[K, V]) keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range c.tree.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (c *container[K, V]) backwardKeys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range c.tree.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

func (c *container[K, V]) first() (K, bool) {
	k, _, ok := c.tree.Min()
	return k, ok
}

func (c *container[K, V]) last() (K, bool) {
	k, _, ok := c.tree.Max()
	return k, ok
}
