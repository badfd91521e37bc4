package tree

import (
	"iter"

	"github.com/benz9527/xcoll/lib/infra"
)

// go install golang.org/x/tools/cmd/stringer@latest

//go:generate stringer -type=RBColor
type RBColor uint8

const (
	Black RBColor = iota
	Red
)

//go:generate stringer -type=RBDirection
type RBDirection int8

const (
	Left RBDirection = -1 + iota
	Root
	Right
)

// OSNode is a read-only view of a node inside an order-statistic tree.
// Views returned for the sentinel are nil.
type OSNode[K any, V any] interface {
	Key() K
	Val() V
	Color() RBColor
	// Size is the number of nodes in the subtree rooted at this node.
	Size() int64
	Left() OSNode[K, V]
	Right() OSNode[K, V]
	Parent() OSNode[K, V]
}

// OrderStatisticTree is a red-black tree augmented with subtree sizes.
// Ranks passed to At/SetAt are 0-indexed, orders passed to Select are 1-indexed.
// Out of range ranks and index/key mismatches panic with *infra.ContractViolation.
type OrderStatisticTree[K any, V any] interface {
	Len() int64
	IsUnique() bool
	Comparator() infra.OrderedKeyComparator[K]
	Root() OSNode[K, V]
	// Insert returns false if the tree is in unique mode and the key exists.
	Insert(key K, val V) bool
	// Remove deletes every node matching key and returns the value of the
	// last deleted node.
	Remove(key K) (V, bool)
	// RemoveOne deletes a single node matching key.
	RemoveOne(key K) (V, bool)
	RemoveMin() (K, V, bool)
	Find(key K) (V, bool)
	Contains(key K) bool
	CountOf(key K) int64
	// Rank returns the 0-indexed rank of the first node matching key.
	Rank(key K) (int64, bool)
	// UpperRank counts the nodes whose key is less than or equal to key.
	UpperRank(key K) int64
	Select(order int64) (K, V)
	At(i int64) (K, V)
	// SetAt replaces the value at rank i. key must equal the key at rank i.
	SetAt(i int64, key K, val V)
	// Put updates the value of key or inserts it and reports whether it was
	// inserted. Unique mode only.
	Put(key K, val V) bool
	// Update replaces the value of every node matching key.
	Update(key K, val V) int64
	Min() (K, V, bool)
	Max() (K, V, bool)
	Foreach(action func(idx int64, color RBColor, key K, val V) bool)
	// All iterates in ascending order. After the tree is modified by the
	// consumer, the next step yields the first live node positioned after the
	// last yielded one, so removing the current node never skips another.
	// Nodes inserted before the cursor are not visited.
	All() iter.Seq2[K, V]
	Backward() iter.Seq2[K, V]
	// EqualRange iterates over the contiguous run of nodes matching key.
	EqualRange(key K) iter.Seq2[K, V]
	Clone() OrderStatisticTree[K, V]
	Release()
}
