package ordered

import (
	"fmt"
	"iter"
	"strings"

	"github.com/benz9527/xcoll/lib/infra"
)

type Pair[K any, V any] struct {
	Key K
	Val V
}

func (p Pair[K, V]) String() string {
	return fmt.Sprintf("%v:%v", p.Key, p.Val)
}

// entries holds the operations shared by Dict and MultiDict.
type entries[K any, V any] struct {
	container[K, V]
}

// Get returns the value of key. For duplicate keys the first match found by
// the tree descent is returned.
func (d *entries[K, V]) Get(key K) (V, bool) {
	return d.tree.Find(key)
}

func (d *entries[K, V]) Has(key K) bool {
	return d.tree.Contains(key)
}

// At returns the pair at sorted rank i, 0-indexed. It panics with
// *infra.ContractViolation if i is out of [0, Len()).
func (d *entries[K, V]) At(i int64) Pair[K, V] {
	d.mustIndex("at", i)
	k, v := d.tree.At(i)
	return Pair[K, V]{Key: k, Val: v}
}

// SetAt replaces the value at rank i. The pair key must equal the key already
// at rank i, otherwise it panics with *infra.ContractViolation.
func (d *entries[K, V]) SetAt(i int64, pair Pair[K, V]) {
	d.mustIndex("set at", i)
	d.mustMatch("set at", i, pair.Key)
	d.tree.SetAt(i, pair.Key, pair.Val)
}

// Insert returns false if the dictionary is unique and key exists.
func (d *entries[K, V]) Insert(key K, val V) bool {
	return d.insert(key, val)
}

func (d *entries[K, V]) InsertPairs(pairs ...Pair[K, V]) int64 {
	inserted := int64(0)
	for _, p := range pairs {
		if d.insert(p.Key, p.Val) {
			inserted++
		}
	}
	return inserted
}

// Keys returns every key in sorted order, duplicates included.
func (d *entries[K, V]) Keys() []K {
	res := make([]K, 0, d.Len())
	for k := range d.tree.All() {
		res = append(res, k)
	}
	return res
}

// Values returns every value, ordered by key.
func (d *entries[K, V]) Values() []V {
	res := make([]V, 0, d.Len())
	for _, v := range d.tree.All() {
		res = append(res, v)
	}
	return res
}

func (d *entries[K, V]) All() iter.Seq2[K, V] {
	return d.tree.All()
}

func (d *entries[K, V]) Backward() iter.Seq2[K, V] {
	return d.tree.Backward()
}

func (d *entries[K, V]) Pairs() []Pair[K, V] {
	res := make([]Pair[K, V], 0, d.Len())
	for k, v := range d.tree.All() {
		res = append(res, Pair[K, V]{Key: k, Val: v})
	}
	return res
}

func (d *entries[K, V]) String() string {
	var builder strings.Builder
	builder.WriteString(d.kind)
	builder.WriteString("[")
	first := true
	for k, v := range d.tree.All() {
		if !first {
			builder.WriteString(" ")
		}
		first = false
		_, _ = fmt.Fprintf(&builder, "%v:%v", k, v)
	}
	builder.WriteString("]")
	return builder.String()
}

// removeKeys moves every pair matching keys out of d, into a new container.
func (d *entries[K, V]) removeKeys(keys []K) container[K, V] {
	removed := d.emptyLike()
	for _, key := range keys {
		for k, v := range d.tree.EqualRange(key) {
			removed.insert(k, v)
		}
		d.removeAll(key)
	}
	return removed
}

func (d *entries[K, V]) search(keys []K) container[K, V] {
	found := d.emptyLike()
	for _, key := range keys {
		if found.tree.Contains(key) {
			continue
		}
		for k, v := range d.tree.EqualRange(key) {
			found.insert(k, v)
		}
	}
	return found
}

// minusInto removes every key of rhs from dst. rhs may be dst itself.
func minusInto[K any, V any](dst, rhs *container[K, V]) {
	keys := make([]K, 0, rhs.tree.Len())
	for k := range rhs.distinct() {
		keys = append(keys, k)
	}
	for _, k := range keys {
		dst.removeAll(k)
	}
}

// Dict is an ordered dictionary with unique keys.
type Dict[K any, V any] struct {
	entries[K, V]
}

func NewDict[K infra.OrderedKey, V any](opts ...Option) *Dict[K, V] {
	return NewDictFunc[K, V](infra.DefaultOrderedKeyComparator[K], opts...)
}

func NewDictFunc[K any, V any](cmp infra.OrderedKeyComparator[K], opts ...Option) *Dict[K, V] {
	return &Dict[K, V]{
		entries: entries[K, V]{
			container: newContainer[K, V](cmp, kindDict, true, opts),
		},
	}
}

func DictOf[K infra.OrderedKey, V any](pairs ...Pair[K, V]) *Dict[K, V] {
	d := NewDict[K, V](WithInitCapacity(len(pairs)))
	d.InsertPairs(pairs...)
	return d
}

func wrapDict[K any, V any](c container[K, V]) *Dict[K, V] {
	return &Dict[K, V]{entries: entries[K, V]{container: c}}
}

// Set updates the value of key, or inserts the pair if key is absent.
func (d *Dict[K, V]) Set(key K, val V) {
	d.put(key, val)
}

// UpdateValue replaces the value of key and reports whether key exists.
func (d *Dict[K, V]) UpdateValue(val V, key K) bool {
	return d.tree.Update(key, val) > 0
}

// RemoveValueForKeys removes each key and returns the removed pairs.
func (d *Dict[K, V]) RemoveValueForKeys(keys ...K) *Dict[K, V] {
	return wrapDict(d.removeKeys(keys))
}

// Search returns the sub-dictionary of the pairs matching keys.
func (d *Dict[K, V]) Search(keys ...K) *Dict[K, V] {
	return wrapDict(d.search(keys))
}

func (d *Dict[K, V]) Clone() *Dict[K, V] {
	return wrapDict(d.clone())
}

// Plus returns a copy of d where every pair of rhs is set, rhs values
// override d values.
func (d *Dict[K, V]) Plus(rhs *Dict[K, V]) *Dict[K, V] {
	res := d.Clone()
	res.PlusAssign(rhs)
	return res
}

// Minus returns a copy of d without the keys of rhs.
func (d *Dict[K, V]) Minus(rhs *Dict[K, V]) *Dict[K, V] {
	res := d.Clone()
	res.MinusAssign(rhs)
	return res
}

func (d *Dict[K, V]) PlusAssign(rhs *Dict[K, V]) {
	if rhs == nil || rhs == d {
		return
	}
	for k, v := range rhs.tree.All() {
		d.Set(k, v)
	}
}

func (d *Dict[K, V]) MinusAssign(rhs *Dict[K, V]) {
	if rhs == nil {
		return
	}
	minusInto(&d.container, &rhs.container)
}

// MultiDict is an ordered dictionary where a key may map to many values.
// Values of one key keep their insertion order.
type MultiDict[K any, V any] struct {
	entries[K, V]
}

func NewMultiDict[K infra.OrderedKey, V any](opts ...Option) *MultiDict[K, V] {
	return NewMultiDictFunc[K, V](infra.DefaultOrderedKeyComparator[K], opts...)
}

func NewMultiDictFunc[K any, V any](cmp infra.OrderedKeyComparator[K], opts ...Option) *MultiDict[K, V] {
	return &MultiDict[K, V]{
		entries: entries[K, V]{
			container: newContainer[K, V](cmp, kindMultiDict, false, opts),
		},
	}
}

func MultiDictOf[K infra.OrderedKey, V any](pairs ...Pair[K, V]) *MultiDict[K, V] {
	d := NewMultiDict[K, V](WithInitCapacity(len(pairs)))
	d.InsertPairs(pairs...)
	return d
}

func wrapMultiDict[K any, V any](c container[K, V]) *MultiDict[K, V] {
	return &MultiDict[K, V]{entries: entries[K, V]{container: c}}
}

// ValuesOf returns every value of key in insertion order.
func (d *MultiDict[K, V]) ValuesOf(key K) []V {
	res := make([]V, 0, d.tree.CountOf(key))
	for _, v := range d.tree.EqualRange(key) {
		res = append(res, v)
	}
	return res
}

// UpdateValue replaces the value of every pair matching key and returns the
// number of pairs updated.
func (d *MultiDict[K, V]) UpdateValue(val V, key K) int64 {
	return d.tree.Update(key, val)
}

// RemoveValueForKeys removes every pair of each key and returns them.
func (d *MultiDict[K, V]) RemoveValueForKeys(keys ...K) *MultiDict[K, V] {
	return wrapMultiDict(d.removeKeys(keys))
}

// Search returns the sub-dictionary of every pair matching keys.
func (d *MultiDict[K, V]) Search(keys ...K) *MultiDict[K, V] {
	return wrapMultiDict(d.search(keys))
}

func (d *MultiDict[K, V]) Clone() *MultiDict[K, V] {
	return wrapMultiDict(d.clone())
}

// Plus returns a copy of d augmented with every pair of rhs.
func (d *MultiDict[K, V]) Plus(rhs *MultiDict[K, V]) *MultiDict[K, V] {
	res := d.Clone()
	res.PlusAssign(rhs)
	return res
}

// Minus returns a copy of d without the keys of rhs.
func (d *MultiDict[K, V]) Minus(rhs *MultiDict[K, V]) *MultiDict[K, V] {
	res := d.Clone()
	res.MinusAssign(rhs)
	return res
}

func (d *MultiDict[K, V]) PlusAssign(rhs *MultiDict[K, V]) {
	if rhs == nil {
		return
	}
	// Snapshot first, rhs may be d.
	d.InsertPairs(rhs.Pairs()...)
}

func (d *MultiDict[K, V]) MinusAssign(rhs *MultiDict[K, V]) {
	if rhs == nil {
		return
	}
	minusInto(&d.container, &rhs.container)
}
