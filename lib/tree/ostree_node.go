package tree

import (
	"math"

	"github.com/benz9527/xcoll/lib/infra"
)

// nodeRef addresses a node inside the tree arena.
// The zero ref is the shared sentinel: black, size 0 and never written.
type nodeRef uint32

const nilRef nodeRef = 0

type osNode[K any, V any] struct {
	key    K
	val    V
	seq    uint64 // insertion stamp, orders equal keys
	size   int64
	parent nodeRef
	left   nodeRef
	right  nodeRef
	color  RBColor
}

// osArena owns every node of a tree. Released slots are chained through
// their left link and recycled before the slice grows.
type osArena[K any, V any] struct {
	nodes []osNode[K, V]
	free  nodeRef
	seq   uint64 // never reset, so stamps stay unique across Release
}

func newOSArena[K any, V any](capacity int) osArena[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return osArena[K, V]{
		// Slot 0 is the sentinel.
		nodes: make([]osNode[K, V], 1, capacity+1),
	}
}

// alloc may grow the slice, so callers must not hold node pointers across it.
func (a *osArena[K, V]) alloc(key K, val V, parent nodeRef) nodeRef {
	a.seq++
	nd := osNode[K, V]{
		key:    key,
		val:    val,
		seq:    a.seq,
		size:   1,
		parent: parent,
		color:  Red,
	}
	if a.free != nilRef {
		x := a.free
		a.free = a.nodes[x].left
		a.nodes[x] = nd
		return x
	}
	infra.MustHold(len(a.nodes) < math.MaxUint32, "[ostree] alloc", "arena exhausted at %d nodes", len(a.nodes))
	a.nodes = append(a.nodes, nd)
	return nodeRef(len(a.nodes) - 1)
}

func (a *osArena[K, V]) release(x nodeRef) {
	if x == nilRef {
		// impossible run to here
		panic( /* debug assertion */ "[ostree] release the sentinel")
	}
	a.nodes[x] = osNode[K, V]{left: a.free}
	a.free = x
}

func (a *osArena[K, V]) reset() {
	clear(a.nodes)
	a.nodes = a.nodes[:1]
	a.free = nilRef
}

func (a *osArena[K, V]) clone() osArena[K, V] {
	nodes := make([]osNode[K, V], len(a.nodes), cap(a.nodes))
	copy(nodes, a.nodes)
	return osArena[K, V]{
		nodes: nodes,
		free:  a.free,
		seq:   a.seq,
	}
}

// osNodeView exposes a node through the OSNode interface.
type osNodeView[K any, V any] struct {
	tree *osTree[K, V]
	ref  nodeRef
}

func (tree *osTree[K, V]) view(x nodeRef) OSNode[K, V] {
	if x == nilRef {
		return nil
	}
	return osNodeView[K, V]{tree: tree, ref: x}
}

func (v osNodeView[K, V]) node() *osNode[K, V] {
	return &v.tree.nodes[v.ref]
}

func (v osNodeView[K, V]) Key() K {
	return v.node().key
}

func (v osNodeView[K, V]) Val() V {
	return v.node().val
}

func (v osNodeView[K, V]) Color() RBColor {
	return v.node().color
}

func (v osNodeView[K, V]) Size() int64 {
	return v.node().size
}

func (v osNodeView[K, V]) Left() OSNode[K, V] {
	return v.tree.view(v.node().left)
}

func (v osNodeView[K, V]) Right() OSNode[K, V] {
	return v.tree.view(v.node().right)
}

func (v osNodeView[K, V]) Parent() OSNode[K, V] {
	return v.tree.view(v.node().parent)
}
