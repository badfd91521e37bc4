package tree

import (
	"iter"

	"github.com/benz9527/xcoll/lib/infra"
)

// osTree is an order-statistic red-black tree. Every node carries the size of
// its subtree, so rank and select run in O(log n).
// In multi mode equal keys descend right on insertion, which keeps duplicates
// contiguous in the in-order sequence.
type osTree[K any, V any] struct {
	osArena[K, V]
	cmp      infra.OrderedKeyComparator[K]
	root     nodeRef
	count    int64
	gen      uint64 // bumped on every structural change
	initCap  int
	isUnique bool
	isDesc   bool
}

func (tree *osTree[K, V]) Len() int64 {
	return tree.count
}

func (tree *osTree[K, V]) IsUnique() bool {
	return tree.isUnique
}

func (tree *osTree[K, V]) Comparator() infra.OrderedKeyComparator[K] {
	return tree.cmp
}

func (tree *osTree[K, V]) Root() OSNode[K, V] {
	return tree.view(tree.root)
}

func (tree *osTree[K, V]) isRed(x nodeRef) bool {
	return x != nilRef && tree.nodes[x].color == Red
}

func (tree *osTree[K, V]) isBlack(x nodeRef) bool {
	return !tree.isRed(x)
}

func (tree *osTree[K, V]) sizeOf(x nodeRef) int64 {
	return tree.nodes[x].size
}

// resize restores size(x) = 1 + size(x.left) + size(x.right).
func (tree *osTree[K, V]) resize(x nodeRef) {
	nd := &tree.nodes[x]
	nd.size = 1 + tree.nodes[nd.left].size + tree.nodes[nd.right].size
}

func (tree *osTree[K, V]) direction(x nodeRef) RBDirection {
	if x == nilRef {
		// impossible run to here
		panic( /* debug assertion */ "[ostree] sentinel without direction")
	}
	p := tree.nodes[x].parent
	if p == nilRef {
		return Root
	}
	if tree.nodes[p].left == x {
		return Left
	}
	return Right
}

func (tree *osTree[K, V]) minimum(x nodeRef) nodeRef {
	for ; x != nilRef && tree.nodes[x].left != nilRef; x = tree.nodes[x].left {
	}
	return x
}

func (tree *osTree[K, V]) maximum(x nodeRef) nodeRef {
	for ; x != nilRef && tree.nodes[x].right != nilRef; x = tree.nodes[x].right {
	}
	return x
}

// The succ node of the current node is its next node in sorted order.
func (tree *osTree[K, V]) succ(x nodeRef) nodeRef {
	if r := tree.nodes[x].right; r != nilRef {
		return tree.minimum(r)
	}
	p := tree.nodes[x].parent
	// Backtrack to the first ancestor reached from its left subtree.
	for p != nilRef && x == tree.nodes[p].right {
		x, p = p, tree.nodes[p].parent
	}
	return p
}

// The pred node of the current node is its previous node in sorted order.
func (tree *osTree[K, V]) pred(x nodeRef) nodeRef {
	if l := tree.nodes[x].left; l != nilRef {
		return tree.maximum(l)
	}
	p := tree.nodes[x].parent
	for p != nilRef && x == tree.nodes[p].left {
		x, p = p, tree.nodes[p].parent
	}
	return p
}

// replaceChild links y into the slot of x under x's parent p.
func (tree *osTree[K, V]) replaceChild(p, x, y nodeRef) {
	switch {
	case p == nilRef:
		tree.root = y
	case tree.nodes[p].left == x:
		tree.nodes[p].left = y
	default:
		tree.nodes[p].right = y
	}
	if y != nilRef {
		tree.nodes[y].parent = p
	}
}

/*
		 |                         |
		 X                         S
		/ \     leftRotate(X)     / \
	   L   S    ============>    X   Sd
		  / \                   / \
		Sc   Sd                L   Sc

S takes over the size of X, X is recomputed from L and Sc.
*/
func (tree *osTree[K, V]) leftRotate(x nodeRef) {
	if x == nilRef || tree.nodes[x].right == nilRef {
		// impossible run to here
		panic( /* debug assertion */ "[ostree] left rotate node x is nil or x.right is nil")
	}

	p, y := tree.nodes[x].parent, tree.nodes[x].right
	sc := tree.nodes[y].left
	tree.nodes[x].right = sc
	if sc != nilRef {
		tree.nodes[sc].parent = x
	}
	tree.replaceChild(p, x, y)
	tree.nodes[y].left = x
	tree.nodes[x].parent = y

	tree.nodes[y].size = tree.nodes[x].size
	tree.resize(x)
}

/*
			 |                         |
			 X                         S
			/ \     rightRotate(S)    / \
	       L   S    <============    X   R
			  / \                   / \
			Sc   Sd               Sc   Sd

X takes over the size of S, S is recomputed from Sd and R.
*/
func (tree *osTree[K, V]) rightRotate(x nodeRef) {
	if x == nilRef || tree.nodes[x].left == nilRef {
		// impossible run to here
		panic( /* debug assertion */ "[ostree] right rotate node x is nil or x.left is nil")
	}

	p, y := tree.nodes[x].parent, tree.nodes[x].left
	sd := tree.nodes[y].right
	tree.nodes[x].left = sd
	if sd != nilRef {
		tree.nodes[sd].parent = x
	}
	tree.replaceChild(p, x, y)
	tree.nodes[y].right = x
	tree.nodes[x].parent = y

	tree.nodes[y].size = tree.nodes[x].size
	tree.resize(x)
}

func (tree *osTree[K, V]) search(key K) nodeRef {
	for x := tree.root; x != nilRef; {
		res := tree.cmp(key, tree.nodes[x].key)
		if res == 0 {
			return x
		} else if res < 0 {
			x = tree.nodes[x].left
		} else {
			x = tree.nodes[x].right
		}
	}
	return nilRef
}

// lowerRank counts the nodes whose key is less than key.
func (tree *osTree[K, V]) lowerRank(key K) int64 {
	rank := int64(0)
	for x := tree.root; x != nilRef; {
		if tree.cmp(tree.nodes[x].key, key) < 0 {
			rank += tree.sizeOf(tree.nodes[x].left) + 1
			x = tree.nodes[x].right
		} else {
			x = tree.nodes[x].left
		}
	}
	return rank
}

// upperRank counts the nodes whose key is less than or equal to key.
func (tree *osTree[K, V]) upperRank(key K) int64 {
	rank := int64(0)
	for x := tree.root; x != nilRef; {
		if tree.cmp(tree.nodes[x].key, key) <= 0 {
			rank += tree.sizeOf(tree.nodes[x].left) + 1
			x = tree.nodes[x].right
		} else {
			x = tree.nodes[x].left
		}
	}
	return rank
}

// after returns the first node positioned after (key, seq). Equal keys are
// ordered by their insertion stamp, the same order insertion links them in.
func (tree *osTree[K, V]) after(key K, seq uint64) nodeRef {
	y := nilRef
	for x := tree.root; x != nilRef; {
		if res := tree.cmp(tree.nodes[x].key, key); res > 0 || (res == 0 && tree.nodes[x].seq > seq) {
			y = x
			x = tree.nodes[x].left
		} else {
			x = tree.nodes[x].right
		}
	}
	return y
}

// before returns the last node positioned before (key, seq).
func (tree *osTree[K, V]) before(key K, seq uint64) nodeRef {
	y := nilRef
	for x := tree.root; x != nilRef; {
		if res := tree.cmp(tree.nodes[x].key, key); res < 0 || (res == 0 && tree.nodes[x].seq < seq) {
			y = x
			x = tree.nodes[x].right
		} else {
			x = tree.nodes[x].left
		}
	}
	return y
}

// selectNode returns the node with the given 1-indexed order.
//
//	r = size(x.left) + 1
//	order == r, x is the target.
//	order <  r, turn to left part.
//	order >  r, turn to right part with order - r.
func (tree *osTree[K, V]) selectNode(order int64) nodeRef {
	x := tree.root
	for x != nilRef {
		r := tree.sizeOf(tree.nodes[x].left) + 1
		if order == r {
			return x
		} else if order < r {
			x = tree.nodes[x].left
		} else {
			order -= r
			x = tree.nodes[x].right
		}
	}
	return nilRef
}

// i1: Empty tree, the new node becomes the root and is painted black.
// i2: Unique mode and the key exists, rejected.
// i3: Link a red leaf under the last visited node. Equal keys go right.
func (tree *osTree[K, V]) Insert(key K, val V) bool {
	var (
		y   = nilRef
		res int64
	)
	for x := tree.root; x != nilRef; {
		y = x
		res = tree.cmp(key, tree.nodes[x].key)
		if /* i2 */ res == 0 && tree.isUnique {
			return false
		} else /* less */ if res < 0 {
			x = tree.nodes[x].left
		} else /* greater or equal */ {
			x = tree.nodes[x].right
		}
	}

	z := tree.alloc(key, val, y)
	if /* i1 */ y == nilRef {
		tree.root = z
	} else /* i3 */ if res < 0 {
		tree.nodes[y].left = z
	} else {
		tree.nodes[y].right = z
	}
	for p := y; p != nilRef; p = tree.nodes[p].parent {
		tree.nodes[p].size++
	}
	tree.count++
	tree.gen++
	tree.insertRebalance(z)
	return true
}

/*
New node X is red by default.

<X> is a RED node.
[X] is a BLACK node (or NIL).

im1: Current node X's parent P is black, nothing to do.

im2: If both the parent P and the uncle U are red, grandpa G is black.
(red-violation)
After repainted G into red may be still red-violation.
Recursive to fix grandpa.

	    [G]             <G>
	    / \             / \
	  <P> <U>  ====>  [P] [U]
	  /               /
	<X>             <X>

im3: The parent P is red but the uncle U is black. (red-violation)
X is opposite direction to P. Rotate P to opposite direction.
After rotation it is still red-violation. Here must enter im4 to fix.

	  [G]                 [G]
	  / \    rotate(P)    / \
	<P> [U]  ========>  <X> [U]
	  \                 /
	  <X>             <P>

im4: Current node is the same direction as parent.

	    [G]                 <P>               [P]
	    / \    rotate(G)    / \    repaint    / \
	  <P> [U]  ========>  <X> [G]  ======>  <X> <G>
	  /                         \                 \
	<X>                         [U]               [U]

The root is repainted black at the end.
*/
func (tree *osTree[K, V]) insertRebalance(x nodeRef) {
	for /* im1 */ tree.isRed(tree.nodes[x].parent) {
		p := tree.nodes[x].parent
		gp := tree.nodes[p].parent
		pDir := tree.direction(p)

		var u nodeRef
		switch pDir {
		case Left:
			u = tree.nodes[gp].right
		case Right:
			u = tree.nodes[gp].left
		default:
			// impossible run to here, a red parent is never the root after im4.
			panic( /* debug assertion */ "[ostree] insert violate (red root)")
		}

		if /* im2 */ tree.isRed(u) {
			tree.nodes[p].color = Black
			tree.nodes[u].color = Black
			tree.nodes[gp].color = Red
			x = gp
			continue
		}

		if /* im3 */ dir := tree.direction(x); dir != pDir {
			switch dir {
			case Left:
				tree.rightRotate(p)
			case Right:
				tree.leftRotate(p)
			default:
				// impossible run to here
				panic( /* debug assertion */ "[ostree] insert violate (im3)")
			}
			x, p = p, x
		}

		/* im4 */
		switch pDir {
		case Left:
			tree.rightRotate(gp)
		case Right:
			tree.leftRotate(gp)
		default:
			// impossible run to here
			panic( /* debug assertion */ "[ostree] insert violate (im4)")
		}
		tree.nodes[p].color = Black
		tree.nodes[gp].color = Red
	}
	tree.nodes[tree.root].color = Black
}

/*
r1: Node Z has at most one child C. Splice Z out, C takes its place.

r2: Node Z has two children. Its successor Y (minimum of the right subtree)
has no left child. Y is spliced out of its own position, then replaces Z
taking over Z's color.

	  |                    |
	  Z                    Y
	 / \                  / \
	L  ..   replace(Z)   L  ..
		|   =========>       |
		P                    P
	   / \                  / \
	  Y  ..                X  ..
	   \
	    X

The sizes from the parent of the physically removed position up to the root
are recomputed. If the physically removed color is black, X carries an extra
black and the rebalance starts from X with its parent passed explicitly,
since X may be the sentinel.
*/
func (tree *osTree[K, V]) removeNode(z nodeRef) V {
	val := tree.nodes[z].val
	var (
		x, xp   nodeRef
		rmColor = tree.nodes[z].color
	)

	if zl, zr := tree.nodes[z].left, tree.nodes[z].right; /* r1 */ zl == nilRef || zr == nilRef {
		x = zl
		if x == nilRef {
			x = zr
		}
		xp = tree.nodes[z].parent
		tree.replaceChild(xp, z, x)
	} else /* r2 */ {
		y := tree.minimum(zr)
		rmColor = tree.nodes[y].color
		x = tree.nodes[y].right
		if tree.nodes[y].parent == z {
			xp = y
		} else {
			xp = tree.nodes[y].parent
			tree.replaceChild(xp, y, x)
			tree.nodes[y].right = zr
			tree.nodes[zr].parent = y
		}
		tree.replaceChild(tree.nodes[z].parent, z, y)
		tree.nodes[y].left = zl
		tree.nodes[zl].parent = y
		tree.nodes[y].color = tree.nodes[z].color
	}

	for p := xp; p != nilRef; p = tree.nodes[p].parent {
		tree.resize(p)
	}
	if rmColor == Black {
		tree.removeRebalance(x, xp)
	}

	tree.release(z)
	tree.count--
	tree.gen++
	return val
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).
{X} is either a RED node or a BLACK node.

Sc is the same direction to X and it X's sibling's child node.
Sd is the opposite direction to X and it X's sibling's child node.

rm1: Current node X's sibling S is red, so the parent P, nephew node Sc and Sd
must be black. Rotate P toward X, repaint S black and P red, continue with
the new (black) sibling.

	  [P]                   <S>               [S]
	  / \    l-rotate(P)    / \    repaint    / \
	[X] <S>  ==========>  [P] [Sd]  ======>  <P> [Sd]
	    / \               / \               / \
	 [Sc] [Sd]          [X] [Sc]          [X] [Sc]

rm2: The sibling S and both nephews are black. Repaint S red, so the extra
black moves up to P. A red P absorbs it, a black P continues.

	  {P}             {P}
	  / \             / \
	[X] [S]  ====>  [X] <S>
	    / \             / \
	 [Sc] [Sd]       [Sc] [Sd]

rm3: The sibling S is black, Sc is red and Sd is black.
Rotate S away from X, swap the colors of S and Sc. Enter rm4.

	                        {P}                {P}
	  {P}                   / \                / \
	  / \    r-rotate(S)  [X] <Sc>   repaint  [X] [Sc]
	[X] [S]  ==========>        \    ======>       \
	    / \                     [S]                <S>
	  <Sc> [Sd]                   \                  \
	                              [Sd]               [Sd]

rm4: The sibling S is black and Sd is red.
Rotate P toward X, S takes P's color, P and Sd are painted black. Done.

	  {P}                   [S]                {S}
	  / \    l-rotate(P)    / \     repaint    / \
	[X] [S]  ==========>  {P} <Sd>  ======>  [P] [Sd]
	    / \               / \                / \
	 [Sc] <Sd>          [X] [Sc]           [X] [Sc]
*/
func (tree *osTree[K, V]) removeRebalance(x, xp nodeRef) {
	for x != tree.root && tree.isBlack(x) {
		isLeft := tree.nodes[xp].left == x
		sibling := func() nodeRef {
			if isLeft {
				return tree.nodes[xp].right
			}
			return tree.nodes[xp].left
		}
		rotateToX := func(n nodeRef) {
			if isLeft {
				tree.leftRotate(n)
			} else {
				tree.rightRotate(n)
			}
		}
		rotateAwayX := func(n nodeRef) {
			if isLeft {
				tree.rightRotate(n)
			} else {
				tree.leftRotate(n)
			}
		}
		nephews := func(s nodeRef) (sc, sd nodeRef) {
			if isLeft {
				return tree.nodes[s].left, tree.nodes[s].right
			}
			return tree.nodes[s].right, tree.nodes[s].left
		}

		s := sibling()
		if s == nilRef {
			// impossible run to here
			panic( /* debug assertion */ "[ostree] remove violate (black sibling missing)")
		}
		if /* rm1 */ tree.isRed(s) {
			tree.nodes[s].color = Black
			tree.nodes[xp].color = Red
			rotateToX(xp)
			s = sibling()
		}

		sc, sd := nephews(s)
		if /* rm2 */ tree.isBlack(sc) && tree.isBlack(sd) {
			tree.nodes[s].color = Red
			x, xp = xp, tree.nodes[xp].parent
			continue
		}

		if /* rm3 */ tree.isBlack(sd) {
			tree.nodes[sc].color = Black
			tree.nodes[s].color = Red
			rotateAwayX(s)
			s = sibling()
			_, sd = nephews(s)
		}

		/* rm4 */
		tree.nodes[s].color = tree.nodes[xp].color
		tree.nodes[xp].color = Black
		tree.nodes[sd].color = Black
		rotateToX(xp)
		x, xp = tree.root, nilRef
	}
	if x != nilRef {
		tree.nodes[x].color = Black
	}
}

func (tree *osTree[K, V]) Remove(key K) (val V, ok bool) {
	for {
		z := tree.search(key)
		if z == nilRef {
			return val, ok
		}
		val, ok = tree.removeNode(z), true
		if tree.isUnique {
			return val, ok
		}
	}
}

func (tree *osTree[K, V]) RemoveOne(key K) (val V, ok bool) {
	z := tree.search(key)
	if z == nilRef {
		return val, false
	}
	return tree.removeNode(z), true
}

func (tree *osTree[K, V]) RemoveMin() (key K, val V, ok bool) {
	z := tree.minimum(tree.root)
	if z == nilRef {
		return key, val, false
	}
	key = tree.nodes[z].key
	return key, tree.removeNode(z), true
}

func (tree *osTree[K, V]) Find(key K) (val V, ok bool) {
	if x := tree.search(key); x != nilRef {
		return tree.nodes[x].val, true
	}
	return val, false
}

func (tree *osTree[K, V]) Contains(key K) bool {
	return tree.search(key) != nilRef
}

// CountOf is the distance between the upper and lower bound ranks of key,
// O(log n) regardless of the number of duplicates.
func (tree *osTree[K, V]) CountOf(key K) int64 {
	if tree.count <= 0 {
		return 0
	}
	return tree.upperRank(key) - tree.lowerRank(key)
}

func (tree *osTree[K, V]) Rank(key K) (int64, bool) {
	rank := tree.lowerRank(key)
	if rank >= tree.count {
		return -1, false
	}
	if x := tree.selectNode(rank + 1); tree.cmp(tree.nodes[x].key, key) != 0 {
		return -1, false
	}
	return rank, true
}

func (tree *osTree[K, V]) UpperRank(key K) int64 {
	return tree.upperRank(key)
}

func (tree *osTree[K, V]) mustSelect(op string, order int64) nodeRef {
	infra.MustHold(order >= 1 && order <= tree.count, op, "order %d out of range [1,%d]", order, tree.count)
	x := tree.selectNode(order)
	if x == nilRef {
		// impossible run to here
		panic( /* debug assertion */ "[ostree] select reached the sentinel, size violation")
	}
	return x
}

func (tree *osTree[K, V]) Select(order int64) (K, V) {
	x := tree.mustSelect("[ostree] select", order)
	return tree.nodes[x].key, tree.nodes[x].val
}

func (tree *osTree[K, V]) At(i int64) (K, V) {
	x := tree.mustSelect("[ostree] at", i+1)
	return tree.nodes[x].key, tree.nodes[x].val
}

func (tree *osTree[K, V]) SetAt(i int64, key K, val V) {
	x := tree.mustSelect("[ostree] set at", i+1)
	infra.MustHold(tree.cmp(tree.nodes[x].key, key) == 0, "[ostree] set at", "key mismatch at index %d", i)
	tree.nodes[x].val = val
}

func (tree *osTree[K, V]) Put(key K, val V) bool {
	infra.MustHold(tree.isUnique, "[ostree] put", "keyed write requires unique keys")
	if x := tree.search(key); x != nilRef {
		tree.nodes[x].val = val
		return false
	}
	return tree.Insert(key, val)
}

func (tree *osTree[K, V]) Update(key K, val V) int64 {
	updated := int64(0)
	rank := tree.lowerRank(key)
	if rank >= tree.count {
		return 0
	}
	for x := tree.selectNode(rank + 1); x != nilRef && tree.cmp(tree.nodes[x].key, key) == 0; x = tree.succ(x) {
		tree.nodes[x].val = val
		updated++
	}
	return updated
}

func (tree *osTree[K, V]) Min() (key K, val V, ok bool) {
	if x := tree.minimum(tree.root); x != nilRef {
		return tree.nodes[x].key, tree.nodes[x].val, true
	}
	return key, val, false
}

func (tree *osTree[K, V]) Max() (key K, val V, ok bool) {
	if x := tree.maximum(tree.root); x != nilRef {
		return tree.nodes[x].key, tree.nodes[x].val, true
	}
	return key, val, false
}

// Inorder traversal to implement the DFS.
func (tree *osTree[K, V]) Foreach(action func(idx int64, color RBColor, key K, val V) bool) {
	aux := tree.root
	if tree.count <= 0 || aux == nilRef {
		return
	}

	stack := make([]nodeRef, 0, 64)
	for ; aux != nilRef; aux = tree.nodes[aux].left {
		stack = append(stack, aux)
	}

	idx := int64(0)
	for size := len(stack); size > 0; size = len(stack) {
		aux = stack[size-1]
		if nd := &tree.nodes[aux]; !action(idx, nd.color, nd.key, nd.val) {
			return
		}
		idx++
		stack = stack[:size-1]
		for aux = tree.nodes[aux].right; aux != nilRef; aux = tree.nodes[aux].left {
			stack = append(stack, aux)
		}
	}
}

func (tree *osTree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := tree.gen
		for x := tree.minimum(tree.root); x != nilRef; {
			key, seq := tree.nodes[x].key, tree.nodes[x].seq
			if !yield(key, tree.nodes[x].val) {
				return
			}
			if gen == tree.gen {
				x = tree.succ(x)
				continue
			}
			// Structure changed under the iterator, x may be released.
			// Re-seek from the last yielded position.
			gen = tree.gen
			x = tree.after(key, seq)
		}
	}
}

func (tree *osTree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		gen := tree.gen
		for x := tree.maximum(tree.root); x != nilRef; {
			key, seq := tree.nodes[x].key, tree.nodes[x].seq
			if !yield(key, tree.nodes[x].val) {
				return
			}
			if gen == tree.gen {
				x = tree.pred(x)
				continue
			}
			gen = tree.gen
			x = tree.before(key, seq)
		}
	}
}

func (tree *osTree[K, V]) EqualRange(key K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		rank := tree.lowerRank(key)
		if rank >= tree.count {
			return
		}
		for x := tree.selectNode(rank + 1); x != nilRef && tree.cmp(tree.nodes[x].key, key) == 0; x = tree.succ(x) {
			if !yield(tree.nodes[x].key, tree.nodes[x].val) {
				return
			}
		}
	}
}

func (tree *osTree[K, V]) Clone() OrderStatisticTree[K, V] {
	return &osTree[K, V]{
		osArena:  tree.osArena.clone(),
		cmp:      tree.cmp,
		root:     tree.root,
		count:    tree.count,
		initCap:  tree.initCap,
		isUnique: tree.isUnique,
		isDesc:   tree.isDesc,
	}
}

func (tree *osTree[K, V]) Release() {
	tree.reset()
	tree.root = nilRef
	tree.count = 0
	tree.gen++
}

type OSTreeOpt[K any, V any] func(*osTree[K, V])

// WithUniqueKeys rejects the insertion of a key already in the tree.
// The tree accepts duplicates without it.
func WithUniqueKeys[K any, V any]() OSTreeOpt[K, V] {
	return func(tree *osTree[K, V]) {
		tree.isUnique = true
	}
}

func WithDesc[K any, V any]() OSTreeOpt[K, V] {
	return func(tree *osTree[K, V]) {
		tree.isDesc = true
	}
}

func WithInitCapacity[K any, V any](capacity int) OSTreeOpt[K, V] {
	return func(tree *osTree[K, V]) {
		tree.initCap = capacity
	}
}

func NewOrderStatisticTree[K infra.OrderedKey, V any](opts ...OSTreeOpt[K, V]) OrderStatisticTree[K, V] {
	return NewOrderStatisticTreeFunc[K, V](infra.DefaultOrderedKeyComparator[K], opts...)
}

func NewOrderStatisticTreeFunc[K any, V any](cmp infra.OrderedKeyComparator[K], opts ...OSTreeOpt[K, V]) OrderStatisticTree[K, V] {
	infra.MustHold(cmp != nil, "[ostree] new", "nil comparator")
	tree := &osTree[K, V]{
		cmp:  cmp,
		root: nilRef,
	}
	for _, o := range opts {
		o(tree)
	}
	if tree.isDesc {
		tree.cmp = infra.ReverseComparator(cmp)
	}
	tree.osArena = newOSArena[K, V](tree.initCap)
	return tree
}
