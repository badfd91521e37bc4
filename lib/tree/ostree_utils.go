package tree

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

var (
	ErrRootViolation  = errors.New("ostree root violation")
	ErrRedViolation   = errors.New("ostree red violation")
	ErrBlackViolation = errors.New("ostree black violation")
	ErrSizeViolation  = errors.New("ostree size violation")
	ErrOrderViolation = errors.New("ostree order violation")
)

func isBlack[K any, V any](node OSNode[K, V]) bool {
	return node == nil || node.Color() == Black
}

func isRed[K any, V any](node OSNode[K, V]) bool {
	return node != nil && node.Color() == Red
}

func sizeOf[K any, V any](node OSNode[K, V]) int64 {
	if node == nil {
		return 0
	}
	return node.Size()
}

func blackDepthTo[K any, V any](target OSNode[K, V]) int {
	depth := 0
	for aux := target; aux != nil; aux = aux.Parent() {
		if isBlack[K, V](aux) {
			depth++
		}
	}
	return depth
}

// inorder visits every node in sorted order until fn returns an error.
func inorder[K any, V any](tree OrderStatisticTree[K, V], fn func(OSNode[K, V]) error) error {
	stack := make([]OSNode[K, V], 0, 64)
	defer func() {
		clear(stack)
	}()

	for aux := tree.Root(); aux != nil; aux = aux.Left() {
		stack = append(stack, aux)
	}
	for size := len(stack); size > 0; size = len(stack) {
		aux := stack[size-1]
		if err := fn(aux); err != nil {
			return err
		}
		stack = stack[:size-1]
		for aux = aux.Right(); aux != nil; aux = aux.Left() {
			stack = append(stack, aux)
		}
	}
	return nil
}

// References:
// https://en.wikipedia.org/wiki/Red%E2%80%93black_tree#Properties

// RootViolationValidate checks that the root is black, parentless and that
// its size matches the tree length.
func RootViolationValidate[K any, V any](tree OrderStatisticTree[K, V]) error {
	root := tree.Root()
	if root == nil {
		if tree.Len() != 0 {
			return fmt.Errorf("%w: nil root with len %d", ErrRootViolation, tree.Len())
		}
		return nil
	}
	if root.Parent() != nil {
		return fmt.Errorf("%w: root has a parent", ErrRootViolation)
	}
	if isRed[K, V](root) {
		return fmt.Errorf("%w: red root", ErrRootViolation)
	}
	if root.Size() != tree.Len() {
		return fmt.Errorf("%w: root size %d, len %d", ErrRootViolation, root.Size(), tree.Len())
	}
	return nil
}

// RedViolationValidate checks that no red node has a red child.
func RedViolationValidate[K any, V any](tree OrderStatisticTree[K, V]) error {
	return inorder(tree, func(aux OSNode[K, V]) error {
		if isRed[K, V](aux) && (isRed[K, V](aux.Left()) || isRed[K, V](aux.Right())) {
			return fmt.Errorf("%w: red node %v has a red child", ErrRedViolation, aux.Key())
		}
		return nil
	})
}

// BFS traversal to load all nodes with at least one nil child.
func bfsLeaves[K any, V any](tree OrderStatisticTree[K, V]) []OSNode[K, V] {
	aux := tree.Root()
	if aux == nil {
		return nil
	}

	leaves := make([]OSNode[K, V], 0, tree.Len()>>1+1)
	queue := make([]OSNode[K, V], 0, tree.Len()>>1+1)
	queue = append(queue, aux)
	for len(queue) > 0 {
		aux = queue[0]
		l, r := aux.Left(), aux.Right()
		if /* nil leaves, keep one */ l == nil || r == nil {
			leaves = append(leaves, aux)
		}
		if l != nil {
			queue = append(queue, l)
		}
		if r != nil {
			queue = append(queue, r)
		}
		queue = queue[1:]
	}
	return leaves
}

/*
<X> is a RED node.
[X] is a BLACK node (or NIL).

	        [13]
			/  \
		 <8>    [15]
		 / \    /  \
	  [6] [11] [14] [17]
	  /              /
	<1>            <16>

Each nil leaf to root black depth is equal.
*/
func BlackViolationValidate[K any, V any](tree OrderStatisticTree[K, V]) error {
	leaves := bfsLeaves[K, V](tree)
	if leaves == nil {
		return nil
	}

	blackDepth := blackDepthTo[K, V](leaves[0])
	for i := 1; i < len(leaves); i++ {
		if depth := blackDepthTo[K, V](leaves[i]); depth != blackDepth {
			return fmt.Errorf("%w: black depth %d at %v, expected %d", ErrBlackViolation, depth, leaves[i].Key(), blackDepth)
		}
	}
	return nil
}

// SizeViolationValidate checks size(x) == 1 + size(x.left) + size(x.right)
// on every node.
func SizeViolationValidate[K any, V any](tree OrderStatisticTree[K, V]) error {
	return inorder(tree, func(aux OSNode[K, V]) error {
		if expected := 1 + sizeOf[K, V](aux.Left()) + sizeOf[K, V](aux.Right()); aux.Size() != expected {
			return fmt.Errorf("%w: size %d at %v, expected %d", ErrSizeViolation, aux.Size(), aux.Key(), expected)
		}
		return nil
	})
}

// OrderViolationValidate checks that the in-order key sequence never
// decreases and that unique trees hold no duplicates.
func OrderViolationValidate[K any, V any](tree OrderStatisticTree[K, V]) error {
	var (
		prev    K
		hasPrev bool
		cmp     = tree.Comparator()
	)
	return inorder(tree, func(aux OSNode[K, V]) error {
		if hasPrev {
			res := cmp(prev, aux.Key())
			if res > 0 {
				return fmt.Errorf("%w: %v before %v", ErrOrderViolation, prev, aux.Key())
			}
			if res == 0 && tree.IsUnique() {
				return fmt.Errorf("%w: duplicate key %v in unique tree", ErrOrderViolation, aux.Key())
			}
		}
		prev, hasPrev = aux.Key(), true
		return nil
	})
}

// Validate runs every validator and combines the violations.
func Validate[K any, V any](tree OrderStatisticTree[K, V]) error {
	return multierr.Combine(
		RootViolationValidate(tree),
		RedViolationValidate(tree),
		BlackViolationValidate(tree),
		SizeViolationValidate(tree),
		OrderViolationValidate(tree),
	)
}
