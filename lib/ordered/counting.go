package ordered

import (
	"github.com/benz9527/xcoll/lib/tree"
)

// Probable is implemented by every container. Counts, probabilities and
// expected values are derived from the tree counting primitive only.
type Probable[K any] interface {
	// CountOf sums the occurrences of each key.
	CountOf(keys ...K) int64
	// ProbabilityOf is CountOf(keys...) / Len(), 0 for an empty container.
	ProbabilityOf(keys ...K) float64
	// ExpectedValueOf is trials * ProbabilityOf(keys...).
	ExpectedValueOf(trials int64, keys ...K) float64
}

type occurrences[K any, V any] struct {
	tree tree.OrderStatisticTree[K, V]
}

func (o occurrences[K, V]) CountOf(keys ...K) int64 {
	count := int64(0)
	for _, k := range keys {
		count += o.tree.CountOf(k)
	}
	return count
}

func (o occurrences[K, V]) ProbabilityOf(keys ...K) float64 {
	total := o.tree.Len()
	if total <= 0 {
		return 0.0
	}
	return float64(o.CountOf(keys...)) / float64(total)
}

func (o occurrences[K, V]) ExpectedValueOf(trials int64, keys ...K) float64 {
	return float64(trials) * o.ProbabilityOf(keys...)
}
