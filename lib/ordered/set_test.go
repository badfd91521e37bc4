package ordered

import (
	"fmt"
	randv2 "math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/benz9527/xcoll/lib/infra"
	"github.com/benz9527/xcoll/lib/tree"
)

func requireViolation(t *testing.T, op string, fn func()) *infra.ContractViolation {
	var cv *infra.ContractViolation
	require.Panics(t, func() {
		defer func() {
			r := recover()
			cv, _ = r.(*infra.ContractViolation)
			panic(r)
		}()
		fn()
	})
	require.NotNil(t, cv)
	require.Equal(t, op, cv.Op)
	return cv
}

func TestSet_ConcreteScenario(t *testing.T) {
	s := SetOf(5, 3, 8, 1, 4, 7, 9)
	require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, s.ToSlice())
	require.Equal(t, 1, s.At(0))
	require.Equal(t, 9, s.At(6))
	require.Equal(t, int64(1), s.CountOf(5))

	require.Equal(t, int64(1), s.Remove(5))
	require.Equal(t, []int{1, 3, 4, 7, 8, 9}, s.ToSlice())
	require.Equal(t, int64(6), s.Len())
	require.NoError(t, tree.Validate(s.tree))
}

func TestSet_InsertRemoveContains(t *testing.T) {
	s := NewSet[string]()
	require.True(t, s.IsEmpty())
	require.Equal(t, int64(3), s.Insert("b", "a", "c", "a", "b"))
	require.Equal(t, int64(3), s.Len())
	require.Equal(t, "set[a b c]", s.String())

	require.True(t, s.Contains())
	require.True(t, s.Contains("a", "c"))
	require.False(t, s.Contains("a", "z"))

	first, ok := s.First()
	require.True(t, ok)
	require.Equal(t, "a", first)
	last, ok := s.Last()
	require.True(t, ok)
	require.Equal(t, "c", last)

	require.Equal(t, int64(0), s.Remove("z"))
	require.Equal(t, int64(2), s.Remove("a", "c", "a"))
	require.Equal(t, []string{"b"}, s.ToSlice())

	s.Clear()
	require.True(t, s.IsEmpty())
	_, ok = s.First()
	require.False(t, ok)
	_, ok = s.Last()
	require.False(t, ok)

	require.Equal(t, int64(2), s.Insert("y", "x"))
	require.Equal(t, []string{"x", "y"}, s.ToSlice())
}

func TestSet_Iterators(t *testing.T) {
	s := SetOf(3, 1, 2)
	fwd := make([]int, 0, 3)
	for e := range s.All() {
		fwd = append(fwd, e)
	}
	require.Equal(t, []int{1, 2, 3}, fwd)

	bwd := make([]int, 0, 3)
	for e := range s.Backward() {
		bwd = append(bwd, e)
	}
	require.Equal(t, []int{3, 2, 1}, bwd)

	// Restartable.
	again := make([]int, 0, 3)
	for e := range s.All() {
		if e > 2 {
			break
		}
		again = append(again, e)
	}
	require.Equal(t, []int{1, 2}, again)
}

func TestSet_DescAndFunc(t *testing.T) {
	desc := NewSet[int](WithDesc())
	desc.Insert(1, 5, 3)
	require.Equal(t, []int{5, 3, 1}, desc.ToSlice())
	require.Equal(t, 5, desc.At(0))

	fold := NewSetFunc[string](func(i, j string) int64 {
		return infra.DefaultOrderedKeyComparator(strings.ToLower(i), strings.ToLower(j))
	})
	require.Equal(t, int64(2), fold.Insert("Go", "go", "GO", "rust"))
	require.True(t, fold.Contains("gO"))
	require.Equal(t, []string{"Go", "rust"}, fold.ToSlice())

	// Results of the algebra keep the operand ordering.
	union := desc.Union(SetOf(4, 2))
	require.Equal(t, []int{5, 4, 3, 2, 1}, union.ToSlice())
}

func TestSet_ContractViolation(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	s := NewSet[int](WithLogger(zap.New(core)))
	s.Insert(1, 2, 3)
	require.False(t, s.Insert(2) > 0)
	require.Equal(t, 1, logs.FilterMessage("duplicate key rejected").Len())

	testcases := []struct {
		name string
		i    int64
	}{
		{"negative", -1},
		{"len", 3},
		{"far", 1 << 40},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			cv := requireViolation(tt, "[set] at", func() {
				_ = s.At(tc.i)
			})
			require.Equal(tt, fmt.Sprintf("index %d out of range [0,3)", tc.i), cv.Reason)
			require.Equal(tt, "set_test.go", fmt.Sprintf("%s", cv.Frame))
		})
	}

	entries := logs.FilterMessage("contract violation").All()
	require.Len(t, entries, len(testcases))
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "ordered", entries[0].LoggerName)
	require.Equal(t, "set", entries[0].ContextMap()["container"])
	require.Equal(t, int64(-1), entries[0].ContextMap()["index"])
}

func TestSet_AlgebraLaws(t *testing.T) {
	a := SetOf(1, 2, 3, 4, 5, 6)
	b := SetOf(4, 5, 6, 7, 8)
	c := SetOf(100, 200)

	require.True(t, a.Union(a).Equal(a))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, a.Union(b).ToSlice())
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 100, 200}, a.Union(b, c).ToSlice())

	inter := a.Intersect(b)
	require.Equal(t, []int{4, 5, 6}, inter.ToSlice())
	require.True(t, inter.IsSubsetOf(a))
	require.True(t, inter.IsSubsetOf(b))
	require.True(t, a.Intersect(b, c).IsEmpty())

	require.True(t, a.Subtract(a).IsEmpty())
	require.Equal(t, []int{1, 2, 3}, a.Subtract(b).ToSlice())
	require.Equal(t, []int{1, 2}, a.Subtract(b, SetOf(3)).ToSlice())

	require.Equal(t, a.Intersect(b).IsEmpty(), a.IsDisjointWith(b))
	require.Equal(t, a.Intersect(c).IsEmpty(), a.IsDisjointWith(c))
	require.True(t, c.IsDisjointWith(a))

	// Operands are untouched.
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, a.ToSlice())
	require.Equal(t, []int{4, 5, 6, 7, 8}, b.ToSlice())

	// nil operands are ignored.
	require.True(t, a.Union(nil).Equal(a))
}

func TestSet_SubsetRelations(t *testing.T) {
	testcases := []struct {
		name                                           string
		a, b                                           *Set[int]
		subset, strictSubset, superset, strictSuperset bool
	}{
		{"equal", SetOf(1, 2), SetOf(2, 1), true, false, true, false},
		{"proper", SetOf(1), SetOf(1, 2), true, true, false, false},
		{"super", SetOf(1, 2, 3), SetOf(3), false, false, true, true},
		{"overlap", SetOf(1, 2), SetOf(2, 3), false, false, false, false},
		{"empty", NewSet[int](), SetOf(1), true, true, false, false},
		{"both empty", NewSet[int](), NewSet[int](), true, false, true, false},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(tt *testing.T) {
			require.Equal(tt, tc.subset, tc.a.IsSubsetOf(tc.b))
			require.Equal(tt, tc.strictSubset, tc.a.IsStrictSubsetOf(tc.b))
			require.Equal(tt, tc.superset, tc.a.IsSupersetOf(tc.b))
			require.Equal(tt, tc.strictSuperset, tc.a.IsStrictSupersetOf(tc.b))
		})
	}
}

func TestSet_InPlaceAlgebra(t *testing.T) {
	s := SetOf(1, 2, 3)
	s.UnionWith(SetOf(3, 4), SetOf(5))
	require.Equal(t, []int{1, 2, 3, 4, 5}, s.ToSlice())

	s.IntersectWith(SetOf(2, 3, 4, 9))
	require.Equal(t, []int{2, 3, 4}, s.ToSlice())

	s.SubtractWith(SetOf(3))
	require.Equal(t, []int{2, 4}, s.ToSlice())

	s.UnionWith(s)
	require.Equal(t, []int{2, 4}, s.ToSlice())
	s.IntersectWith(s)
	require.Equal(t, []int{2, 4}, s.ToSlice())
	s.SubtractWith(s)
	require.True(t, s.IsEmpty())

	require.Equal(t, int64(1), s.Insert(7))
	require.NoError(t, tree.Validate(s.tree))
}

func TestSet_Clone(t *testing.T) {
	s := SetOf(1, 2, 3)
	cp := s.Clone()
	cp.Insert(4)
	s.Remove(1)
	require.Equal(t, []int{2, 3}, s.ToSlice())
	require.Equal(t, []int{1, 2, 3, 4}, cp.ToSlice())
}

func TestSet_RemoveWhileIterating(t *testing.T) {
	s := SetOf(1, 2, 3, 4, 5, 6)
	yielded := make([]int, 0, 6)
	for e := range s.All() {
		yielded = append(yielded, e)
		s.Remove(e)
	}
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, yielded)
	require.True(t, s.IsEmpty())

	s.Insert(1, 2, 3, 4, 5, 6)
	yielded = yielded[:0]
	for e := range s.Backward() {
		yielded = append(yielded, e)
		s.Remove(e)
	}
	require.Equal(t, []int{6, 5, 4, 3, 2, 1}, yielded)
	require.True(t, s.IsEmpty())

	// Stale entries only.
	s.Insert(1, 2, 3, 4, 5, 6)
	for e := range s.All() {
		if e%3 != 0 {
			s.Remove(e)
		}
	}
	require.Equal(t, []int{3, 6}, s.ToSlice())
	require.NoError(t, tree.Validate(s.tree))
}

func TestSet_NilOperand(t *testing.T) {
	s := SetOf(1, 2)
	empty := NewSet[int]()
	var none *Set[int]

	require.False(t, s.IsSubsetOf(none))
	require.False(t, s.IsStrictSubsetOf(none))
	require.True(t, s.IsSupersetOf(none))
	require.True(t, s.IsStrictSupersetOf(none))
	require.True(t, s.IsDisjointWith(none))
	require.False(t, s.Equal(none))
	require.True(t, empty.Equal(none))
	require.True(t, empty.IsSubsetOf(none))

	ms := MultisetOf("a", "a")
	var noms *Multiset[string]
	require.False(t, ms.IsSubsetOf(noms))
	require.True(t, ms.IsStrictSupersetOf(noms))
	require.True(t, ms.IsDisjointWith(noms))
	require.False(t, ms.Equal(noms))
	require.True(t, NewMultiset[string]().Equal(noms))

	// nil operands of the algebra are skipped.
	require.Equal(t, []int{1, 2}, s.Intersect(none).ToSlice())
	require.Equal(t, []string{"a", "a"}, ms.Subtract(noms).ToSlice())
}

func TestMultiset_RemoveAllCopies(t *testing.T) {
	ms := MultisetOf("a", "a", "a", "b")
	require.Equal(t, int64(4), ms.Len())
	require.Equal(t, int64(3), ms.Remove("a"))
	require.Equal(t, []string{"b"}, ms.ToSlice())
	require.Equal(t, int64(1), ms.Len())
}

func TestMultiset_RemoveOneAndDistinct(t *testing.T) {
	ms := NewMultiset[string]()
	require.Equal(t, int64(6), ms.Insert("c", "a", "b", "a", "c", "a"))
	require.Equal(t, "multiset[a a a b c c]", ms.String())

	type run struct {
		e string
		n int64
	}
	runs := make([]run, 0, 3)
	for e, n := range ms.Distinct() {
		runs = append(runs, run{e, n})
	}
	require.Equal(t, []run{{"a", 3}, {"b", 1}, {"c", 2}}, runs)

	// The consumer may drop the run it was handed.
	runs = runs[:0]
	cp := ms.Clone()
	for e, n := range cp.Distinct() {
		runs = append(runs, run{e, n})
		require.Equal(t, n, cp.Remove(e))
	}
	require.Equal(t, []run{{"a", 3}, {"b", 1}, {"c", 2}}, runs)
	require.True(t, cp.IsEmpty())

	require.True(t, ms.RemoveOne("a"))
	require.False(t, ms.RemoveOne("z"))
	require.Equal(t, int64(2), ms.CountOf("a"))
	require.Equal(t, "b", ms.At(2))

	requireViolation(t, "[multiset] at", func() {
		_ = ms.At(ms.Len())
	})
}

func TestMultiset_Algebra(t *testing.T) {
	a := MultisetOf("a", "a", "b")
	b := MultisetOf("a", "b", "b", "c")

	require.Equal(t, []string{"a", "a", "b", "b", "c"}, a.Union(b).ToSlice())
	require.Equal(t, []string{"a", "b"}, a.Intersect(b).ToSlice())
	require.Equal(t, []string{"a"}, a.Subtract(b).ToSlice())
	require.Equal(t, []string{"b", "c"}, b.Subtract(a).ToSlice())

	// The largest count of any operand is subtracted.
	c := MultisetOf("a", "a", "a", "b")
	require.Equal(t, []string{"a"}, c.Subtract(MultisetOf("a"), MultisetOf("a", "a", "b")).ToSlice())

	require.True(t, a.Union(a).Equal(a))
	require.True(t, a.Subtract(a).IsEmpty())
	require.True(t, MultisetOf("a", "a").IsSubsetOf(a))
	require.False(t, MultisetOf("a", "a", "a").IsSubsetOf(a))
	require.True(t, a.IsStrictSupersetOf(MultisetOf("b")))
	require.False(t, a.IsDisjointWith(b))
	require.True(t, a.IsDisjointWith(MultisetOf("c", "c")))
	require.False(t, a.Equal(MultisetOf("a", "b", "b")))

	a.UnionWith(b)
	require.Equal(t, []string{"a", "a", "b", "b", "c"}, a.ToSlice())
	a.IntersectWith(MultisetOf("a", "b", "b", "b"))
	require.Equal(t, []string{"a", "b", "b"}, a.ToSlice())
	a.SubtractWith(MultisetOf("b"))
	require.Equal(t, []string{"a", "b"}, a.ToSlice())
}

func TestMultiset_RandomAlgebra(t *testing.T) {
	const alphabet = 16
	gen := func(n int) (*Multiset[int], map[int]int64) {
		ms, counts := NewMultiset[int](), make(map[int]int64, alphabet)
		for range n {
			e := randv2.IntN(alphabet)
			ms.Insert(e)
			counts[e]++
		}
		return ms, counts
	}
	expect := func(counts map[int]int64) []int {
		res := make([]int, 0, 64)
		for e := range alphabet {
			for range counts[e] {
				res = append(res, e)
			}
		}
		return res
	}

	for round := range 32 {
		t.Run(fmt.Sprintf("round-%d", round), func(tt *testing.T) {
			a, ca := gen(randv2.IntN(64))
			b, cb := gen(randv2.IntN(64))
			union, inter, sub := make(map[int]int64), make(map[int]int64), make(map[int]int64)
			for e := range alphabet {
				union[e] = max(ca[e], cb[e])
				inter[e] = min(ca[e], cb[e])
				sub[e] = max(ca[e]-cb[e], 0)
			}
			require.Equal(tt, expect(union), a.Union(b).ToSlice())
			require.Equal(tt, expect(inter), a.Intersect(b).ToSlice())
			require.Equal(tt, expect(sub), a.Subtract(b).ToSlice())
			require.True(tt, a.Intersect(b).IsSubsetOf(a))
			require.True(tt, a.Intersect(b).IsSubsetOf(b))
			require.Equal(tt, a.Intersect(b).IsEmpty(), a.IsDisjointWith(b))
			require.NoError(tt, tree.Validate(a.Union(b).tree))
		})
	}
}
