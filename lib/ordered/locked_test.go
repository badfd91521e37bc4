package ordered

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/benz9527/xcoll/lib/tree"
	"github.com/benz9527/xcoll/lib/xlog"
)

func TestLocked_ConcurrentReadWrite(t *testing.T) {
	pool, err := ants.NewPool(16,
		ants.WithPreAlloc(true),
		ants.WithLogger(xlog.NewAntsLogger(zaptest.NewLogger(t))),
	)
	require.NoError(t, err)
	defer pool.Release()

	const (
		writers = 8
		perTask = 500
	)
	ms := NewLocked(NewMultiset[int]())
	var (
		wg    sync.WaitGroup
		reads atomic.Int64
	)
	for w := range writers {
		wg.Add(2)
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			for i := range perTask {
				ms.Write(func(s *Multiset[int]) {
					s.Insert(w*perTask + i%50)
				})
			}
		}))
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			for i := range perTask {
				ms.Read(func(s *Multiset[int]) {
					if n := s.Len(); n > 0 {
						_ = s.At(int64(i) % n)
					}
					_ = s.CountOf(w * perTask)
				})
				reads.Add(1)
			}
		}))
	}
	wg.Wait()

	require.Equal(t, int64(writers*perTask), reads.Load())
	ms.Read(func(s *Multiset[int]) {
		require.Equal(t, int64(writers*perTask), s.Len())
		for w := range writers {
			require.Equal(t, int64(perTask/50), s.CountOf(w*perTask+7))
		}
		require.NoError(t, tree.Validate(s.tree))
	})
}

func TestLocked_DictWrite(t *testing.T) {
	d := NewLocked(NewDict[string, int]())
	d.Write(func(d *Dict[string, int]) {
		d.Set("a", 1)
		d.Set("a", 2)
	})
	d.Read(func(d *Dict[string, int]) {
		v, ok := d.Get("a")
		require.True(t, ok)
		require.Equal(t, 2, v)
	})
}
