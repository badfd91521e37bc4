package ordered

import (
	"sync"
)

// Locked serializes access to a container that is not safe for concurrent
// use: many readers or one writer at a time.
//
//	ms := ordered.NewLocked(ordered.NewMultiset[string]())
//	ms.Write(func(s *ordered.Multiset[string]) { s.Insert("x") })
//	ms.Read(func(s *ordered.Multiset[string]) { n = s.CountOf("x") })
type Locked[C any] struct {
	lock sync.RWMutex
	c    C
}

func NewLocked[C any](c C) *Locked[C] {
	return &Locked[C]{c: c}
}

// Read runs fn under the read lock. fn must not mutate the container.
func (l *Locked[C]) Read(fn func(c C)) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	fn(l.c)
}

func (l *Locked[C]) Write(fn func(c C)) {
	l.lock.Lock()
	defer l.lock.Unlock()
	fn(l.c)
}
