package benchmark

import (
	"sync"

	"github.com/llxisdsh/mrwlock"
	"github.com/puzpuzpuz/xsync/v4"
)

// ============================================================================
// Lock Adapters
// ============================================================================

// counter is an int behind some reader-writer lock.
type counter interface {
	Load() int
	Add(n int)
}

type mrwAdapter struct{ l *mrwlock.MrwLock[int] }

func newMrw() counter { return &mrwAdapter{l: mrwlock.New(0)} }

func (a *mrwAdapter) Load() int {
	r, _ := a.l.Read()
	v := *r.Get()
	r.Release()
	return v
}

func (a *mrwAdapter) Add(n int) {
	w, _ := a.l.Write()
	*w.Get() += n
	w.Release()
}

// mrwStateAdapter drives LockState directly, without guard allocations.
type mrwStateAdapter struct {
	ls mrwlock.LockState
	v  int
}

func newMrwState() counter { return &mrwStateAdapter{} }

func (a *mrwStateAdapter) Load() int {
	_ = a.ls.Read()
	v := a.v
	a.ls.DropRead()
	return v
}

func (a *mrwStateAdapter) Add(n int) {
	_ = a.ls.Write()
	a.v += n
	a.ls.DropWrite()
}

type rwMutexAdapter struct {
	mu sync.RWMutex
	v  int
}

func newRWMutex() counter { return &rwMutexAdapter{} }

func (a *rwMutexAdapter) Load() int {
	a.mu.RLock()
	v := a.v
	a.mu.RUnlock()
	return v
}

func (a *rwMutexAdapter) Add(n int) {
	a.mu.Lock()
	a.v += n
	a.mu.Unlock()
}

type rbMutexAdapter struct {
	mu *xsync.RBMutex
	v  int
}

func newRBMutex() counter { return &rbMutexAdapter{mu: xsync.NewRBMutex()} }

func (a *rbMutexAdapter) Load() int {
	t := a.mu.RLock()
	v := a.v
	a.mu.RUnlock(t)
	return v
}

func (a *rbMutexAdapter) Add(n int) {
	a.mu.Lock()
	a.v += n
	a.mu.Unlock()
}

var impls = []struct {
	name string
	make func() counter
}{
	{"MrwLock", newMrw},
	{"LockState", newMrwState},
	{"RWMutex", newRWMutex},
	{"xsync.RBMutex", newRBMutex},
}
