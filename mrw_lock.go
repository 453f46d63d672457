package mrwlock

import (
	"github.com/llxisdsh/mrwlock/internal/opt"
)

// MrwLock is a reader-writer lock around a value of type T whose guards
// can be converted between read and write mode, released early and
// reobtained, and (for readers) cloned.
//
// It is zero-value usable (unlocked, holding the zero T) and must not be
// copied after first use.
//
// Usage:
//
//	l := mrwlock.New(10)
//
//	r, _ := l.Read()
//	w, _ := r.ToWrite() // sole reader, so this upgrades
//	w.Set(5)
//	r = w.ToRead()
//	fmt.Println(r.Load()) // 5
//	r.Release()
//
// Guards are manual: every successful acquisition must end in Release (or
// a conversion into another guard). All access to the value goes through a
// guard; the lock itself has no other protection for it.
type MrwLock[T any] struct {
	state LockState
	_     opt.Pad_
	data  T
}

// New returns a lock protecting v.
func New[T any](v T) *MrwLock[T] {
	return &MrwLock[T]{data: v}
}

// Read acquires shared access, blocking while a writer holds the lock.
func (l *MrwLock[T]) Read() (*ReadGuard[T], error) {
	if err := l.state.Read(); err != nil {
		return nil, err
	}
	return &ReadGuard[T]{state: &l.state, data: &l.data}, nil
}

// TryRead acquires shared access or returns ErrWouldBlock.
func (l *MrwLock[T]) TryRead() (*ReadGuard[T], error) {
	if err := l.state.TryRead(); err != nil {
		return nil, err
	}
	return &ReadGuard[T]{state: &l.state, data: &l.data}, nil
}

// Write acquires exclusive access, blocking while anyone holds the lock.
func (l *MrwLock[T]) Write() (*WriteGuard[T], error) {
	if err := l.state.Write(); err != nil {
		return nil, err
	}
	return &WriteGuard[T]{state: &l.state, data: &l.data}, nil
}

// TryWrite acquires exclusive access or returns ErrWouldBlock.
func (l *MrwLock[T]) TryWrite() (*WriteGuard[T], error) {
	if err := l.state.TryWrite(); err != nil {
		return nil, err
	}
	return &WriteGuard[T]{state: &l.state, data: &l.data}, nil
}

// View calls fn with shared access to the value.
func (l *MrwLock[T]) View(fn func(v *T)) error {
	g, err := l.Read()
	if err != nil {
		return err
	}
	defer g.Release()
	fn(g.Get())
	return nil
}

// Update calls fn with exclusive access to the value. If fn panics or
// calls runtime.Goexit the lock is poisoned before the panic continues.
func (l *MrwLock[T]) Update(fn func(v *T)) error {
	g, err := l.Write()
	if err != nil {
		return err
	}
	normalReturn := false
	defer func() {
		if normalReturn {
			g.Release()
		} else {
			g.Abandon()
		}
	}()
	fn(g.Get())
	normalReturn = true
	return nil
}

// Load returns a copy of the value.
func (l *MrwLock[T]) Load() (v T, err error) {
	err = l.View(func(p *T) { v = *p })
	return v, err
}

// Store replaces the value.
func (l *MrwLock[T]) Store(v T) error {
	g, err := l.Write()
	if err != nil {
		return err
	}
	g.Set(v)
	g.Release()
	return nil
}

// IsPoisoned reports whether a write holder released the lock abnormally.
func (l *MrwLock[T]) IsPoisoned() bool {
	return l.state.IsPoisoned()
}

// ClearPoison accepts the value as it is and makes the lock usable again.
func (l *MrwLock[T]) ClearPoison() {
	l.state.ClearPoison()
}

// Snapshot reports the current lock mode, for diagnostics.
func (l *MrwLock[T]) Snapshot() Snapshot {
	return l.state.Snapshot()
}

// State exposes the lock's state machine, for callers that drive
// LockState directly.
func (l *MrwLock[T]) State() *LockState {
	return &l.state
}
