package mrwlock

// ReadGuard is shared access to the value of an MrwLock.
//
// A guard is owned by one goroutine at a time; clones may be handed to
// other goroutines. Always finish it with Release, typically:
//
//	g, err := l.Read()
//	if err != nil {
//		return err
//	}
//	defer g.Release()
type ReadGuard[T any] struct {
	state *LockState
	data  *T
	st    guardState
}

// Get returns a pointer to the protected value. The value must not be
// modified through it. Get panics unless the guard is held.
func (g *ReadGuard[T]) Get() *T {
	g.st.mustHold("Get")
	return g.data
}

// Load returns a copy of the protected value.
func (g *ReadGuard[T]) Load() T {
	return *g.Get()
}

// Clone takes one more reader slot and returns a second guard on the same
// value.
//
// Clone is a full Read: it blocks while a writer holds the lock (for
// instance one that got in during an EarlyRelease of another guard) and
// fails like Read does. It is not a cheap copy.
func (g *ReadGuard[T]) Clone() (*ReadGuard[T], error) {
	g.st.mustHold("Clone")
	if err := g.state.Read(); err != nil {
		return nil, err
	}
	return &ReadGuard[T]{state: g.state, data: g.data}, nil
}

// ToWrite upgrades to exclusive access once this guard is the only reader.
// On success the read guard is finished and must not be used again; on
// error it is still held.
//
// ToWrite deadlocks if another reader also waits to upgrade, or if some
// other reader is never released.
func (g *ReadGuard[T]) ToWrite() (*WriteGuard[T], error) {
	g.st.mustHold("ToWrite")
	if err := g.state.ToWrite(); err != nil {
		return nil, err
	}
	g.st = guardDone
	return &WriteGuard[T]{state: g.state, data: g.data}, nil
}

// TryToWrite is ToWrite returning ErrWouldBlock instead of waiting.
func (g *ReadGuard[T]) TryToWrite() (*WriteGuard[T], error) {
	g.st.mustHold("TryToWrite")
	if err := g.state.TryToWrite(); err != nil {
		return nil, err
	}
	g.st = guardDone
	return &WriteGuard[T]{state: g.state, data: g.data}, nil
}

// EarlyRelease gives the reader slot back while keeping the guard, so a
// writer can get in. Until Reobtain or TryReobtain succeeds the value may
// be changed by others and Get panics.
func (g *ReadGuard[T]) EarlyRelease() {
	g.st.mustHold("EarlyRelease")
	g.st = guardReleased
	g.state.DropRead()
}

// Reobtain takes a reader slot again after EarlyRelease, blocking while a
// writer holds the lock. On error the guard stays released.
func (g *ReadGuard[T]) Reobtain() error {
	g.st.mustBeReleased("Reobtain")
	if err := g.state.Read(); err != nil {
		return err
	}
	g.st = guardHeld
	return nil
}

// TryReobtain is Reobtain returning ErrWouldBlock instead of waiting.
func (g *ReadGuard[T]) TryReobtain() error {
	g.st.mustBeReleased("TryReobtain")
	if err := g.state.TryRead(); err != nil {
		return err
	}
	g.st = guardHeld
	return nil
}

// Released reports whether the guard currently does not hold a slot.
func (g *ReadGuard[T]) Released() bool {
	return g.st != guardHeld
}

// Release gives the reader slot back for good. It is a no-op on a guard
// that is early-released, converted, or already released.
func (g *ReadGuard[T]) Release() {
	if g.st == guardHeld {
		g.state.DropRead()
	}
	g.st = guardDone
}
