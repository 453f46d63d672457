package mrwlock

// WriteGuard is exclusive access to the value of an MrwLock.
//
// A Release deferred directly (defer g.Release()) while the goroutine is
// panicking poisons the lock and re-raises the panic. A holder that gives
// up mid-update without panicking calls Abandon instead.
type WriteGuard[T any] struct {
	state *LockState
	data  *T
	st    guardState
}

// Get returns a pointer to the protected value. It panics unless the guard
// is held.
func (g *WriteGuard[T]) Get() *T {
	g.st.mustHold("Get")
	return g.data
}

// Load returns a copy of the protected value.
func (g *WriteGuard[T]) Load() T {
	return *g.Get()
}

// Set replaces the protected value.
func (g *WriteGuard[T]) Set(v T) {
	*g.Get() = v
}

// ToRead downgrades to a single reader slot without letting a writer in
// between. The write guard is finished afterwards.
func (g *WriteGuard[T]) ToRead() *ReadGuard[T] {
	g.st.mustHold("ToRead")
	g.st = guardDone
	g.state.ToRead()
	return &ReadGuard[T]{state: g.state, data: g.data}
}

// EarlyRelease gives up exclusive access while keeping the guard. Until
// Reobtain or TryReobtain succeeds Get panics.
func (g *WriteGuard[T]) EarlyRelease() {
	g.st.mustHold("EarlyRelease")
	g.st = guardReleased
	g.state.DropWrite()
}

// Reobtain takes exclusive access again after EarlyRelease. On error the
// guard stays released.
func (g *WriteGuard[T]) Reobtain() error {
	g.st.mustBeReleased("Reobtain")
	if err := g.state.Write(); err != nil {
		return err
	}
	g.st = guardHeld
	return nil
}

// TryReobtain is Reobtain returning ErrWouldBlock instead of waiting.
func (g *WriteGuard[T]) TryReobtain() error {
	g.st.mustBeReleased("TryReobtain")
	if err := g.state.TryWrite(); err != nil {
		return err
	}
	g.st = guardHeld
	return nil
}

// Released reports whether the guard currently does not hold the lock.
func (g *WriteGuard[T]) Released() bool {
	return g.st != guardHeld
}

// Release gives exclusive access back. It is a no-op unless the guard is
// held. When deferred directly and run during a panic, it abandons the
// guard and panics again with the same value.
func (g *WriteGuard[T]) Release() {
	if g.st == guardHeld {
		if r := recover(); r != nil {
			g.Abandon()
			panic(r)
		}
		g.state.DropWrite()
	}
	g.st = guardDone
}

// Abandon releases exclusive access and poisons the lock, marking the
// value as possibly half-updated. Later acquisitions fail with ErrPoisoned
// until ClearPoison.
func (g *WriteGuard[T]) Abandon() {
	if g.st == guardHeld {
		g.state.Poison()
		g.state.DropWrite()
	}
	g.st = guardDone
}
