package mrwlock

// SliceWriteGuard is exclusive access to an MrwLock over a slice type,
// viewed as []E. It can change elements in place but not the length of
// the owning slice; use MrwLock.Write for append.
type SliceWriteGuard[E any] struct {
	state *LockState
	src   *[]E
	view  []E
	st    guardState
}

// WriteSlice acquires exclusive access to l and returns a slice guard.
func WriteSlice[S ~[]E, E any](l *MrwLock[S]) (*SliceWriteGuard[E], error) {
	if err := l.state.Write(); err != nil {
		return nil, err
	}
	src := sliceSource[S, E](&l.data)
	return &SliceWriteGuard[E]{state: &l.state, src: src, view: *src}, nil
}

// TryWriteSlice is WriteSlice returning ErrWouldBlock instead of waiting.
func TryWriteSlice[S ~[]E, E any](l *MrwLock[S]) (*SliceWriteGuard[E], error) {
	if err := l.state.TryWrite(); err != nil {
		return nil, err
	}
	src := sliceSource[S, E](&l.data)
	return &SliceWriteGuard[E]{state: &l.state, src: src, view: *src}, nil
}

// Slice returns the guarded elements.
func (g *SliceWriteGuard[E]) Slice() []E {
	g.st.mustHold("Slice")
	return g.view
}

// At returns the i-th element.
func (g *SliceWriteGuard[E]) At(i int) E {
	return g.Slice()[i]
}

// Set replaces the i-th element.
func (g *SliceWriteGuard[E]) Set(i int, v E) {
	g.Slice()[i] = v
}

// Len returns the number of elements in the view.
func (g *SliceWriteGuard[E]) Len() int {
	return len(g.Slice())
}

// ToRead downgrades to a single reader slot. The write guard is finished
// afterwards.
func (g *SliceWriteGuard[E]) ToRead() *SliceReadGuard[E] {
	g.st.mustHold("ToRead")
	g.st = guardDone
	g.state.ToRead()
	return &SliceReadGuard[E]{state: g.state, src: g.src, view: g.view}
}

// EarlyRelease gives up exclusive access while keeping the guard.
func (g *SliceWriteGuard[E]) EarlyRelease() {
	g.st.mustHold("EarlyRelease")
	g.st = guardReleased
	g.view = nil
	g.state.DropWrite()
}

// Reobtain takes exclusive access again and refreshes the view.
func (g *SliceWriteGuard[E]) Reobtain() error {
	g.st.mustBeReleased("Reobtain")
	if err := g.state.Write(); err != nil {
		return err
	}
	g.st = guardHeld
	g.view = *g.src
	return nil
}

// TryReobtain is Reobtain returning ErrWouldBlock instead of waiting.
func (g *SliceWriteGuard[E]) TryReobtain() error {
	g.st.mustBeReleased("TryReobtain")
	if err := g.state.TryWrite(); err != nil {
		return err
	}
	g.st = guardHeld
	g.view = *g.src
	return nil
}

// Released reports whether the guard currently does not hold the lock.
func (g *SliceWriteGuard[E]) Released() bool {
	return g.st != guardHeld
}

// Release gives exclusive access back. Like WriteGuard.Release, a direct
// deferred call during a panic poisons the lock and re-panics.
func (g *SliceWriteGuard[E]) Release() {
	if g.st == guardHeld {
		if r := recover(); r != nil {
			g.Abandon()
			panic(r)
		}
		g.state.DropWrite()
	}
	g.st = guardDone
	g.view = nil
}

// Abandon releases exclusive access and poisons the lock.
func (g *SliceWriteGuard[E]) Abandon() {
	if g.st == guardHeld {
		g.state.Poison()
		g.state.DropWrite()
	}
	g.st = guardDone
	g.view = nil
}
