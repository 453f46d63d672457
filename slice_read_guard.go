package mrwlock

import "unsafe"

// SliceReadGuard is shared access to an MrwLock over a slice type, viewed
// directly as []E rather than through the owning value.
//
// The view is taken when the slot is acquired and refreshed on Reobtain,
// so growth of the slice by a whole-value writer during an EarlyRelease
// window is visible afterwards.
//
// Usage:
//
//	l := mrwlock.New([]int{1, 2, 3})
//	g, _ := mrwlock.TryReadSlice(l)
//	defer g.Release()
//	fmt.Println(g.Slice()) // [1 2 3]
type SliceReadGuard[E any] struct {
	state *LockState
	src   *[]E
	view  []E
	st    guardState
}

// sliceSource reinterprets a pointer to a slice-typed value as *[]E. S and
// []E share the same header layout.
func sliceSource[S ~[]E, E any](p *S) *[]E {
	return (*[]E)(unsafe.Pointer(p))
}

// ReadSlice acquires a reader slot on l and returns a slice guard. It
// blocks and fails like MrwLock.Read.
func ReadSlice[S ~[]E, E any](l *MrwLock[S]) (*SliceReadGuard[E], error) {
	if err := l.state.Read(); err != nil {
		return nil, err
	}
	return newSliceReadGuard(&l.state, sliceSource[S, E](&l.data)), nil
}

// TryReadSlice is ReadSlice returning ErrWouldBlock instead of waiting.
func TryReadSlice[S ~[]E, E any](l *MrwLock[S]) (*SliceReadGuard[E], error) {
	if err := l.state.TryRead(); err != nil {
		return nil, err
	}
	return newSliceReadGuard(&l.state, sliceSource[S, E](&l.data)), nil
}

func newSliceReadGuard[E any](state *LockState, src *[]E) *SliceReadGuard[E] {
	return &SliceReadGuard[E]{state: state, src: src, view: *src}
}

// Slice returns the guarded elements. They must not be modified.
func (g *SliceReadGuard[E]) Slice() []E {
	g.st.mustHold("Slice")
	return g.view
}

// At returns the i-th element.
func (g *SliceReadGuard[E]) At(i int) E {
	return g.Slice()[i]
}

// Len returns the number of elements in the view.
func (g *SliceReadGuard[E]) Len() int {
	return len(g.Slice())
}

// Clone takes one more reader slot; like ReadGuard.Clone it may block.
func (g *SliceReadGuard[E]) Clone() (*SliceReadGuard[E], error) {
	g.st.mustHold("Clone")
	if err := g.state.Read(); err != nil {
		return nil, err
	}
	return &SliceReadGuard[E]{state: g.state, src: g.src, view: g.view}, nil
}

// ToWrite upgrades to exclusive access once this guard is the only
// reader. See ReadGuard.ToWrite for the deadlock hazard.
func (g *SliceReadGuard[E]) ToWrite() (*SliceWriteGuard[E], error) {
	g.st.mustHold("ToWrite")
	if err := g.state.ToWrite(); err != nil {
		return nil, err
	}
	g.st = guardDone
	return &SliceWriteGuard[E]{state: g.state, src: g.src, view: g.view}, nil
}

// TryToWrite is ToWrite returning ErrWouldBlock instead of waiting.
func (g *SliceReadGuard[E]) TryToWrite() (*SliceWriteGuard[E], error) {
	g.st.mustHold("TryToWrite")
	if err := g.state.TryToWrite(); err != nil {
		return nil, err
	}
	g.st = guardDone
	return &SliceWriteGuard[E]{state: g.state, src: g.src, view: g.view}, nil
}

// EarlyRelease gives the reader slot back while keeping the guard.
func (g *SliceReadGuard[E]) EarlyRelease() {
	g.st.mustHold("EarlyRelease")
	g.st = guardReleased
	g.view = nil
	g.state.DropRead()
}

// Reobtain takes a reader slot again after EarlyRelease and refreshes the
// view.
func (g *SliceReadGuard[E]) Reobtain() error {
	g.st.mustBeReleased("Reobtain")
	if err := g.state.Read(); err != nil {
		return err
	}
	g.st = guardHeld
	g.view = *g.src
	return nil
}

// TryReobtain is Reobtain returning ErrWouldBlock instead of waiting.
func (g *SliceReadGuard[E]) TryReobtain() error {
	g.st.mustBeReleased("TryReobtain")
	if err := g.state.TryRead(); err != nil {
		return err
	}
	g.st = guardHeld
	g.view = *g.src
	return nil
}

// Released reports whether the guard currently does not hold a slot.
func (g *SliceReadGuard[E]) Released() bool {
	return g.st != guardHeld
}

// Release gives the reader slot back for good.
func (g *SliceReadGuard[E]) Release() {
	if g.st == guardHeld {
		g.state.DropRead()
	}
	g.st = guardDone
	g.view = nil
}
