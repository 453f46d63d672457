package mrwlock

import (
	"github.com/llxisdsh/pb"
)

// Group is a set of MrwLocks addressed by key, created on first use.
//
// Features:
//   - Lock(k) returns the same *MrwLock for k until Delete(k).
//   - Concurrent first use of a key creates exactly one lock.
//   - Read/Write shortcuts acquire a guard on the key's lock.
//
// Usage:
//
//	g := mrwlock.NewGroup(func(name string) []byte { return load(name) })
//
//	w, err := g.Write("config")
//	if err != nil {
//		return err
//	}
//	w.Set(append(w.Load(), '\n'))
//	w.Release()
//
// Deleting a key drops the group's reference only; guards already taken
// on the old lock keep working against it.
type Group[K comparable, T any] struct {
	_    noCopy
	m    pb.MapOf[K, *MrwLock[T]]
	init func(K) T
}

// NewGroup returns a Group whose locks start from init(key). A nil init
// starts every lock from the zero T, as does the zero Group.
// init runs while the key's bucket is locked and must not use the Group.
func NewGroup[K comparable, T any](init func(K) T) *Group[K, T] {
	return &Group[K, T]{init: init}
}

// Lock returns the lock for k, creating it if needed.
func (g *Group[K, T]) Lock(k K) *MrwLock[T] {
	if l, ok := g.m.Load(k); ok {
		return l
	}
	l, _ := g.m.ProcessEntry(
		k,
		func(e *pb.EntryOf[K, *MrwLock[T]]) (*pb.EntryOf[K, *MrwLock[T]], *MrwLock[T], bool) {
			if e != nil {
				return e, e.Value, true
			}
			l := &MrwLock[T]{}
			if g.init != nil {
				l.data = g.init(k)
			}
			return &pb.EntryOf[K, *MrwLock[T]]{Value: l}, l, false
		},
	)
	return l
}

// Load returns the lock for k without creating it.
func (g *Group[K, T]) Load(k K) (*MrwLock[T], bool) {
	return g.m.Load(k)
}

// Delete forgets k. It reports whether k was present.
func (g *Group[K, T]) Delete(k K) bool {
	_, ok := g.m.ProcessEntry(
		k,
		func(e *pb.EntryOf[K, *MrwLock[T]]) (*pb.EntryOf[K, *MrwLock[T]], *MrwLock[T], bool) {
			if e != nil {
				return nil, nil, true
			}
			return nil, nil, false
		},
	)
	return ok
}

// Range calls fn for each key and lock until fn returns false.
func (g *Group[K, T]) Range(fn func(k K, l *MrwLock[T]) bool) {
	g.m.Range(fn)
}

// Len returns the number of keys.
func (g *Group[K, T]) Len() int {
	return g.m.Size()
}

// Read acquires shared access to the value for k.
func (g *Group[K, T]) Read(k K) (*ReadGuard[T], error) {
	return g.Lock(k).Read()
}

// Write acquires exclusive access to the value for k.
func (g *Group[K, T]) Write(k K) (*WriteGuard[T], error) {
	return g.Lock(k).Write()
}
