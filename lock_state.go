package mrwlock

import (
	"fmt"
	"math"
	"sync/atomic"
)

// LockState is the state machine behind MrwLock and its guards. It owns no
// data; it only decides when access to the data is legal.
//
// The whole state lives in one uint32:
//   - 0:                 unlocked
//   - 1 .. MaxReaders:   number of readers
//   - MaxReaders+1:      reserved, the reader count never reaches it
//   - math.MaxUint32:    write-locked
//
// plus a poison flag, set only by an abnormal write release.
//
// It is zero-value usable (starts unlocked, not poisoned). Blocking
// operations spin briefly and then park on an internal wait queue; there
// is no fairness between parked goroutines.
//
// LockState can be used directly to protect data the caller manages
// itself; every successful acquisition must be paired with exactly one
// DropRead or DropWrite (or converted by ToRead/ToWrite).
type LockState struct {
	_        noCopy
	state    atomic.Uint32
	poisoned atomic.Bool
	q        waitQueue
}

const (
	stateUnlocked    uint32 = 0
	stateWriteLocked uint32 = math.MaxUint32
	stateReaderCap   uint32 = stateWriteLocked - 1

	// MaxReaders is the maximum number of concurrent read holders.
	MaxReaders = stateReaderCap - 1
)

// Read acquires a reader slot, blocking while a writer holds the lock.
//
// It fails with ErrTooManyReaders when MaxReaders slots are taken, and with
// ErrPoisoned when the lock is poisoned. A failed Read leaves the reader
// count exactly as it was.
func (ls *LockState) Read() error {
	var spins int
	for {
		s := ls.state.Load()
		switch {
		case s == stateWriteLocked:
			if !trySpin(&spins) {
				ls.q.wait(&ls.state, s)
			}
		case s >= MaxReaders:
			return ErrTooManyReaders
		default:
			if ls.state.CompareAndSwap(s, s+1) {
				return ls.admitRead()
			}
		}
	}
}

// TryRead is like Read but returns ErrWouldBlock instead of waiting for a
// writer. Losing a race against other readers is retried, not reported.
// A poisoned Write briefly holds the word before rolling back, so TryRead
// can see ErrWouldBlock rather than ErrPoisoned in that window.
func (ls *LockState) TryRead() error {
	for {
		s := ls.state.Load()
		switch {
		case s == stateWriteLocked:
			return ErrWouldBlock
		case s >= MaxReaders:
			return ErrTooManyReaders
		default:
			if ls.state.CompareAndSwap(s, s+1) {
				return ls.admitRead()
			}
		}
	}
}

// admitRead undoes a fresh reader slot if the lock turned out poisoned.
func (ls *LockState) admitRead() error {
	if ls.poisoned.Load() {
		ls.DropRead()
		return ErrPoisoned
	}
	return nil
}

// Write acquires exclusive access, blocking while any reader or writer
// holds the lock. A poisoned lock is released again before ErrPoisoned is
// returned.
func (ls *LockState) Write() error {
	var spins int
	for !ls.state.CompareAndSwap(stateUnlocked, stateWriteLocked) {
		s := ls.state.Load()
		if s == stateUnlocked || trySpin(&spins) {
			continue
		}
		ls.q.wait(&ls.state, s)
	}
	return ls.admitWrite(stateUnlocked)
}

// TryWrite makes a single attempt at exclusive access and returns
// ErrWouldBlock if the lock is held in any mode.
func (ls *LockState) TryWrite() error {
	if !ls.state.CompareAndSwap(stateUnlocked, stateWriteLocked) {
		return ErrWouldBlock
	}
	return ls.admitWrite(stateUnlocked)
}

// ToWrite upgrades the caller's reader slot to exclusive access. It only
// succeeds once the caller is the sole reader and blocks until then.
//
// Two sole-reader upgrades racing each other, or an upgrade waiting on a
// reader that never leaves, deadlock. ToWrite does not try to detect this.
//
// On ErrPoisoned the caller keeps its reader slot.
func (ls *LockState) ToWrite() error {
	var spins int
	for !ls.state.CompareAndSwap(1, stateWriteLocked) {
		s := ls.state.Load()
		if s == 1 || trySpin(&spins) {
			continue
		}
		ls.q.wait(&ls.state, s)
	}
	return ls.admitWrite(1)
}

// TryToWrite is the non-blocking form of ToWrite.
func (ls *LockState) TryToWrite() error {
	if !ls.state.CompareAndSwap(1, stateWriteLocked) {
		return ErrWouldBlock
	}
	return ls.admitWrite(1)
}

// admitWrite puts the word back to prev if the lock turned out poisoned.
func (ls *LockState) admitWrite(prev uint32) error {
	if ls.poisoned.Load() {
		ls.state.Store(prev)
		ls.q.wake()
		return ErrPoisoned
	}
	return nil
}

// ToRead downgrades exclusive access to a single reader slot. The caller
// must hold the write lock, so no CAS is needed.
func (ls *LockState) ToRead() {
	ls.state.Store(1)
	ls.q.wake()
}

// DropRead releases one reader slot.
func (ls *LockState) DropRead() {
	// Only the last two transitions can satisfy a waiter: 1 lets a
	// sole-reader upgrade through, 0 lets a writer through.
	if s := ls.state.Add(^uint32(0)); s <= 1 {
		ls.q.wake()
	}
}

// DropWrite releases exclusive access. It never poisons the lock; use
// Poison first for an abnormal release.
func (ls *LockState) DropWrite() {
	ls.state.Store(stateUnlocked)
	ls.q.wake()
}

// Poison marks the lock as left in an unknown state. Poisoning is sticky
// until ClearPoison.
func (ls *LockState) Poison() {
	ls.poisoned.Store(true)
}

// ClearPoison accepts whatever state the protected data is in and makes
// the lock acquirable again.
func (ls *LockState) ClearPoison() {
	ls.poisoned.Store(false)
}

// IsPoisoned reports whether the lock is poisoned.
func (ls *LockState) IsPoisoned() bool {
	return ls.poisoned.Load()
}

// Snapshot returns a point-in-time view of the lock. It is meant for
// diagnostics; the lock may change before the caller looks at it.
func (ls *LockState) Snapshot() Snapshot {
	s := ls.state.Load()
	snap := Snapshot{Poisoned: ls.poisoned.Load()}
	switch s {
	case stateUnlocked:
		snap.Mode = Unlocked
	case stateWriteLocked:
		snap.Mode = WriteLocked
	default:
		snap.Mode = ReadLocked
		snap.Readers = s
	}
	return snap
}

// Mode is the decoded form of the lock word.
type Mode uint8

const (
	Unlocked Mode = iota
	ReadLocked
	WriteLocked
)

func (m Mode) String() string {
	switch m {
	case Unlocked:
		return "Unlocked"
	case ReadLocked:
		return "ReadLocked"
	case WriteLocked:
		return "WriteLocked"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// Snapshot describes a LockState at one instant.
type Snapshot struct {
	Mode Mode
	// Readers is the number of reader slots taken; zero unless Mode is
	// ReadLocked.
	Readers  uint32
	Poisoned bool
}

func (s Snapshot) String() string {
	str := s.Mode.String()
	if s.Mode == ReadLocked {
		str = fmt.Sprintf("%s(%d)", str, s.Readers)
	}
	if s.Poisoned {
		str += " poisoned"
	}
	return str
}
