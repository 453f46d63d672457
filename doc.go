// Package mrwlock provides a reader-writer lock with manual control over
// its guards.
//
// Compared to sync.RWMutex, a guard obtained from MrwLock can:
//   - convert in place: ReadGuard.ToWrite (sole reader only) and
//     WriteGuard.ToRead;
//   - give its slot back early with EarlyRelease and take it again later
//     with Reobtain, keeping the guard object;
//   - be cloned (read guards) to hand another reader slot to a different
//     goroutine.
//
// Slice-typed values can be locked as []E views with ReadSlice,
// WriteSlice and their Try variants.
//
// Every acquisition reports one of ErrTooManyReaders, ErrWouldBlock or
// ErrPoisoned on failure. A lock is poisoned only when a write holder is
// abandoned (WriteGuard.Abandon, a panic passing through a deferred
// WriteGuard.Release, or a panic inside MrwLock.Update) and stays poisoned
// until ClearPoison.
//
// Misusing the early-release protocol (touching data while released,
// reobtaining a held guard) panics instead of corrupting the reader count.
package mrwlock
