package mrwlock

import "errors"

// Errors returned by every fallible acquisition. Compare with errors.Is.
var (
	// ErrTooManyReaders is returned when the reader count is at MaxReaders.
	// It clears as soon as some reader releases.
	ErrTooManyReaders = errors.New("mrwlock: too many readers")

	// ErrWouldBlock is returned by the Try variants when the lock cannot be
	// taken right now.
	ErrWouldBlock = errors.New("mrwlock: operation would block")

	// ErrPoisoned is returned when a previous write holder released the
	// lock abnormally. The attempt that reports it leaves the lock exactly
	// as it found it; see LockState.ClearPoison.
	ErrPoisoned = errors.New("mrwlock: lock poisoned")
)
