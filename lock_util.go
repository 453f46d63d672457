package mrwlock

import (
	_ "unsafe" // for linkname

	"github.com/llxisdsh/mrwlock/internal/opt"
)

// noCopy may be added to structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
//
// Note that it must not be embedded, due to the Lock and Unlock methods.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// trySpin burns a few cycles if the runtime thinks spinning is worthwhile
// (multicore, idle Ps, not too many spins yet). It returns false once the
// caller should stop spinning and park instead.
func trySpin(spins *int) bool {
	//goland:noinspection GoBoolExpressions
	if opt.Race_ {
		return false
	}
	if runtime_canSpin(*spins) {
		*spins++
		runtime_doSpin()
		return true
	}
	return false
}

// nolint:all
//
//go:linkname runtime_canSpin sync.runtime_canSpin
//goland:noinspection ALL
func runtime_canSpin(i int) bool

// nolint:all
//
//go:linkname runtime_doSpin sync.runtime_doSpin
//goland:noinspection ALL
func runtime_doSpin()
