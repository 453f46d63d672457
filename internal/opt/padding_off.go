//go:build (amd64 || 386 || arm || mips || mipsle || wasm) && !mrwlock_disable_padding && !mrwlock_enable_padding

package opt

const Padded_ = false

// Pad_ sits between a lock word and the value it guards.
// Padding is disabled by default for:
// - amd64
// - 32-bit architectures (386, arm, mips, mipsle, wasm)
type Pad_ struct{}
