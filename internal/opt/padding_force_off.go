//go:build mrwlock_disable_padding

package opt

const Padded_ = false

// Pad_ sits between a lock word and the value it guards.
// Padding is force-disabled via the mrwlock_disable_padding build tag.
// Use: go build -tags=mrwlock_disable_padding
type Pad_ struct{}
