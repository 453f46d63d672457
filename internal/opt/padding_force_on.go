//go:build mrwlock_enable_padding

package opt

const Padded_ = true

// Pad_ sits between a lock word and the value it guards, so that writes to
// the value do not invalidate the cache line readers spin on.
// Padding is force-enabled via the mrwlock_enable_padding build tag.
// Use: go build -tags=mrwlock_enable_padding
type Pad_ struct {
	_ [CacheLineSize_]byte
}
