//go:build mrwlock_cachelinesize_256

package opt

// CacheLineSize_ is fixed by the mrwlock_cachelinesize_256 build tag.
const CacheLineSize_ = 256
