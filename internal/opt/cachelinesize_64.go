//go:build mrwlock_cachelinesize_64

package opt

// CacheLineSize_ is fixed by the mrwlock_cachelinesize_64 build tag.
const CacheLineSize_ = 64
