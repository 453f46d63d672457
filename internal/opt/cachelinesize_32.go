//go:build mrwlock_cachelinesize_32

package opt

// CacheLineSize_ is fixed by the mrwlock_cachelinesize_32 build tag.
const CacheLineSize_ = 32
