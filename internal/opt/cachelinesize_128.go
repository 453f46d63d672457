//go:build mrwlock_cachelinesize_128

package opt

// CacheLineSize_ is fixed by the mrwlock_cachelinesize_128 build tag.
const CacheLineSize_ = 128
