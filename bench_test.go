package mrwlock

import (
	"sync"
	"testing"
)

func BenchmarkMrwLock_Read(b *testing.B) {
	l := New(0)
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			r, _ := l.Read()
			_ = *r.Get()
			r.Release()
		}
	})
}

func BenchmarkRWMutex_Read(b *testing.B) {
	var mu sync.RWMutex
	var v int
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			mu.RLock()
			_ = v
			mu.RUnlock()
		}
	})
}

func BenchmarkLockState_Read(b *testing.B) {
	var ls LockState
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = ls.Read()
			ls.DropRead()
		}
	})
}

func BenchmarkMrwLock_Mixed(b *testing.B) {
	l := New(0)
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			i++
			if i%16 == 0 {
				_ = l.Update(func(v *int) { *v++ })
				continue
			}
			r, _ := l.Read()
			_ = *r.Get()
			r.Release()
		}
	})
}

func BenchmarkRWMutex_Mixed(b *testing.B) {
	var mu sync.RWMutex
	var v int
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			i++
			if i%16 == 0 {
				mu.Lock()
				v++
				mu.Unlock()
				continue
			}
			mu.RLock()
			_ = v
			mu.RUnlock()
		}
	})
}

func BenchmarkMrwLock_Downgrade(b *testing.B) {
	l := New(0)
	for i := 0; i < b.N; i++ {
		w, _ := l.Write()
		w.Set(i)
		r := w.ToRead()
		_ = r.Load()
		r.Release()
	}
}
