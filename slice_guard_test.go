package mrwlock

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceGuard_WriteThenRead(t *testing.T) {
	l := New([]int{1, 2, 3})
	w, err := TryWriteSlice(l)
	require.NoError(t, err)
	w.Set(2, 4)
	w.Release()

	r, err := TryReadSlice(l)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 4}, r.Slice())
	require.Equal(t, 3, r.Len())
	require.Equal(t, 4, r.At(2))
	r.Release()
}

func TestSliceGuard_ReadEarlyRelease(t *testing.T) {
	l := New([]int{1, 2, 3})
	r, err := ReadSlice(l)
	require.NoError(t, err)
	r.EarlyRelease()
	{
		w, err := WriteSlice(l)
		require.NoError(t, err)
		w.Set(2, 4)
		w.Release()
	}
	require.NoError(t, r.Reobtain())
	require.Equal(t, []int{1, 2, 4}, r.Slice())
	r.Release()
}

func TestSliceGuard_WriteEarlyRelease(t *testing.T) {
	l := New([]int{1, 2, 3})
	w, err := WriteSlice(l)
	require.NoError(t, err)
	w.EarlyRelease()
	{
		w2, err := WriteSlice(l)
		require.NoError(t, err)
		w2.Set(2, 4)
		w2.Release()
	}
	require.NoError(t, w.Reobtain())
	w.Set(0, 4)
	require.Equal(t, []int{4, 2, 4}, w.Slice())
	w.Release()
}

func TestSliceGuard_ViewRefreshedOnReobtain(t *testing.T) {
	l := New([]string{"a"})
	r, err := ReadSlice(l)
	require.NoError(t, err)
	r.EarlyRelease()

	w, err := l.Write()
	require.NoError(t, err)
	w.Set(append(w.Load(), "b", "c"))
	w.Release()

	require.NoError(t, r.TryReobtain())
	require.Equal(t, []string{"a", "b", "c"}, r.Slice())
	r.Release()
}

type scores []float64

func TestSliceGuard_NamedSliceType(t *testing.T) {
	l := New(scores{1.5, 2.5})
	w, err := WriteSlice(l)
	require.NoError(t, err)
	w.Set(0, 3)
	r := w.ToRead()
	require.Equal(t, []float64{3, 2.5}, r.Slice())

	w, err = r.ToWrite()
	require.NoError(t, err)
	w.Set(1, 4)
	w.Release()

	v, err := l.Load()
	require.NoError(t, err)
	require.Equal(t, scores{3, 4}, v)
}

func TestSliceGuard_CloneAndUpgrade(t *testing.T) {
	l := New([]byte("abc"))
	r, err := ReadSlice(l)
	require.NoError(t, err)
	r2, err := r.Clone()
	require.NoError(t, err)
	require.Equal(t, uint32(2), l.Snapshot().Readers)

	_, err = r.TryToWrite()
	require.ErrorIs(t, err, ErrWouldBlock)
	r2.Release()

	w, err := r.TryToWrite()
	require.NoError(t, err)
	require.True(t, r.Released())
	w.Set(0, 'x')
	require.Equal(t, byte('x'), w.At(0))
	require.Equal(t, 3, w.Len())

	_, err = TryReadSlice(l)
	require.ErrorIs(t, err, ErrWouldBlock)
	w.Release()

	r, err = TryReadSlice(l)
	require.NoError(t, err)
	require.Equal(t, "xbc", string(r.Slice()))
	r.Release()
}

func TestSliceGuard_TryReobtainWouldBlock(t *testing.T) {
	l := New([]int{0})
	w, err := WriteSlice(l)
	require.NoError(t, err)
	w.EarlyRelease()
	require.Panics(t, func() { w.Slice() })

	r, err := ReadSlice(l)
	require.NoError(t, err)
	require.ErrorIs(t, w.TryReobtain(), ErrWouldBlock)
	require.True(t, w.Released())
	r.Release()

	require.NoError(t, w.TryReobtain())
	w.Release()
	require.Equal(t, Unlocked, l.Snapshot().Mode)
}

func TestSliceGuard_AbandonPoisons(t *testing.T) {
	l := New([]int{1})
	w, err := WriteSlice(l)
	require.NoError(t, err)
	w.Abandon()

	_, err = ReadSlice(l)
	require.ErrorIs(t, err, ErrPoisoned)
	_, err = TryWriteSlice(l)
	require.ErrorIs(t, err, ErrPoisoned)
	require.Equal(t, Snapshot{Mode: Unlocked, Poisoned: true}, l.Snapshot())
}

func TestSliceGuard_DeferredReleaseDuringPanicPoisons(t *testing.T) {
	l := New([]int{1, 2})
	require.Panics(t, func() {
		w, err := WriteSlice(l)
		require.NoError(t, err)
		defer w.Release()
		w.Set(0, 9)
		_ = w.At(5)
	})
	require.True(t, l.IsPoisoned())
	require.Equal(t, Unlocked, l.Snapshot().Mode)

	_, err := TryReadSlice(l)
	require.ErrorIs(t, err, ErrPoisoned)
}
