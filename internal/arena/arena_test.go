package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArenaAllocGetFree(t *testing.T) {
	a := New[int]()

	id0 := a.Alloc()
	*a.Get(id0) = 42
	require.Equal(t, 42, *a.Get(id0))
	require.True(t, a.Alive(id0))

	id1 := a.Alloc()
	*a.Get(id1) = 7
	require.Equal(t, 2, a.Len())

	a.Free(id0)
	require.False(t, a.Alive(id0))
	require.Equal(t, 0, *a.Get(id0))

	id2 := a.Alloc()
	require.Equal(t, id0, id2, "freed id should be reused before growing")
	require.Equal(t, 2, a.Len())
	require.Equal(t, 2, a.LiveCount())
}

func TestFreeListLIFO(t *testing.T) {
	var f FreeList[int32]
	f.Push(1)
	f.Push(2)
	f.Push(3)
	require.Equal(t, 3, f.Len())

	id, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, int32(3), id)

	id, ok = f.Pop()
	require.True(t, ok)
	require.Equal(t, int32(2), id)

	require.Equal(t, 1, f.Len())
}

func TestArenaWithCapacity(t *testing.T) {
	a := NewWithCapacity[string](4)
	require.Equal(t, 0, a.Len())
	id := a.Alloc()
	*a.Get(id) = "hello"
	require.Equal(t, "hello", *a.Get(id))
}
