package lrucache

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slices"
)

func TestEvictionAfterCapacityPlusOne(t *testing.T) {
	c := New[string, int](3)
	for i, k := range []string{"a", "b", "c", "d", "a"} {
		c.Put(k, i)
	}

	require.Equal(t, 3, c.Len())
	keys := c.Keys()
	slices.Sort(keys)
	require.Equal(t, []string{"a", "c", "d"}, keys)

	_, ok := c.Peek("b")
	require.False(t, ok)
}

func TestGetBumpsRecency(t *testing.T) {
	c := New[string, int](2)
	c.Put("a", 1)
	c.Put("b", 2)
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", 3) // should evict "b", not "a"

	_, ok = c.Peek("a")
	require.True(t, ok)
	_, ok = c.Peek("b")
	require.False(t, ok)
	_, ok = c.Peek("c")
	require.True(t, ok)
}

func TestResizeEvicts(t *testing.T) {
	c := New[int, int](4)
	for i := 0; i < 4; i++ {
		c.Put(i, i*i)
	}
	c.Resize(2)
	require.Equal(t, 2, c.Len())
	keys := c.Keys()
	slices.Sort(keys)
	require.Equal(t, []int{2, 3}, keys)
}

func TestClear(t *testing.T) {
	c := New[int, int](2)
	c.Put(1, 1)
	c.Clear()
	require.Equal(t, 0, c.Len())
	_, ok := c.Peek(1)
	require.False(t, ok)
}
