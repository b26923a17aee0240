package orderedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/inviewkit/inview.go/orderedmap"
)

func TestOrderedMap_Size(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()

	require.Equal(t, 0, orderedMap.Size())
	require.True(t, orderedMap.IsEmpty())

	orderedMap.Set(1, 1)

	require.Equal(t, 1, orderedMap.Size())

	orderedMap.Set(3, 1)
	orderedMap.Set(2, 1)

	require.Equal(t, 3, orderedMap.Size())
	require.False(t, orderedMap.IsEmpty())

	orderedMap.Set(2, 2)

	require.Equal(t, 3, orderedMap.Size())

	orderedMap.Delete(2)

	require.Equal(t, 2, orderedMap.Size())
}

func TestOrderedMap_SetGetDelete(t *testing.T) {
	orderedMap := orderedmap.New[string, string]()

	// when adding the first new key,value pair, we must return false
	_, previousValueExisted := orderedMap.Set("key", "value")
	require.False(t, previousValueExisted)

	// we should be able to retrieve the just added element
	value, ok := orderedMap.Get("key")
	require.True(t, ok)
	require.Equal(t, "value", value)
	require.True(t, orderedMap.Has("key"))

	// overwriting the value returns the previous one
	previousValue, previousValueExisted := orderedMap.Set("key", "value2")
	require.True(t, previousValueExisted)
	require.Equal(t, "value", previousValue)

	// retrieving unknown keys reports their absence
	_, ok = orderedMap.Get("unknown")
	require.False(t, ok)
	require.False(t, orderedMap.Has("unknown"))

	// deleting actually removes the element
	require.True(t, orderedMap.Delete("key"))
	require.False(t, orderedMap.Has("key"))

	// deleting an unknown key returns false
	require.False(t, orderedMap.Delete("key"))
}

func TestOrderedMap_ForEach(t *testing.T) {
	orderedMap := orderedmap.New[string, int]()

	keys := []string{"a", "b", "c", "d"}
	for i, key := range keys {
		orderedMap.Set(key, i)
	}

	// iteration happens in insertion order
	var seenKeys []string
	orderedMap.ForEach(func(key string, value int) bool {
		seenKeys = append(seenKeys, key)

		return true
	})
	require.Equal(t, keys, seenKeys)

	// insertion order survives deletions in the middle
	orderedMap.Delete("b")

	seenKeys = nil
	orderedMap.ForEach(func(key string, value int) bool {
		seenKeys = append(seenKeys, key)

		return true
	})
	require.Equal(t, []string{"a", "c", "d"}, seenKeys)

	// reverse iteration
	seenKeys = nil
	orderedMap.ForEachReverse(func(key string, value int) bool {
		seenKeys = append(seenKeys, key)

		return true
	})
	require.Equal(t, []string{"d", "c", "a"}, seenKeys)

	// iteration can be aborted
	seenKeys = nil
	orderedMap.ForEach(func(key string, value int) bool {
		seenKeys = append(seenKeys, key)

		return false
	})
	require.Equal(t, []string{"a"}, seenKeys)
}

func TestOrderedMap_CloneAndClear(t *testing.T) {
	orderedMap := orderedmap.New[int, int]()
	for i := 0; i < 5; i++ {
		orderedMap.Set(i, i*i)
	}

	clone := orderedMap.Clone()
	require.Equal(t, orderedMap.Size(), clone.Size())

	clone.Clear()
	require.True(t, clone.IsEmpty())
	require.False(t, orderedMap.IsEmpty())
}
