package indexed_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-indexedmap/indexed"
)

func newThreadSafeMap[V any]() indexed.Map[string, V] {
	return indexed.NewThreadSafe(newSequenceMap[V]())
}

func TestNewThreadSafe(t *testing.T) {
	t.Parallel()

	t.Run("wraps existing map", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[string]()
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Size())
	})

	t.Run("wrapped map is usable immediately", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[int]()
		m.Set("test", 42)
		assert.Equal(t, 1, m.Size())
	})

	t.Run("returns nil when given nil map", func(t *testing.T) {
		t.Parallel()

		var m indexed.Map[string, int]

		assert.Nil(t, indexed.NewThreadSafe(m))
	})

	t.Run("returns existing thread-safe map as-is", func(t *testing.T) {
		t.Parallel()

		m1 := newThreadSafeMap[string]()
		m2 := indexed.NewThreadSafe(m1)

		// Should be the same instance, not double-wrapped
		assert.Equal(t, fmt.Sprintf("%p", m1), fmt.Sprintf("%p", m2))
	})
}

func TestThreadSafeMap_Set(t *testing.T) {
	t.Parallel()

	t.Run("sets new key-value pair", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[string]()
		m.Set("test", "value")

		value, found := m.Get("test")
		assert.True(t, found)
		assert.Equal(t, "value", value)
	})

	t.Run("updates existing key without moving it", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[string]()
		m.Set("a", "value1")
		m.Set("b", "value2")
		m.Set("a", "value3")

		assert.Equal(t, 2, m.Size())
		assert.Equal(t, 0, m.IndexOf("a").GetOrPanic())
	})

	t.Run("concurrent sets are safe", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		numGoroutines := 10
		setsPerGoroutine := 100

		var waitGroup sync.WaitGroup

		for goroutineIndex := range numGoroutines {
			waitGroup.Add(1)

			go func(offset int) {
				defer waitGroup.Done()

				for setIndex := range setsPerGoroutine {
					key := fmt.Sprintf("key-%d-%d", offset, setIndex)
					threadSafeMap.Set(key, offset*1000+setIndex)
				}
			}(goroutineIndex)
		}

		waitGroup.Wait()
		assert.Equal(t, numGoroutines*setsPerGoroutine, threadSafeMap.Size())
	})

	t.Run("concurrent updates to same key are safe", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		numGoroutines := 100

		var waitGroup sync.WaitGroup

		for goroutineIndex := range numGoroutines {
			waitGroup.Add(1)

			go func(value int) {
				defer waitGroup.Done()

				threadSafeMap.Set("shared", value)
			}(goroutineIndex)
		}

		waitGroup.Wait()
		assert.Equal(t, 1, threadSafeMap.Size())
		assert.True(t, threadSafeMap.Contains("shared"))
	})
}

func TestThreadSafeMap_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes existing key", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[string]()
		m.Set("test", "value")

		entry := m.Remove("test")
		require.True(t, entry.NonEmpty())
		assert.Equal(t, "value", entry.GetOrPanic().Value)
		assert.Equal(t, 0, entry.GetOrPanic().Position.GetOrPanic())
		assert.Equal(t, 0, m.Size())
	})

	t.Run("returns None for non-existent key", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[string]()
		assert.True(t, m.Remove("missing").Empty())
	})

	t.Run("concurrent removes are safe", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		numKeys := 1000

		// Populate map
		for keyIndex := range numKeys {
			threadSafeMap.Set(fmt.Sprintf("key-%d", keyIndex), keyIndex)
		}

		// Concurrent removal
		var waitGroup sync.WaitGroup
		for keyIndex := range numKeys {
			waitGroup.Add(1)

			go func(index int) {
				defer waitGroup.Done()

				entry := threadSafeMap.Remove(fmt.Sprintf("key-%d", index))
				assert.True(t, entry.NonEmpty())
			}(keyIndex)
		}

		waitGroup.Wait()
		assert.Equal(t, 0, threadSafeMap.Size())
	})

	t.Run("concurrent set and remove are safe", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		numOperations := 1000

		var waitGroup sync.WaitGroup

		// Half the goroutines set, half remove
		for opIndex := range numOperations {
			waitGroup.Add(1)

			go func(index int) {
				defer waitGroup.Done()

				key := fmt.Sprintf("key-%d", index%100)
				if index%2 == 0 {
					threadSafeMap.Set(key, index)
				} else {
					_ = threadSafeMap.Remove(key)
				}
			}(opIndex)
		}

		waitGroup.Wait()
		// Should complete without panics or race conditions
		_ = threadSafeMap.Size() // Just verify it's accessible
	})

	t.Run("concurrent remove and At are safe", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		for keyIndex := range 100 {
			threadSafeMap.Set(fmt.Sprintf("key-%d", keyIndex), keyIndex)
		}

		var waitGroup sync.WaitGroup

		// Removals shift positions while readers resolve them
		for removeIndex := range 50 {
			waitGroup.Add(1)

			go func(index int) {
				defer waitGroup.Done()

				_ = threadSafeMap.Remove(fmt.Sprintf("key-%d", index*2))
			}(removeIndex)
		}

		for range 50 {
			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				for index := range 100 {
					_, _ = threadSafeMap.At(index)
				}
			}()
		}

		waitGroup.Wait()
		assert.Equal(t, 50, threadSafeMap.Size())
	})
}

func TestThreadSafeMap_Clear(t *testing.T) {
	t.Parallel()

	t.Run("removes all entries", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[int]()
		for i := range 10 {
			m.Set(fmt.Sprintf("key%d", i), i)
		}

		m.Clear()
		assert.Equal(t, 0, m.Size())
	})

	t.Run("map is usable after clear", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[string]()
		m.Set("key1", "value1")

		m.Clear()

		m.Set("key2", "value2")
		assert.Equal(t, 1, m.Size())
	})

	t.Run("concurrent clear and set are safe", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()

		var waitGroup sync.WaitGroup

		// Set items in background
		for setIndex := range 100 {
			waitGroup.Add(1)

			go func(index int) {
				defer waitGroup.Done()

				threadSafeMap.Set(fmt.Sprintf("key-%d", index), index)
			}(setIndex)
		}

		// Clear concurrently
		waitGroup.Add(1)

		go func() {
			defer waitGroup.Done()
			time.Sleep(5 * time.Millisecond)
			threadSafeMap.Clear()
		}()

		waitGroup.Wait()
		// Should complete without panics
		_ = threadSafeMap.Size()
	})
}

func TestThreadSafeMap_Reads(t *testing.T) {
	t.Parallel()

	t.Run("reads pass through unchanged", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[int]()
		m.Set("a", 1)
		m.Set("b", 2)

		value, found := m.Get("a")
		assert.True(t, found)
		assert.Equal(t, 1, value)

		assert.Equal(t, 2, m.GetOrElse("b", -1))
		assert.Equal(t, -1, m.GetOrElse("c", -1))

		value, found = m.At(1)
		assert.True(t, found)
		assert.Equal(t, 2, value)

		assert.Equal(t, "a", m.KeyAt(0).GetOrPanic())
		assert.Equal(t, 1, m.IndexOf("b").GetOrPanic())
		assert.True(t, m.Contains("a"))
		assert.False(t, m.Contains("c"))
	})

	t.Run("concurrent reads do not block each other", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		for keyIndex := range 100 {
			threadSafeMap.Set(fmt.Sprintf("key-%d", keyIndex), keyIndex)
		}

		var waitGroup sync.WaitGroup

		for range 50 {
			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				for keyIndex := range 100 {
					_, _ = threadSafeMap.Get(fmt.Sprintf("key-%d", keyIndex))
				}
			}()
		}

		waitGroup.Wait()
		assert.Equal(t, 100, threadSafeMap.Size())
	})
}

func TestThreadSafeMap_Seq(t *testing.T) {
	t.Parallel()

	t.Run("iterates in insertion order", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[int]()
		m.Set("c", 3)
		m.Set("a", 1)
		m.Set("b", 2)

		var keys []string
		for key := range m.Seq() {
			keys = append(keys, key)
		}

		assert.Equal(t, []string{"c", "a", "b"}, keys)
	})

	t.Run("stops early when yield returns false", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[int]()
		for i := range 10 {
			m.Set(fmt.Sprintf("key%d", i), i)
		}

		count := 0
		for range m.Seq() {
			count++
			if count >= 5 {
				break
			}
		}

		assert.Equal(t, 5, count)
	})

	t.Run("iteration sees snapshot of map at call time", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()

		// Add initial entries
		for keyIndex := range 5 {
			threadSafeMap.Set(fmt.Sprintf("key%d", keyIndex), keyIndex)
		}

		// Get iterator
		seq := threadSafeMap.Seq()

		// Modify map after getting iterator
		for keyIndex := 5; keyIndex < 10; keyIndex++ {
			threadSafeMap.Set(fmt.Sprintf("key%d", keyIndex), keyIndex)
		}

		// Iterator should only see first 5 entries
		count := 0
		for range seq {
			count++
		}

		assert.Equal(t, 5, count)
		assert.Equal(t, 10, threadSafeMap.Size()) // But map has 10 entries
	})

	t.Run("Keys and Values snapshot the same way", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		threadSafeMap.Set("a", 1)
		threadSafeMap.Set("b", 2)

		keys := threadSafeMap.Keys()
		values := threadSafeMap.Values()

		threadSafeMap.Set("c", 3)

		var keyCount, valueCount int

		for range keys {
			keyCount++
		}

		for range values {
			valueCount++
		}

		assert.Equal(t, 2, keyCount)
		assert.Equal(t, 2, valueCount)
	})

	t.Run("ForEach runs over a snapshot", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		threadSafeMap.Set("a", 1)
		threadSafeMap.Set("b", 2)

		var visited []string

		// fn mutates the map mid-iteration without deadlocking
		threadSafeMap.ForEach(func(key string, _ int) bool {
			visited = append(visited, key)
			threadSafeMap.Set("added-"+key, 0)

			return true
		})

		assert.Equal(t, []string{"a", "b"}, visited)
		assert.Equal(t, 4, threadSafeMap.Size())
	})

	t.Run("concurrent iteration and modification are safe", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()

		// Populate map
		for keyIndex := range 100 {
			threadSafeMap.Set(fmt.Sprintf("key-%d", keyIndex), keyIndex)
		}

		var waitGroup sync.WaitGroup

		// Multiple concurrent iterators
		for range 10 {
			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				count := 0
				for range threadSafeMap.Seq() {
					count++
				}

				assert.Positive(t, count)
			}()
		}

		// Modify map while iterating
		for modifyIndex := range 50 {
			waitGroup.Add(1)

			go func(index int) {
				defer waitGroup.Done()

				threadSafeMap.Set(fmt.Sprintf("new-key-%d", index), index)
			}(modifyIndex)
		}

		waitGroup.Wait()
	})
}

func TestThreadSafeMap_Clone(t *testing.T) {
	t.Parallel()

	t.Run("clone is also thread-safe", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[int]()
		m.Set("a", 1)

		clone := m.Clone()

		// Re-wrapping a thread-safe clone hands back the same instance
		assert.Equal(t, fmt.Sprintf("%p", clone), fmt.Sprintf("%p", indexed.NewThreadSafe(clone)))

		var waitGroup sync.WaitGroup
		for cloneIndex := range 10 {
			waitGroup.Add(1)

			go func(index int) {
				defer waitGroup.Done()

				clone.Set(fmt.Sprintf("new-%d", index), index)
			}(cloneIndex)
		}

		waitGroup.Wait()
		assert.Equal(t, 11, clone.Size())
	})

	t.Run("clone is independent of the original", func(t *testing.T) {
		t.Parallel()

		m := newThreadSafeMap[int]()
		m.Set("a", 1)

		clone := m.Clone()
		clone.Set("b", 2)
		m.Remove("a")

		assert.Equal(t, 0, m.Size())
		assert.Equal(t, 2, clone.Size())
	})
}

// TestThreadSafeMap_RaceConditions uses go test -race to detect race conditions.
func TestThreadSafeMap_RaceConditions(t *testing.T) {
	t.Parallel()

	t.Run("stress test with mixed operations", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[int]()
		numGoroutines := 50
		operationsPerGoroutine := 100

		var waitGroup sync.WaitGroup

		for goroutineID := range numGoroutines {
			waitGroup.Add(1)

			go func(id int) {
				defer waitGroup.Done()

				for opIndex := range operationsPerGoroutine {
					key := fmt.Sprintf("key-%d-%d", id, opIndex%10)

					switch opIndex % 7 {
					case 0:
						threadSafeMap.Set(key, opIndex)
					case 1:
						_ = threadSafeMap.Remove(key)
					case 2:
						_ = threadSafeMap.Contains(key)
					case 3:
						_ = threadSafeMap.IndexOf(key)
					case 4:
						for range threadSafeMap.Seq() {
							break // Just get one element
						}
					case 5:
						_ = threadSafeMap.Clone()
					case 6:
						if opIndex%20 == 0 {
							threadSafeMap.Clear()
						}
					}
				}
			}(goroutineID)
		}

		waitGroup.Wait()

		// The lookup table and ordering backend still agree after the storm
		keyCount := 0
		for key := range threadSafeMap.Keys() {
			assert.True(t, threadSafeMap.Contains(key))

			keyCount++
		}

		assert.Equal(t, threadSafeMap.Size(), keyCount)
	})

	t.Run("stress test with arbitrary keys", func(t *testing.T) {
		t.Parallel()

		threadSafeMap := newThreadSafeMap[string]()

		var waitGroup sync.WaitGroup

		for range 20 {
			waitGroup.Add(1)

			go func() {
				defer waitGroup.Done()

				for range 50 {
					key := "test-" + uuid.New().String()
					threadSafeMap.Set(key, key)

					value, found := threadSafeMap.Get(key)
					assert.True(t, found)
					assert.Equal(t, key, value)
				}
			}()
		}

		waitGroup.Wait()
		assert.Equal(t, 1000, threadSafeMap.Size())
	})
}
