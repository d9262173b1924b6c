package heap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navijation/njcontainers/container/vector"
)

func Test_IsHeap(t *testing.T) {
	t.Parallel()

	comparator := Ordered[int]()

	t.Run("test trivial ranges are heaps", func(t *testing.T) {
		assert.True(t, IsHeap[int](Slice[int]{}, comparator))
		assert.True(t, IsHeap[int](Slice[int]{42}, comparator))
	})

	t.Run("test valid max-heap", func(t *testing.T) {
		assert.True(t, IsHeap[int](Slice[int]{9, 5, 6, 1, 3, 2, 4}, comparator))
	})

	t.Run("test violation is detected", func(t *testing.T) {
		assert.False(t, IsHeap[int](Slice[int]{5, 9, 6}, comparator))
		assert.False(t, IsHeap[int](Slice[int]{9, 5, 6, 7}, comparator))
	})

	t.Run("test orientation follows the comparator", func(t *testing.T) {
		ascending := Slice[int]{1, 2, 3, 4}
		assert.False(t, IsHeap[int](ascending, comparator))
		assert.True(t, IsHeap[int](ascending, Reverse(comparator)))
	})

	t.Run("test equal elements do not violate", func(t *testing.T) {
		assert.True(t, IsHeap[int](Slice[int]{3, 3, 3, 3}, comparator))
	})
}

func Test_MakeHeap(t *testing.T) {
	t.Parallel()

	comparator := Ordered[int]()

	t.Run("test known permutation", func(t *testing.T) {
		numbers := Slice[int]{3, 1, 4, 1, 5, 9, 2, 6}

		MakeHeap[int](numbers, comparator)

		assert.True(t, IsHeap[int](numbers, comparator))
		assert.Equal(t, 9, numbers[0])
	})

	t.Run("test trivial ranges are no-ops", func(t *testing.T) {
		empty := Slice[int]{}
		MakeHeap[int](empty, comparator)
		assert.Empty(t, empty)

		single := Slice[int]{7}
		MakeHeap[int](single, comparator)
		assert.Equal(t, Slice[int]{7}, single)
	})

	t.Run("test random permutations", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for range 50 {
			numbers := Slice[int](rng.Perm(rng.Intn(200)))
			MakeHeap[int](numbers, comparator)
			assert.True(t, IsHeap[int](numbers, comparator))
		}
	})

	t.Run("test min-heap via reversed comparator", func(t *testing.T) {
		numbers := Slice[int]{3, 1, 4, 1, 5}
		MakeHeap[int](numbers, Reverse(comparator))

		assert.True(t, IsHeap[int](numbers, Reverse(comparator)))
		assert.Equal(t, 1, numbers[0])
	})
}

func Test_PushHeap(t *testing.T) {
	t.Parallel()

	comparator := Ordered[int]()

	t.Run("test incremental build stays a heap", func(t *testing.T) {
		numbers := Slice[int]{}
		for _, value := range []int{3, 1, 4, 1, 5, 9, 2, 6} {
			numbers = append(numbers, value)
			PushHeap[int](numbers, comparator)
			require.True(t, IsHeap[int](numbers, comparator))
		}
		assert.Equal(t, 9, numbers[0])
	})

	t.Run("test single element is a no-op", func(t *testing.T) {
		numbers := Slice[int]{1}
		PushHeap[int](numbers, comparator)
		assert.Equal(t, Slice[int]{1}, numbers)
	})
}

func Test_PopHeap(t *testing.T) {
	t.Parallel()

	comparator := Ordered[int]()

	t.Run("test root moves to the last slot", func(t *testing.T) {
		numbers := Slice[int]{3, 1, 4, 1, 5, 9, 2, 6}
		MakeHeap[int](numbers, comparator)

		PopHeap[int](numbers, comparator)

		assert.Equal(t, 9, numbers[len(numbers)-1])
		assert.True(t, IsHeap[int](Sub[int](numbers, 0, len(numbers)-1), comparator))
	})

	t.Run("test successive pops drain in priority order", func(t *testing.T) {
		numbers := Slice[int]{3, 1, 4, 1, 5}
		MakeHeap[int](numbers, comparator)

		drained := []int{}
		for last := len(numbers); last > 0; last-- {
			window := Sub[int](numbers, 0, last)
			PopHeap[int](window, comparator)
			drained = append(drained, numbers[last-1])
		}
		assert.Equal(t, []int{5, 4, 3, 1, 1}, drained)
	})

	t.Run("test trivial ranges are no-ops", func(t *testing.T) {
		PopHeap[int](Slice[int]{}, comparator)

		single := Slice[int]{3}
		PopHeap[int](single, comparator)
		assert.Equal(t, Slice[int]{3}, single)
	})
}

func Test_SortHeap(t *testing.T) {
	t.Parallel()

	comparator := Ordered[int]()

	t.Run("test known permutation", func(t *testing.T) {
		numbers := Slice[int]{3, 1, 4, 1, 5, 9, 2, 6}

		MakeHeap[int](numbers, comparator)
		SortHeap[int](numbers, comparator)

		assert.Equal(t, Slice[int]{1, 1, 2, 3, 4, 5, 6, 9}, numbers)
	})

	t.Run("test idempotent through re-heapify", func(t *testing.T) {
		numbers := Slice[int]{3, 1, 4, 1, 5, 9, 2, 6}
		MakeHeap[int](numbers, comparator)
		SortHeap[int](numbers, comparator)
		sorted := slices.Clone(numbers)

		MakeHeap[int](numbers, comparator)
		SortHeap[int](numbers, comparator)

		assert.Equal(t, Slice[int](sorted), numbers)
	})

	t.Run("test descending via reversed comparator", func(t *testing.T) {
		numbers := Slice[int]{3, 1, 4, 1, 5}
		reversed := Reverse(comparator)

		MakeHeap[int](numbers, reversed)
		SortHeap[int](numbers, reversed)

		assert.Equal(t, Slice[int]{5, 4, 3, 1, 1}, numbers)
	})

	t.Run("test random permutations sort ascending", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		for range 50 {
			numbers := Slice[int](rng.Perm(rng.Intn(200)))
			MakeHeap[int](numbers, comparator)
			SortHeap[int](numbers, comparator)
			assert.True(t, slices.IsSorted(numbers))
		}
	})
}

// The algorithms only see the random-access contract, so a vector range must
// behave identically to a slice range.
func Test_Heap_OverVector(t *testing.T) {
	t.Parallel()

	comparator := Ordered[int]()
	numbers := vector.New(3, 1, 4, 1, 5, 9, 2, 6)

	MakeHeap[int](&numbers, comparator)
	assert.True(t, IsHeap[int](&numbers, comparator))
	assert.Equal(t, 9, numbers.Get(0))

	numbers.PushBack(8)
	PushHeap[int](&numbers, comparator)
	assert.True(t, IsHeap[int](&numbers, comparator))

	PopHeap[int](&numbers, comparator)
	popped, err := numbers.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 9, popped)
	assert.True(t, IsHeap[int](&numbers, comparator))

	SortHeap[int](&numbers, comparator)
	assert.True(t, slices.IsSorted(numbers.Data()))
}

func Test_Sub(t *testing.T) {
	t.Parallel()

	numbers := Slice[int]{9, 8, 7, 6, 5}
	window := Sub[int](numbers, 1, 4)

	assert.Equal(t, 3, window.Len())
	assert.Equal(t, 8, window.Get(0))

	window.Swap(0, 2)
	assert.Equal(t, Slice[int]{9, 6, 7, 8, 5}, numbers)
}
