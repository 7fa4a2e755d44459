package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMove(t *testing.T) {
	t.Run("moves element forward", func(t *testing.T) {
		got := Move([]string{"a", "b", "c", "d"}, 0, 2)
		assert.Equal(t, []string{"b", "c", "a", "d"}, got)
	})

	t.Run("moves element backward", func(t *testing.T) {
		got := Move([]string{"a", "b", "c", "d"}, 3, 1)
		assert.Equal(t, []string{"a", "d", "b", "c"}, got)
	})

	t.Run("same position is a copy", func(t *testing.T) {
		in := []int{1, 2, 3}
		got := Move(in, 1, 1)
		assert.Equal(t, in, got)
		got[0] = 99
		assert.Equal(t, 1, in[0])
	})

	t.Run("out of range indexes leave order unchanged", func(t *testing.T) {
		in := []int{1, 2, 3}
		assert.Equal(t, in, Move(in, -1, 2))
		assert.Equal(t, in, Move(in, 0, 5))
	})

	t.Run("result is always a permutation", func(t *testing.T) {
		for n := 1; n <= 10; n++ {
			in := make([]int, n)
			for i := range in {
				in[i] = i
			}
			for from := 0; from < n; from++ {
				for to := 0; to < n; to++ {
					got := Move(in, from, to)
					assert.Len(t, got, n)
					seen := make(map[int]bool, n)
					for _, v := range got {
						seen[v] = true
					}
					assert.Len(t, seen, n)
					assert.Equal(t, in[from], got[to])
				}
			}
		}
	})
}
