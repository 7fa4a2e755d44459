package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPageMeta(t *testing.T) {
	t.Run("twenty items at nine per page", func(t *testing.T) {
		meta := BuildPageMeta(20, PageParams{Page: 1, PerPage: 9})
		assert.Equal(t, 3, meta.TotalPages)
		assert.True(t, meta.HasNext)
		assert.False(t, meta.HasPrev)

		meta = BuildPageMeta(20, PageParams{Page: 3, PerPage: 9})
		assert.False(t, meta.HasNext)
		assert.True(t, meta.HasPrev)
	})

	t.Run("empty result", func(t *testing.T) {
		meta := BuildPageMeta(0, PageParams{Page: 1, PerPage: 9})
		assert.Equal(t, 0, meta.TotalPages)
		assert.False(t, meta.HasNext)
		assert.False(t, meta.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		meta := BuildPageMeta(18, PageParams{Page: 2, PerPage: 9})
		assert.Equal(t, 2, meta.TotalPages)
		assert.False(t, meta.HasNext)
	})
}

func TestPageParamsOffset(t *testing.T) {
	p := PageParams{Page: 3, PerPage: 9}
	assert.Equal(t, 18, p.Offset())
	assert.Equal(t, 9, p.Limit())
}
