package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	t.Run("basic title", func(t *testing.T) {
		assert.Equal(t, "pembangunan-jalan-desa", Slugify("Pembangunan Jalan Desa"))
	})

	t.Run("strips punctuation and collapses whitespace", func(t *testing.T) {
		assert.Equal(t, "festival-budaya-2025", Slugify("  Festival   Budaya, 2025!  "))
	})

	t.Run("collapses hyphen runs and trims edges", func(t *testing.T) {
		assert.Equal(t, "a-b", Slugify("--a -- b--"))
	})

	t.Run("idempotent", func(t *testing.T) {
		titles := []string{
			"Gotong Royong di Dusun Krajan",
			"Harga Gabah Naik 5%",
			"--- Weird --- Input ---",
		}
		for _, title := range titles {
			once := Slugify(title)
			assert.Equal(t, once, Slugify(once))
		}
	})

	t.Run("only invalid characters yields empty", func(t *testing.T) {
		assert.Equal(t, "", Slugify("!!! ???"))
	})
}

func TestStripHTML(t *testing.T) {
	t.Run("removes tags", func(t *testing.T) {
		assert.Equal(t, "Hello world", StripHTML("<p>Hello <b>world</b></p>"))
	})

	t.Run("decodes nbsp", func(t *testing.T) {
		assert.Equal(t, "a b", StripHTML("a&nbsp;b"))
	})
}

func TestStrippedLen(t *testing.T) {
	t.Run("tags do not count", func(t *testing.T) {
		html := "<p><strong>" + strings.Repeat("x", 100) + "</strong></p>"
		assert.Equal(t, 100, StrippedLen(html))
	})

	t.Run("surrounding whitespace does not count", func(t *testing.T) {
		assert.Equal(t, 3, StrippedLen("  <p> abc </p>  "))
	})
}

func TestExcerpt(t *testing.T) {
	t.Run("short content returned whole without ellipsis", func(t *testing.T) {
		assert.Equal(t, "Berita singkat", Excerpt("<p>Berita singkat</p>", 200))
	})

	t.Run("long content cut with ellipsis", func(t *testing.T) {
		html := "<p>" + strings.Repeat("a", 300) + "</p>"
		got := Excerpt(html, 200)
		assert.True(t, strings.HasSuffix(got, "..."))
		assert.LessOrEqual(t, len([]rune(got)), 203)
	})

	t.Run("exactly max length has no ellipsis", func(t *testing.T) {
		html := strings.Repeat("b", 200)
		assert.Equal(t, html, Excerpt(html, 200))
	})
}
