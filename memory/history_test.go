package memory_test

import (
	"testing"

	"github.com/fwojciec/docfinder"
	"github.com/fwojciec/docfinder/memory"
	"github.com/stretchr/testify/assert"
)

// Compile-time verification that History implements docfinder.Navigator
var _ docfinder.Navigator = (*memory.History)(nil)

func TestHistory_ReplaceQuery(t *testing.T) {
	t.Parallel()

	t.Run("rewrites the current entry without adding one", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/doctors", "q=amy")

		h.ReplaceQuery("q=bo")

		assert.Equal(t, "q=bo", h.Query())
		assert.Equal(t, 1, h.Len())
		assert.Equal(t, "/doctors?q=bo", h.Location())
	})

	t.Run("strips a leading question mark", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/", "?sort=fees")
		assert.Equal(t, "sort=fees", h.Query())

		h.ReplaceQuery("?sort=experience")
		assert.Equal(t, "sort=experience", h.Query())
	})

	t.Run("empty query leaves a bare path", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/doctors", "q=amy")

		h.ReplaceQuery("")

		assert.Equal(t, "/doctors", h.Location())
	})

	t.Run("does not notify subscribers", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/", "")
		var got []string
		h.Subscribe(func(q string) { got = append(got, q) })

		h.ReplaceQuery("q=amy")

		assert.Empty(t, got)
	})
}

func TestHistory_BackForward(t *testing.T) {
	t.Parallel()

	t.Run("moves through entries and notifies", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/", "q=a")
		h.Push("q=b")
		h.Push("q=c")
		var got []string
		h.Subscribe(func(q string) { got = append(got, q) })

		assert.True(t, h.Back())
		assert.True(t, h.Back())
		assert.False(t, h.Back())
		assert.True(t, h.Forward())

		assert.Equal(t, []string{"q=b", "q=a", "q=b"}, got)
		assert.Equal(t, "q=b", h.Query())
	})

	t.Run("push discards forward entries", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/", "q=a")
		h.Push("q=b")
		h.Back()

		h.Push("q=c")

		assert.Equal(t, 2, h.Len())
		assert.False(t, h.Forward())
		assert.True(t, h.Back())
		assert.Equal(t, "q=a", h.Query())
	})

	t.Run("visit pushes and notifies", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/", "")
		var got []string
		h.Subscribe(func(q string) { got = append(got, q) })

		h.Visit("sort=fees")

		assert.Equal(t, []string{"sort=fees"}, got)
		assert.Equal(t, 2, h.Len())
		assert.Equal(t, "sort=fees", h.Query())
	})

	t.Run("cancelled subscriptions are not notified", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/", "q=a")
		h.Push("q=b")
		var first, second []string
		cancel := h.Subscribe(func(q string) { first = append(first, q) })
		h.Subscribe(func(q string) { second = append(second, q) })

		cancel()
		cancel()
		h.Back()

		assert.Empty(t, first)
		assert.Equal(t, []string{"q=a"}, second)
	})

	t.Run("subscribers may call back into history", func(t *testing.T) {
		t.Parallel()

		h := memory.NewHistory("/", "q=a")
		h.Push("q=b")
		var seen string
		h.Subscribe(func(string) { seen = h.Query() })

		h.Back()

		assert.Equal(t, "q=a", seen)
	})
}
