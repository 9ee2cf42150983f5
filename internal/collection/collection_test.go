package collection

import (
	"strings"
	"testing"
)

func visible[T any](c *Collection[T]) []T {
	var out []T
	for item := range c.Visible() {
		out = append(out, item)
	}
	return out
}

func TestNewSelectsFirstItem(t *testing.T) {
	c := New([]string{"a", "b", "c"})

	got, ok := c.Selected()
	if !ok || got != "a" {
		t.Fatalf("Selected() = %q, %v; want \"a\", true", got, ok)
	}
	if c.VisibleCount() != 3 || c.TotalCount() != 3 {
		t.Fatalf("counts = %d/%d, want 3/3", c.VisibleCount(), c.TotalCount())
	}
}

func TestNewEmptyHasNoSelection(t *testing.T) {
	c := New([]string(nil))
	if _, ok := c.Selected(); ok {
		t.Fatal("empty collection should have no selection")
	}
	c.Next()
	c.Previous()
	if _, ok := c.Selected(); ok {
		t.Fatal("navigation on empty collection must stay unselected")
	}
}

func TestApplyFilterKeepsItemOrder(t *testing.T) {
	c := New([]string{"alpha", "beta", "gamma", "delta", "beta2"})
	c.ApplyFilter(func(s string) bool { return strings.HasPrefix(s, "beta") })

	got := visible(c)
	want := []string{"beta", "beta2"}
	if len(got) != len(want) {
		t.Fatalf("visible = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("visible = %v, want %v", got, want)
		}
	}
}

func TestClearFilterRestoresAllItems(t *testing.T) {
	c := New([]string{"a", "b", "c"})
	c.ApplyFilter(func(s string) bool { return s == "b" })
	c.ClearFilter()

	if c.VisibleCount() != c.TotalCount() {
		t.Fatalf("after ClearFilter visible=%d total=%d", c.VisibleCount(), c.TotalCount())
	}
}

func TestFilterToNothingClearsSelection(t *testing.T) {
	c := New([]string{"a", "b"})
	c.ApplyFilter(func(string) bool { return false })

	if _, ok := c.Selected(); ok {
		t.Fatal("selection should be gone when nothing is visible")
	}

	// Clearing the filter brings the selection back to the top.
	c.ClearFilter()
	got, ok := c.Selected()
	if !ok || got != "a" {
		t.Fatalf("Selected() after ClearFilter = %q, %v; want \"a\", true", got, ok)
	}
}

// Selection tracks position in the visible list, not item identity. Five
// items, filter keeps positions 1 and 3; moving next then previous wraps
// through positions 0 -> 1 -> 0.
func TestFilterThenNavigateTracksPosition(t *testing.T) {
	c := New([]int{10, 11, 12, 13, 14})
	c.ApplyFilter(func(n int) bool { return n == 11 || n == 13 })

	if got, _ := c.Selected(); got != 11 {
		t.Fatalf("after filter Selected() = %d, want 11", got)
	}
	c.Next()
	if got, _ := c.Selected(); got != 13 {
		t.Fatalf("after Next Selected() = %d, want 13", got)
	}
	c.Previous()
	if got, _ := c.Selected(); got != 11 {
		t.Fatalf("after Previous Selected() = %d, want 11", got)
	}
}

func TestNavigationWrapsBothWays(t *testing.T) {
	c := New([]string{"a", "b", "c"})

	c.Previous()
	if got, _ := c.Selected(); got != "c" {
		t.Fatalf("Previous from top = %q, want \"c\"", got)
	}
	c.Next()
	if got, _ := c.Selected(); got != "a" {
		t.Fatalf("Next from bottom = %q, want \"a\"", got)
	}
}

func TestNextPreviousRoundTrip(t *testing.T) {
	c := New([]string{"a", "b", "c", "d"})
	c.Next()
	c.Next() // position 2

	c.Next()
	c.Previous()
	if got, _ := c.Selected(); got != "c" {
		t.Fatalf("round trip landed on %q, want \"c\"", got)
	}
	c.Previous()
	c.Next()
	if got, _ := c.Selected(); got != "c" {
		t.Fatalf("reverse round trip landed on %q, want \"c\"", got)
	}
}

func TestOutOfBoundsSelectionResetsToTop(t *testing.T) {
	c := New([]string{"a", "b", "c", "d"})
	c.Next()
	c.Next()
	c.Next() // position 3

	c.ApplyFilter(func(s string) bool { return s == "a" || s == "b" })
	if got, _ := c.Selected(); got != "a" {
		t.Fatalf("out-of-bounds selection should reset to top, got %q", got)
	}
}

func TestSelectedIndexIsAbsolute(t *testing.T) {
	c := New([]string{"a", "b", "c"})
	c.ApplyFilter(func(s string) bool { return s != "a" })
	c.Next()

	idx, ok := c.SelectedIndex()
	if !ok || idx != 2 {
		t.Fatalf("SelectedIndex() = %d, %v; want 2, true", idx, ok)
	}
	if item := c.Item(idx); item == nil || *item != "c" {
		t.Fatalf("Item(%d) should resolve to \"c\"", idx)
	}
}

func TestReplaceAllDiscardsFilter(t *testing.T) {
	c := New([]string{"a", "b"})
	c.ApplyFilter(func(s string) bool { return s == "b" })

	c.ReplaceAll([]string{"x", "y", "z"})
	if c.VisibleCount() != 3 {
		t.Fatalf("ReplaceAll should drop the filter, visible=%d", c.VisibleCount())
	}
	if got, _ := c.Selected(); got != "x" {
		t.Fatalf("ReplaceAll should select the first item, got %q", got)
	}
}

func TestVisibleIsRestartable(t *testing.T) {
	c := New([]int{1, 2, 3})
	seq := c.Visible()

	first := 0
	for range seq {
		first++
	}
	second := 0
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Fatalf("sequence should be restartable, got %d then %d", first, second)
	}
}
