// Package collection provides the filtered, selectable item list that backs
// every browsable section of the editor.
package collection

import "iter"

// Collection is an ordered set of items with a filter predicate applied on
// top and a single selection. The selection tracks a position within the
// visible subset, not the identity of an item: when the filter changes, the
// cursor stays where it is on screen unless it would fall off the end, in
// which case it snaps back to the top.
type Collection[T any] struct {
	items   []T
	visible []int // indices into items, in item order
	sel     int   // position within visible, -1 when nothing is selectable
}

// New creates a collection with no filter applied and the first item
// selected, if any.
func New[T any](items []T) *Collection[T] {
	c := &Collection[T]{}
	c.ReplaceAll(items)
	return c
}

// ReplaceAll swaps in a fresh item set, drops any active filter and selects
// the first item. Callers re-apply their filter afterwards if they want to
// keep it.
func (c *Collection[T]) ReplaceAll(items []T) {
	c.items = items
	c.visible = identity(len(items))
	if len(c.visible) > 0 {
		c.sel = 0
	} else {
		c.sel = -1
	}
}

// ApplyFilter recomputes the visible subset, keeping item order. The
// selection keeps its position when it still fits, snaps to 0 when it is now
// out of bounds, and clears only when nothing is visible.
func (c *Collection[T]) ApplyFilter(pred func(T) bool) {
	c.visible = c.visible[:0]
	for i, item := range c.items {
		if pred(item) {
			c.visible = append(c.visible, i)
		}
	}
	switch {
	case len(c.visible) == 0:
		c.sel = -1
	case c.sel < 0 || c.sel >= len(c.visible):
		c.sel = 0
	}
}

// ClearFilter makes every item visible again. An empty selection is restored
// to the top; an existing one keeps its position.
func (c *Collection[T]) ClearFilter() {
	c.visible = identity(len(c.items))
	if c.sel < 0 && len(c.visible) > 0 {
		c.sel = 0
	}
}

// Next moves the selection down one row, wrapping at the bottom.
func (c *Collection[T]) Next() {
	if len(c.visible) == 0 {
		return
	}
	if c.sel < 0 || c.sel >= len(c.visible)-1 {
		c.sel = 0
		return
	}
	c.sel++
}

// Previous moves the selection up one row, wrapping at the top.
func (c *Collection[T]) Previous() {
	if len(c.visible) == 0 {
		return
	}
	if c.sel <= 0 {
		c.sel = len(c.visible) - 1
		return
	}
	c.sel--
}

// Selected returns the selected item.
func (c *Collection[T]) Selected() (T, bool) {
	var zero T
	if c.sel < 0 || c.sel >= len(c.visible) {
		return zero, false
	}
	return c.items[c.visible[c.sel]], true
}

// SelectedIndex returns the selected item's index into the full item set,
// for callers that need to mutate by identity.
func (c *Collection[T]) SelectedIndex() (int, bool) {
	if c.sel < 0 || c.sel >= len(c.visible) {
		return 0, false
	}
	return c.visible[c.sel], true
}

// SelectedPosition returns the selection's position within the visible
// subset, for renderers highlighting the current row.
func (c *Collection[T]) SelectedPosition() (int, bool) {
	if c.sel < 0 {
		return 0, false
	}
	return c.sel, true
}

// Item returns a pointer to the item at the given absolute index, or nil
// when the index is out of range.
func (c *Collection[T]) Item(i int) *T {
	if i < 0 || i >= len(c.items) {
		return nil
	}
	return &c.items[i]
}

// Visible iterates the visible items in order. The sequence is finite and
// may be ranged over any number of times.
func (c *Collection[T]) Visible() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, i := range c.visible {
			if !yield(c.items[i]) {
				return
			}
		}
	}
}

// VisibleCount reports how many items pass the current filter.
func (c *Collection[T]) VisibleCount() int { return len(c.visible) }

// TotalCount reports the full item count, filter or not.
func (c *Collection[T]) TotalCount() int { return len(c.items) }

func identity(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return ids
}
