package rgui

import "sort"

// SliverClipper calculates which items of a scrolled list intersect the
// visible window. Items may have different extents along the scroll axis.
//
// Usage:
//
//	clipper := NewSliverClipper(extents, visibleExtent, scroll)
//	for i := clipper.StartIdx; i < clipper.EndIdx; i++ {
//	    y := clipper.ItemOffset(i, baseY, scroll)
//	    // Build item at y
//	}
type SliverClipper struct {
	StartIdx int // First visible item index (inclusive)
	EndIdx   int // Last visible item index (exclusive)

	// offsets[i] is the leading edge of item i; offsets[n] is the content
	// extent.
	offsets []float64
}

// NewSliverClipper computes the visible range for items of the given extents
// in a window of visibleExtent scrolled by scroll.
func NewSliverClipper(extents []float64, visibleExtent, scroll float64) *SliverClipper {
	offsets := make([]float64, len(extents)+1)
	for i, e := range extents {
		if e < 0 {
			e = 0
		}
		offsets[i+1] = offsets[i] + e
	}
	c := &SliverClipper{offsets: offsets}

	n := len(extents)
	if n == 0 || visibleExtent <= 0 {
		return c
	}

	// First item whose trailing edge is past the top of the window.
	c.StartIdx = sort.Search(n, func(i int) bool {
		return offsets[i+1] > scroll
	})
	// First item whose leading edge is at or past the bottom of the window.
	bottom := scroll + visibleExtent
	c.EndIdx = c.StartIdx + sort.Search(n-c.StartIdx, func(j int) bool {
		return offsets[c.StartIdx+j] >= bottom
	})
	return c
}

// ShouldRender returns true if the item at the given index is visible.
func (c *SliverClipper) ShouldRender(idx int) bool {
	return idx >= c.StartIdx && idx < c.EndIdx
}

// ItemOffset returns the on-screen leading edge of an item.
func (c *SliverClipper) ItemOffset(idx int, base, scroll float64) float64 {
	return base + c.offsets[idx] - scroll
}

// VisibleCount returns the number of items that should be built.
func (c *SliverClipper) VisibleCount() int {
	return c.EndIdx - c.StartIdx
}

// ContentExtent returns the total extent of all items.
func (c *SliverClipper) ContentExtent() float64 {
	return c.offsets[len(c.offsets)-1]
}

// MaxScroll returns the maximum valid scroll offset.
func (c *SliverClipper) MaxScroll(visibleExtent float64) float64 {
	maxScroll := c.ContentExtent() - visibleExtent
	if maxScroll < 0 {
		return 0
	}
	return maxScroll
}

// ScrollToItem returns the scroll offset needed to make an item visible.
// If the item is already visible, returns the current scroll unchanged.
func (c *SliverClipper) ScrollToItem(idx int, currentScroll, visibleExtent float64) float64 {
	if idx < 0 || idx >= len(c.offsets)-1 {
		return currentScroll
	}

	itemTop := c.offsets[idx]
	itemBottom := c.offsets[idx+1]

	if itemTop < currentScroll {
		return itemTop
	}
	if itemBottom > currentScroll+visibleExtent {
		return itemBottom - visibleExtent
	}
	return currentScroll
}
