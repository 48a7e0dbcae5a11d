// Package layout holds positioned-text types and the reading-order
// reconstruction heuristic for academic page layouts.
package layout

import "sort"

// BBox is a block bounding box in page coordinates. Y grows downward,
// so Y0 is the top edge.
type BBox struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// TextBlock is one positioned text block as produced by a document loader.
type TextBlock struct {
	Text       string `json:"text"`
	BBox       BBox   `json:"bbox"`
	BlockIndex int    `json:"block_index"`
	PageIndex  int    `json:"page_index"`
}

// Page is the unit the reconstructor operates on.
type Page struct {
	Index  int
	Blocks []TextBlock
}

// SortReadingOrder sorts a page's blocks into human reading order.
//
// Column detection is a thirds heuristic: blocks whose left edge falls in
// the left third of the page form the left column, blocks starting past
// the right two-thirds line form the right column. When both groups are
// non-empty the page is treated as two-column and the columns are merged
// by ascending top edge, left column winning ties. Otherwise everything
// is sorted top to bottom. Three or more columns degrade to the plain
// top-to-bottom path; that is an accepted limitation, not a bug.
func SortReadingOrder(blocks []TextBlock) []TextBlock {
	if len(blocks) == 0 {
		return blocks
	}

	var pageWidth float64
	for _, b := range blocks {
		if b.BBox.X1 > pageWidth {
			pageWidth = b.BBox.X1
		}
	}

	leftEdge := pageWidth / 3
	rightEdge := 2 * pageWidth / 3

	var left, right []TextBlock
	for _, b := range blocks {
		switch {
		case b.BBox.X0 < leftEdge:
			left = append(left, b)
		case b.BBox.X0 > rightEdge:
			right = append(right, b)
		}
	}

	if len(left) == 0 || len(right) == 0 {
		// Single column, or a layout the heuristic cannot classify.
		sorted := make([]TextBlock, len(blocks))
		copy(sorted, blocks)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].BBox.Y0 < sorted[j].BBox.Y0
		})
		return sorted
	}

	sort.SliceStable(left, func(i, j int) bool { return left[i].BBox.Y0 < left[j].BBox.Y0 })
	sort.SliceStable(right, func(i, j int) bool { return right[i].BBox.Y0 < right[j].BBox.Y0 })

	// Interleave the two columns by vertical position.
	result := make([]TextBlock, 0, len(left)+len(right))
	li, ri := 0, 0
	for li < len(left) && ri < len(right) {
		if left[li].BBox.Y0 <= right[ri].BBox.Y0 {
			result = append(result, left[li])
			li++
		} else {
			result = append(result, right[ri])
			ri++
		}
	}
	result = append(result, left[li:]...)
	result = append(result, right[ri:]...)

	return result
}
