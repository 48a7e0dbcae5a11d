// Package textproc turns positioned page blocks into clean linear text:
// reading-order merge, math-formula isolation, and extraction-artifact
// normalization.
package textproc

import (
	"strings"

	"github.com/dgallion1/scholardoc/internal/layout"
)

// ProcessedPage is the linearized, cleaned form of one page.
type ProcessedPage struct {
	PageIndex    int      `json:"page_number"`
	Text         string   `json:"processed_text"`
	MathFormulas []string `json:"math_formulas"`
	BlockCount   int      `json:"block_count"`
}

// ProcessPage merges a page's blocks into one linear text stream.
// Blocks are sorted into reading order, each block has its math notation
// pulled aside (placeholder numbering runs across the whole page), and the
// remaining text is normalized. Blocks are joined by a blank line.
func ProcessPage(page layout.Page) ProcessedPage {
	sorted := layout.SortReadingOrder(page.Blocks)

	var parts []string
	var formulas []string

	for _, b := range sorted {
		text, found := IsolateMath(b.Text, len(formulas))
		formulas = append(formulas, found...)

		cleaned := Normalize(text)
		if cleaned == "" {
			continue
		}
		parts = append(parts, cleaned)
	}

	return ProcessedPage{
		PageIndex:    page.Index,
		Text:         strings.Join(parts, "\n\n"),
		MathFormulas: formulas,
		BlockCount:   len(page.Blocks),
	}
}
