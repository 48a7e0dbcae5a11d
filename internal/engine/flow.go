package engine

import (
	"strings"

	"github.com/dgallion1/scholardoc/internal/layout"
)

// Flow formats (text, markdown, HTML, DOCX) carry no geometry, so their
// blocks get synthetic single-column bounding boxes on US-letter pages.
// That keeps the reading-order and chunking pipeline uniform across
// formats: a flow page always classifies as single-column.
const (
	flowMarginX    = 72.0
	flowMarginY    = 72.0
	flowWidth      = 468.0 // letter width minus margins
	flowLineHeight = 14.0
	flowBlockGap   = 10.0
	flowPageBottom = 720.0
)

// paginateFlow stacks block texts down synthetic pages, starting a new
// page when the running height passes the page bottom.
func paginateFlow(parts []string) ([]layout.Page, []string) {
	var pages []layout.Page
	var texts []string

	var cur layout.Page
	var curText []string
	y := flowMarginY

	flushPage := func() {
		if len(cur.Blocks) == 0 {
			return
		}
		cur.Index = len(pages)
		pages = append(pages, cur)
		texts = append(texts, strings.Join(curText, "\n\n"))
		cur = layout.Page{}
		curText = nil
		y = flowMarginY
	}

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		lines := strings.Count(part, "\n") + 1
		blockHeight := float64(lines) * flowLineHeight

		if y+blockHeight > flowPageBottom && len(cur.Blocks) > 0 {
			flushPage()
		}

		cur.Blocks = append(cur.Blocks, layout.TextBlock{
			Text: part,
			BBox: layout.BBox{
				X0: flowMarginX,
				Y0: y,
				X1: flowMarginX + flowWidth,
				Y1: y + blockHeight,
			},
			BlockIndex: len(cur.Blocks),
			PageIndex:  len(pages),
		})
		curText = append(curText, part)
		y += blockHeight + flowBlockGap
	}
	flushPage()

	if len(pages) == 0 {
		pages = []layout.Page{{}}
		texts = []string{""}
	}
	return pages, texts
}

// flowDocument assembles the shared in-memory form for a flow format.
func flowDocument(path string, size int64, title string, parts []string) Document {
	pages, texts := paginateFlow(parts)
	if title == "" {
		title = baseName(path)
	}
	return &memDocument{
		meta: Metadata{
			Title:     title,
			PageCount: len(pages),
			FileSize:  size,
		},
		pages: pages,
		texts: texts,
	}
}
