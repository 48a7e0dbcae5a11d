package engine

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/dgallion1/scholardoc/internal/layout"
)

// Default page height in points when the MediaBox is missing; used to
// flip PDF's bottom-up Y axis into the top-down axis layout expects.
const defaultPageHeight = 792.0

// loadPDF parses every page eagerly: plain text via the library, plus
// positioned blocks reconstructed from the page's text runs. The file is
// closed before returning, so the cache never holds open handles.
func loadPDF(path string, size int64) (Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &memDocument{
		meta: Metadata{
			Title:     baseName(path),
			PageCount: reader.NumPage(),
			FileSize:  size,
		},
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			doc.pages = append(doc.pages, layout.Page{Index: i - 1})
			doc.texts = append(doc.texts, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			text = ""
		}

		height := pageHeight(page)
		blocks := buildBlocks(pageFragments(page), height, i-1)

		doc.pages = append(doc.pages, layout.Page{Index: i - 1, Blocks: blocks})
		doc.texts = append(doc.texts, strings.TrimSpace(text))
	}

	return doc, nil
}

func pageHeight(page pdflib.Page) float64 {
	box := page.V.Key("MediaBox")
	if box.IsNull() || box.Len() < 4 {
		return defaultPageHeight
	}
	h := box.Index(3).Float64() - box.Index(1).Float64()
	if h <= 0 {
		return defaultPageHeight
	}
	return h
}

// fragment is a horizontal run of text on one baseline.
type fragment struct {
	x0, x1 float64
	y      float64 // baseline, PDF coordinates (bottom-up)
	size   float64
	text   string
}

// pageFragments groups the page's raw text runs into baseline rows and
// splits each row at wide horizontal gaps, so column-separated text on
// the same baseline lands in separate fragments.
func pageFragments(page pdflib.Page) []fragment {
	content := page.Content()
	if len(content.Text) == 0 {
		return nil
	}

	runs := make([]pdflib.Text, len(content.Text))
	copy(runs, content.Text)
	sort.SliceStable(runs, func(i, j int) bool {
		if runs[i].Y != runs[j].Y {
			return runs[i].Y > runs[j].Y // top of page first
		}
		return runs[i].X < runs[j].X
	})

	var frags []fragment
	var cur *fragment

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.text) != "" {
			cur.text = strings.TrimSpace(cur.text)
			frags = append(frags, *cur)
		}
		cur = nil
	}

	for _, run := range runs {
		size := run.FontSize
		if size <= 0 {
			size = 12
		}
		sameRow := cur != nil && abs(cur.y-run.Y) < size*0.5
		// A gap wider than ~3 characters splits the row: most likely a
		// column gutter or a table cell boundary.
		contiguous := sameRow && run.X-cur.x1 < size*3

		if !contiguous {
			flush()
			cur = &fragment{x0: run.X, x1: run.X + run.W, y: run.Y, size: size, text: run.S}
			continue
		}
		if run.X-cur.x1 > size*0.2 {
			cur.text += " "
		}
		cur.text += run.S
		if run.X+run.W > cur.x1 {
			cur.x1 = run.X + run.W
		}
		if size > cur.size {
			cur.size = size
		}
	}
	flush()

	return frags
}

// buildBlocks stacks fragments into blocks: a fragment joins the
// previous block when it is vertically adjacent and horizontally
// overlapping, otherwise it starts a new one. Bounding boxes come out in
// top-down coordinates.
func buildBlocks(frags []fragment, height float64, pageIndex int) []layout.TextBlock {
	type openBlock struct {
		x0, x1     float64
		yTop, yBot float64 // PDF coordinates, yTop > yBot
		lastY      float64
		size       float64
		lines      []string
	}

	var blocks []*openBlock

	for _, f := range frags {
		var target *openBlock
		for _, b := range blocks {
			adjacent := b.lastY-f.y < b.size*1.8 && f.y < b.lastY+b.size*0.5
			overlaps := f.x0 < b.x1 && b.x0 < f.x1
			if adjacent && overlaps {
				target = b
				break
			}
		}

		if target == nil {
			blocks = append(blocks, &openBlock{
				x0: f.x0, x1: f.x1,
				yTop: f.y + f.size, yBot: f.y,
				lastY: f.y, size: f.size,
				lines: []string{f.text},
			})
			continue
		}

		if abs(target.lastY-f.y) < f.size*0.5 {
			// Same baseline continues the current line.
			target.lines[len(target.lines)-1] += " " + f.text
		} else {
			target.lines = append(target.lines, f.text)
		}
		if f.x0 < target.x0 {
			target.x0 = f.x0
		}
		if f.x1 > target.x1 {
			target.x1 = f.x1
		}
		if f.y < target.yBot {
			target.yBot = f.y
		}
		target.lastY = f.y
		if f.size > target.size {
			target.size = f.size
		}
	}

	out := make([]layout.TextBlock, 0, len(blocks))
	for i, b := range blocks {
		out = append(out, layout.TextBlock{
			Text: strings.Join(b.lines, "\n"),
			BBox: layout.BBox{
				X0: b.x0,
				Y0: height - b.yTop,
				X1: b.x1,
				Y1: height - b.yBot,
			},
			BlockIndex: i,
			PageIndex:  pageIndex,
		})
	}
	return out
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
