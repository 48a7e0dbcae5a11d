package engine

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestOpen_MissingFileIsNotFound(t *testing.T) {
	e := New(nil)
	_, err := e.Open(context.Background(), "/no/such/file.txt")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestOpen_UnsupportedExtension(t *testing.T) {
	path := writeFixture(t, "data.bin", "binary")
	_, err := New(nil).Open(context.Background(), path)
	if err == nil || !strings.Contains(err.Error(), "unsupported file extension") {
		t.Errorf("expected unsupported extension error, got %v", err)
	}
}

func TestOpen_CachesDocument(t *testing.T) {
	path := writeFixture(t, "doc.txt", "Paragraph one.\n\nParagraph two.")
	e := New(nil)

	first, err := e.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	second, err := e.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if first != second {
		t.Error("expected the cached document on second open")
	}
}

func TestOpen_ConcurrentFirstLoadSingleDocument(t *testing.T) {
	path := writeFixture(t, "doc.txt", "Some content here.")
	e := New(nil)

	const goroutines = 16
	docs := make([]Document, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			doc, err := e.Open(context.Background(), path)
			if err != nil {
				t.Errorf("goroutine %d: %v", i, err)
				return
			}
			docs[i] = doc
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if docs[i] != docs[0] {
			t.Fatal("concurrent first loads produced distinct documents")
		}
	}
}

func TestTextDocument_ParagraphBlocks(t *testing.T) {
	path := writeFixture(t, "doc.txt", "First paragraph.\n\nSecond paragraph\nwith a wrapped line.")
	doc, err := New(nil).Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if doc.PageCount() != 1 {
		t.Fatalf("expected 1 page, got %d", doc.PageCount())
	}
	blocks, err := doc.Blocks(0)
	if err != nil {
		t.Fatalf("blocks: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].Text != "First paragraph." {
		t.Errorf("block 0: got %q", blocks[0].Text)
	}
	// Synthetic geometry stacks blocks down a single column.
	if blocks[1].BBox.Y0 <= blocks[0].BBox.Y1 {
		t.Errorf("expected block 1 below block 0: %+v vs %+v", blocks[1].BBox, blocks[0].BBox)
	}
}

func TestDocument_PageOutOfRange(t *testing.T) {
	path := writeFixture(t, "doc.txt", "Content.")
	doc, err := New(nil).Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	if _, err := doc.PageText(5); !errors.Is(err, ErrNotFound) {
		t.Errorf("PageText: expected ErrNotFound, got %v", err)
	}
	if _, err := doc.Blocks(-1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Blocks: expected ErrNotFound, got %v", err)
	}
}

func TestRawText_WholeDocumentJoinsPages(t *testing.T) {
	// Enough paragraphs to paginate onto multiple synthetic pages.
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString("A paragraph of filler content for pagination purposes.\n\n")
	}
	path := writeFixture(t, "doc.txt", sb.String())
	e := New(nil)

	doc, err := e.Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if doc.PageCount() < 2 {
		t.Fatalf("expected pagination across pages, got %d", doc.PageCount())
	}

	all, err := e.RawText(context.Background(), path, -1)
	if err != nil {
		t.Fatalf("raw text: %v", err)
	}
	page0, _ := doc.PageText(0)
	if !strings.Contains(all, page0) {
		t.Error("whole-document text should contain page 0 text")
	}
}

func TestMarkdownDocument_HeadingsAsBlocks(t *testing.T) {
	md := "# Abstract\n\nThis study covers things.\n\n# Results\n\nThings happened.\n"
	path := writeFixture(t, "paper.md", md)

	doc, err := New(nil).Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	text, err := doc.PageText(0)
	if err != nil {
		t.Fatalf("page text: %v", err)
	}

	// Headings must sit on their own lines for section detection.
	lines := strings.Split(text, "\n")
	found := false
	for _, l := range lines {
		if strings.TrimSpace(l) == "Abstract" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected heading on its own line, got %q", text)
	}
}

func TestHTMLDocument_TitleAndBlocks(t *testing.T) {
	page := `<html><head><title>A Paper</title></head><body>
<script>ignored()</script>
<h1>Introduction</h1>
<p>Body text.</p>
</body></html>`
	path := writeFixture(t, "paper.html", page)

	doc, err := New(nil).Open(context.Background(), path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if doc.Info().Title != "A Paper" {
		t.Errorf("expected title from <title>, got %q", doc.Info().Title)
	}
	text, _ := doc.PageText(0)
	if strings.Contains(text, "ignored") {
		t.Errorf("script content leaked: %q", text)
	}
	if !strings.Contains(text, "Introduction") || !strings.Contains(text, "Body text.") {
		t.Errorf("expected heading and paragraph, got %q", text)
	}
}

func TestBuildBlocks_ColumnsStaySeparate(t *testing.T) {
	// Two columns sharing baselines must not merge into one block.
	frags := []fragment{
		{x0: 72, x1: 280, y: 700, size: 10, text: "left one"},
		{x0: 320, x1: 520, y: 700, size: 10, text: "right one"},
		{x0: 72, x1: 280, y: 688, size: 10, text: "left two"},
		{x0: 320, x1: 520, y: 688, size: 10, text: "right two"},
	}

	blocks := buildBlocks(frags, 792, 0)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 column blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Text != "left one\nleft two" {
		t.Errorf("left block: got %q", blocks[0].Text)
	}
	if blocks[1].Text != "right one\nright two" {
		t.Errorf("right block: got %q", blocks[1].Text)
	}
	if blocks[1].BBox.X0 <= blocks[0].BBox.X1 {
		t.Errorf("blocks should not overlap horizontally: %+v", blocks)
	}
}

func TestBuildBlocks_VerticalGapStartsNewBlock(t *testing.T) {
	frags := []fragment{
		{x0: 72, x1: 400, y: 700, size: 10, text: "para one line one"},
		{x0: 72, x1: 400, y: 688, size: 10, text: "para one line two"},
		{x0: 72, x1: 400, y: 600, size: 10, text: "para two"},
	}

	blocks := buildBlocks(frags, 792, 3)

	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if blocks[0].PageIndex != 3 {
		t.Errorf("expected page index 3, got %d", blocks[0].PageIndex)
	}
	// Top-down coordinates: the first block sits above the second.
	if blocks[0].BBox.Y0 >= blocks[1].BBox.Y0 {
		t.Errorf("expected flipped Y axis, got %+v then %+v", blocks[0].BBox, blocks[1].BBox)
	}
}
