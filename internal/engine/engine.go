// Package engine is the document boundary: it loads files into pages of
// positioned text blocks and caches the parsed documents by path.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dgallion1/scholardoc/internal/layout"
)

// ErrNotFound covers missing files and out-of-range pages. It always
// surfaces to the caller unchanged; nothing here retries.
var ErrNotFound = errors.New("not found")

// Metadata is best-effort document information; fields the source format
// lacks stay empty.
type Metadata struct {
	Title     string `json:"title"`
	Author    string `json:"author"`
	PageCount int    `json:"page_count"`
	FileSize  int64  `json:"file_size"`
}

// Document is one parsed document. Implementations are immutable after
// load and safe for concurrent readers.
type Document interface {
	PageCount() int
	// PageText returns the raw linear text of a zero-based page.
	PageText(page int) (string, error)
	// Blocks returns the page's positioned text blocks in source order.
	Blocks(page int) ([]layout.TextBlock, error)
	Info() Metadata
}

// SupportedExtensions lists file extensions the engine can load.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".docx":     true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".txt":      true,
}

// Engine caches parsed documents by path. The per-path entry carries a
// sync.Once so concurrent first loads of the same path collapse into a
// single parse instead of racing to duplicate handles.
type Engine struct {
	mu   sync.Mutex
	docs map[string]*docEntry
	log  *slog.Logger
}

type docEntry struct {
	once sync.Once
	doc  Document
	err  error
}

// New creates an empty engine. The cache lives for the process lifetime;
// there is no eviction.
func New(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		docs: make(map[string]*docEntry),
		log:  log,
	}
}

// Open returns the cached document for path, loading it on first use.
func (e *Engine) Open(ctx context.Context, path string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	e.mu.Lock()
	entry, ok := e.docs[path]
	if !ok {
		entry = &docEntry{}
		e.docs[path] = entry
	}
	e.mu.Unlock()

	entry.once.Do(func() {
		entry.doc, entry.err = e.load(path)
		if entry.err != nil {
			e.log.Warn("document load failed", "path", path, "error", entry.err)
		} else {
			e.log.Info("document loaded", "path", path, "pages", entry.doc.PageCount())
		}
	})

	return entry.doc, entry.err
}

// RawText returns the raw text of one page, or of the whole document
// (pages joined by a blank line) when page is negative.
func (e *Engine) RawText(ctx context.Context, path string, page int) (string, error) {
	doc, err := e.Open(ctx, path)
	if err != nil {
		return "", err
	}

	if page >= 0 {
		return doc.PageText(page)
	}

	var parts []string
	for i := 0; i < doc.PageCount(); i++ {
		text, err := doc.PageText(i)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}
	return strings.TrimSpace(strings.Join(parts, "\n\n")), nil
}

// PageBlocks returns the positioned blocks of a zero-based page.
func (e *Engine) PageBlocks(ctx context.Context, path string, page int) ([]layout.TextBlock, error) {
	doc, err := e.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return doc.Blocks(page)
}

// load parses a document from disk. Failed loads stay cached: a path
// that failed once fails the same way for every later caller.
func (e *Engine) load(path string) (Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return loadPDF(path, info.Size())
	case ".docx":
		return loadDOCX(path, info.Size())
	case ".md", ".markdown":
		return loadMarkdown(path, info.Size())
	case ".html", ".htm":
		return loadHTML(path, info.Size())
	case ".txt":
		return loadText(path, info.Size())
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// memDocument is the shared in-memory document representation all
// loaders produce.
type memDocument struct {
	meta  Metadata
	pages []layout.Page
	texts []string
}

func (d *memDocument) PageCount() int { return len(d.pages) }

func (d *memDocument) Info() Metadata { return d.meta }

func (d *memDocument) PageText(page int) (string, error) {
	if page < 0 || page >= len(d.texts) {
		return "", fmt.Errorf("%w: page %d of %d", ErrNotFound, page, len(d.texts))
	}
	return d.texts[page], nil
}

func (d *memDocument) Blocks(page int) ([]layout.TextBlock, error) {
	if page < 0 || page >= len(d.pages) {
		return nil, fmt.Errorf("%w: page %d of %d", ErrNotFound, page, len(d.pages))
	}
	return d.pages[page].Blocks, nil
}

// baseName strips the directory and extension for use as a title.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
