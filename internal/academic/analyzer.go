// Package academic composes the document engine with the structuring
// pipeline and exposes the caller-facing operations.
package academic

import (
	"context"
	"log/slog"

	"github.com/dgallion1/scholardoc/internal/chunker"
	"github.com/dgallion1/scholardoc/internal/citation"
	"github.com/dgallion1/scholardoc/internal/engine"
	"github.com/dgallion1/scholardoc/internal/layout"
	"github.com/dgallion1/scholardoc/internal/section"
	"github.com/dgallion1/scholardoc/internal/textproc"
)

// Analyzer runs the structuring pipeline over engine-loaded documents.
// Every operation builds its results fresh from the document; nothing
// downstream of the engine cache is stored or mutated.
type Analyzer struct {
	engine    *engine.Engine
	sections  *section.Detector
	citations *citation.Extractor
	log       *slog.Logger
}

// New wires an analyzer. Nil detector or extractor fall back to the
// built-in pattern tables.
func New(eng *engine.Engine, det *section.Detector, ext *citation.Extractor, log *slog.Logger) *Analyzer {
	if det == nil {
		det = section.NewDefaultDetector()
	}
	if ext == nil {
		ext = citation.NewDefaultExtractor()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{engine: eng, sections: det, citations: ext, log: log}
}

// fullText returns the whole document's raw text, normalized so the
// line-oriented detectors see repaired, stable input.
func (a *Analyzer) fullText(ctx context.Context, path string) (string, error) {
	raw, err := a.engine.RawText(ctx, path, -1)
	if err != nil {
		return "", err
	}
	return textproc.Normalize(raw), nil
}

// DetectSections segments the document into named academic sections.
func (a *Analyzer) DetectSections(ctx context.Context, path string) (*section.Result, error) {
	text, err := a.fullText(ctx, path)
	if err != nil {
		return nil, err
	}
	return a.sections.Detect(text), nil
}

// ExtractKeySections returns the priority sections, truncated for agent
// consumption.
func (a *Analyzer) ExtractKeySections(ctx context.Context, path string) (map[string]string, error) {
	res, err := a.DetectSections(ctx, path)
	if err != nil {
		return nil, err
	}
	return section.KeySections(res), nil
}

// ExtractAbstract finds the abstract by header, falling back to a
// heuristic scan of the opening paragraphs.
func (a *Analyzer) ExtractAbstract(ctx context.Context, path string) (section.AbstractResult, error) {
	text, err := a.fullText(ctx, path)
	if err != nil {
		return section.AbstractResult{}, err
	}
	return section.ExtractAbstract(a.sections.Detect(text), text), nil
}

// SectionSummary reports the detected document structure.
func (a *Analyzer) SectionSummary(ctx context.Context, path string) (section.Summary, error) {
	res, err := a.DetectSections(ctx, path)
	if err != nil {
		return section.Summary{}, err
	}
	return section.Summarize(res), nil
}

// ExtractCitations finds in-text mentions across the document and
// parses the reference list when a references section was detected.
func (a *Analyzer) ExtractCitations(ctx context.Context, path string) (*citation.Result, error) {
	text, err := a.fullText(ctx, path)
	if err != nil {
		return nil, err
	}

	refText := ""
	if refs, ok := a.sections.Detect(text).Sections["references"]; ok {
		refText = refs.Content
	}

	return a.citations.Extract(text, refText), nil
}

// CitationSummary condenses a citation extraction for agent use.
func (a *Analyzer) CitationSummary(ctx context.Context, path string) (citation.Summary, error) {
	res, err := a.ExtractCitations(ctx, path)
	if err != nil {
		return citation.Summary{}, err
	}
	return citation.Summarize(res), nil
}

// DocumentText is the whole-document aggregate of per-page processing.
type DocumentText struct {
	FullText   string                   `json:"full_text"`
	Pages      []textproc.ProcessedPage `json:"pages"`
	TotalPages int                      `json:"total_pages"`
}

// ExtractPage runs reading-order reconstruction, math isolation, and
// normalization over one zero-based page.
func (a *Analyzer) ExtractPage(ctx context.Context, path string, page int) (textproc.ProcessedPage, error) {
	blocks, err := a.engine.PageBlocks(ctx, path, page)
	if err != nil {
		return textproc.ProcessedPage{}, err
	}
	return textproc.ProcessPage(layout.Page{Index: page, Blocks: blocks}), nil
}

// ExtractText processes every page and aggregates the result.
func (a *Analyzer) ExtractText(ctx context.Context, path string) (*DocumentText, error) {
	doc, err := a.engine.Open(ctx, path)
	if err != nil {
		return nil, err
	}

	out := &DocumentText{TotalPages: doc.PageCount()}
	for i := 0; i < doc.PageCount(); i++ {
		processed, err := a.ExtractPage(ctx, path, i)
		if err != nil {
			return nil, err
		}
		out.Pages = append(out.Pages, processed)
		if processed.Text != "" {
			if out.FullText != "" {
				out.FullText += "\n\n"
			}
			out.FullText += processed.Text
		}
	}
	return out, nil
}

// ChunkContent repackages the processed pages into bounded,
// sentence-aligned chunks.
func (a *Analyzer) ChunkContent(ctx context.Context, path string, chunkSize int) ([]chunker.Chunk, error) {
	text, err := a.ExtractText(ctx, path)
	if err != nil {
		return nil, err
	}
	return chunker.Assemble(text.Pages, chunkSize), nil
}

// Metadata returns best-effort document information from the engine.
func (a *Analyzer) Metadata(ctx context.Context, path string) (engine.Metadata, error) {
	doc, err := a.engine.Open(ctx, path)
	if err != nil {
		return engine.Metadata{}, err
	}
	return doc.Info(), nil
}
