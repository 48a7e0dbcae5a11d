package engine

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"
)

// loadDOCX turns each DOCX paragraph into one flow block. Word exposes
// no page geometry through the file format, so pagination is synthetic
// like the other flow formats.
func loadDOCX(path string, size int64) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	doc, err := docx.Parse(f, size)
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var parts []string
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		if text := paragraphText(para); text != "" {
			parts = append(parts, text)
		}
	}

	return flowDocument(path, size, "", parts), nil
}

func paragraphText(para *docx.Paragraph) string {
	var buf strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				buf.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(buf.String())
}
