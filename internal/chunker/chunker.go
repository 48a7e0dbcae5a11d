// Package chunker repackages processed page text into bounded,
// sentence-aligned chunks for downstream consumption.
package chunker

import (
	"strings"

	"github.com/dgallion1/scholardoc/internal/textproc"
)

// DefaultChunkSize is the character budget applied when the caller
// passes a non-positive size.
const DefaultChunkSize = 1000

// Chunk is one sentence-aligned slice of document text. The budget is a
// soft ceiling: a single sentence longer than the budget is emitted
// whole rather than truncated.
type Chunk struct {
	ID        int    `json:"chunk_id"`
	Text      string `json:"text"`
	PageStart int    `json:"page_start"`
	PageEnd   int    `json:"page_end"`
	WordCount int    `json:"word_count"`
}

// Assemble greedily accumulates sentences across pages into chunks of at
// most chunkSize characters. Ids are sequential in emission order across
// the whole document, including across page boundaries.
func Assemble(pages []textproc.ProcessedPage, chunkSize int) []Chunk {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	var chunks []Chunk
	var buf strings.Builder
	startPage := 0

	emit := func(endPage int) {
		text := strings.TrimSpace(buf.String())
		if text == "" {
			return
		}
		chunks = append(chunks, Chunk{
			ID:        len(chunks),
			Text:      text,
			PageStart: startPage,
			PageEnd:   endPage,
			WordCount: len(strings.Fields(text)),
		})
	}

	lastPage := 0
	for _, page := range pages {
		lastPage = page.PageIndex
		for _, sentence := range SplitSentences(page.Text) {
			sep := 0
			if buf.Len() > 0 {
				sep = 1
			}
			if buf.Len()+sep+len(sentence) > chunkSize && buf.Len() > 0 {
				emit(page.PageIndex)
				buf.Reset()
				startPage = page.PageIndex
			}
			if buf.Len() > 0 {
				buf.WriteString(" ")
			}
			buf.WriteString(sentence)
		}
	}
	emit(lastPage)

	return chunks
}

// SplitSentences breaks text on a sentence terminator followed by
// whitespace. The terminator stays with its sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if (r == '.' || r == '!' || r == '?') && i+1 < len(runes) && isSpace(runes[i+1]) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
