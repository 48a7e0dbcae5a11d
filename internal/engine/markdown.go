package engine

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// loadMarkdown turns a Markdown file into flow blocks via the goldmark
// AST: headings become their own blocks so the section detector sees
// them on dedicated lines, everything else becomes paragraph blocks.
func loadMarkdown(path string, size int64) (Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	var parts []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if t := string(node.Text(src)); t != "" {
				parts = append(parts, t)
			}
		default:
			if t := mdNodeText(n, src); t != "" {
				parts = append(parts, t)
			}
		}
	}

	return flowDocument(path, size, "", parts), nil
}

// mdNodeText gets the text content of a goldmark AST node.
func mdNodeText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(mdNodeText(c, src))
		}
	}
	return strings.TrimSpace(buf.String())
}
