package section

import (
	"math"
	"strings"
)

// Names a downstream consumer cares about most, in priority order.
var keySectionNames = []string{"abstract", "introduction", "methods", "results", "conclusion"}

const keySectionWordLimit = 500

// abstractKeywords drive the fallback heuristic when no abstract header
// was detected.
var abstractKeywords = []string{"study", "research", "analysis", "investigation"}

// AbstractResult reports an abstract lookup.
type AbstractResult struct {
	Abstract  string `json:"abstract"`
	WordCount int    `json:"word_count,omitempty"`
	Found     bool   `json:"found"`
	Method    string `json:"method,omitempty"`
}

// ExtractAbstract returns the detected abstract section, falling back to a
// length/keyword scan over the document's first five paragraphs when no
// header matched.
func ExtractAbstract(res *Result, fullText string) AbstractResult {
	if abs, ok := res.Sections["abstract"]; ok {
		return AbstractResult{
			Abstract:  abs.Content,
			WordCount: abs.WordCount,
			Found:     true,
		}
	}

	paragraphs := strings.Split(fullText, "\n\n")
	if len(paragraphs) > 5 {
		paragraphs = paragraphs[:5]
	}
	for _, para := range paragraphs {
		words := len(strings.Fields(para))
		if words <= 50 || words >= 300 {
			continue
		}
		lower := strings.ToLower(para)
		for _, kw := range abstractKeywords {
			if strings.Contains(lower, kw) {
				return AbstractResult{
					Abstract:  strings.TrimSpace(para),
					WordCount: words,
					Found:     true,
					Method:    "heuristic",
				}
			}
		}
	}

	return AbstractResult{Found: false}
}

// KeySections extracts the priority sections, truncating anything over
// 500 words with a trailing marker.
func KeySections(res *Result) map[string]string {
	out := make(map[string]string)
	for _, name := range keySectionNames {
		sec, ok := res.Sections[name]
		if !ok {
			continue
		}
		content := sec.Content
		words := strings.Fields(content)
		if len(words) > keySectionWordLimit {
			content = strings.Join(words[:keySectionWordLimit], " ") + "... [truncated]"
		}
		out[name] = content
	}
	return out
}

// Stat is one section's share of the document body.
type Stat struct {
	WordCount  int     `json:"word_count"`
	Percentage float64 `json:"percentage"`
}

// Summary characterizes the detected document structure.
type Summary struct {
	HasAbstract     bool            `json:"has_abstract"`
	HasIntroduction bool            `json:"has_introduction"`
	HasMethods      bool            `json:"has_methods"`
	HasResults      bool            `json:"has_results"`
	HasDiscussion   bool            `json:"has_discussion"`
	HasConclusion   bool            `json:"has_conclusion"`
	HasReferences   bool            `json:"has_references"`
	TotalSections   int             `json:"total_sections"`
	Structure       string          `json:"estimated_structure"`
	Statistics      map[string]Stat `json:"section_statistics"`
}

// Summarize reports which sections were found and how the body text is
// distributed across them. Four or more recognized sections estimate an
// academic paper; anything less is some other document.
func Summarize(res *Result) Summary {
	has := func(name string) bool {
		_, ok := res.Sections[name]
		return ok
	}

	structure := "other_document"
	if res.Total >= 4 {
		structure = "academic_paper"
	}

	totalWords := 0
	for _, sec := range res.Sections {
		totalWords += sec.WordCount
	}

	stats := make(map[string]Stat)
	for name, sec := range res.Sections {
		pct := 0.0
		if totalWords > 0 {
			pct = math.Round(float64(sec.WordCount)/float64(totalWords)*1000) / 10
		}
		stats[name] = Stat{WordCount: sec.WordCount, Percentage: pct}
	}

	return Summary{
		HasAbstract:     has("abstract"),
		HasIntroduction: has("introduction"),
		HasMethods:      has("methods"),
		HasResults:      has("results"),
		HasDiscussion:   has("discussion"),
		HasConclusion:   has("conclusion"),
		HasReferences:   has("references"),
		TotalSections:   res.Total,
		Structure:       structure,
		Statistics:      stats,
	}
}
