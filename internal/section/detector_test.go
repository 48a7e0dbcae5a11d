package section

import (
	"strings"
	"testing"
)

const paperText = `The Title Of The Paper
Some front matter that precedes any header.

Abstract
This study examines the effect of foo on bar.

Introduction
Foo has long been suspected to influence bar.
Prior work disagrees.

3. Methodology
We measured foo twice.

Results
Bar increased.

REFERENCES
[1] Smith, A. (2020). Title. Journal, 5, 1-10.`

func TestDetect_FindsNamedSections(t *testing.T) {
	res := NewDefaultDetector().Detect(paperText)

	want := []string{"abstract", "introduction", "methods", "results", "references"}
	if len(res.Found) != len(want) {
		t.Fatalf("expected sections %v, got %v", want, res.Found)
	}
	for i, name := range want {
		if res.Found[i] != name {
			t.Errorf("found[%d]: expected %q, got %q", i, name, res.Found[i])
		}
	}
	if res.Total != 5 {
		t.Errorf("expected total 5, got %d", res.Total)
	}

	intro := res.Sections["introduction"]
	if !strings.Contains(intro.Content, "Prior work disagrees.") {
		t.Errorf("introduction content incomplete: %q", intro.Content)
	}
	if intro.WordCount != 11 {
		t.Errorf("expected introduction word count 11, got %d", intro.WordCount)
	}
}

func TestDetect_SectionsOrderedAndNonOverlapping(t *testing.T) {
	res := NewDefaultDetector().Detect(paperText)

	prevEnd := -1
	for _, name := range res.Found {
		sec := res.Sections[name]
		if sec.LineStart <= prevEnd {
			t.Errorf("section %q (lines %d-%d) overlaps previous end %d",
				name, sec.LineStart, sec.LineEnd, prevEnd)
		}
		if sec.LineEnd < sec.LineStart {
			t.Errorf("section %q has end %d before start %d", name, sec.LineEnd, sec.LineStart)
		}
		prevEnd = sec.LineEnd
	}
}

func TestDetect_TextBeforeFirstHeaderDropped(t *testing.T) {
	res := NewDefaultDetector().Detect(paperText)

	for name, sec := range res.Sections {
		if strings.Contains(sec.Content, "front matter") {
			t.Errorf("pre-header text leaked into section %q", name)
		}
	}
}

func TestDetect_NumberedHeaderVariant(t *testing.T) {
	res := NewDefaultDetector().Detect(paperText)

	if _, ok := res.Sections["methods"]; !ok {
		t.Fatalf("expected %q header to match methods, found %v", "3. Methodology", res.Found)
	}
}

func TestDetect_NoHeaders(t *testing.T) {
	res := NewDefaultDetector().Detect("Just prose.\nNothing resembling a header.\n")

	if res.Total != 0 || len(res.Sections) != 0 {
		t.Errorf("expected no sections, got %v", res.Found)
	}
}

func TestDetect_DuplicateHeaderReplacesContent(t *testing.T) {
	text := "Results\nearly numbers\n\nDiscussion\nsome talk\n\nResults\nfinal numbers\n"
	res := NewDefaultDetector().Detect(text)

	if res.Total != 2 {
		t.Fatalf("expected 2 sections, got %v", res.Found)
	}
	if res.Found[0] != "results" || res.Found[1] != "discussion" {
		t.Errorf("found order: %v", res.Found)
	}
	if got := res.Sections["results"].Content; got != "final numbers" {
		t.Errorf("expected later occurrence to win, got %q", got)
	}
}

func TestExtractAbstract_FromHeader(t *testing.T) {
	res := NewDefaultDetector().Detect(paperText)

	got := ExtractAbstract(res, paperText)
	if !got.Found {
		t.Fatal("expected abstract to be found")
	}
	if got.Method != "" {
		t.Errorf("header-based lookup should not set method, got %q", got.Method)
	}
	if !strings.Contains(got.Abstract, "effect of foo on bar") {
		t.Errorf("unexpected abstract: %q", got.Abstract)
	}
}

func TestExtractAbstract_HeuristicFallback(t *testing.T) {
	para := "This research considers " + strings.Repeat("a detailed point ", 20) + "in depth."
	text := "Title line\n\n" + para + "\n\nUnrelated body text."

	res := NewDefaultDetector().Detect(text)
	got := ExtractAbstract(res, text)

	if !got.Found {
		t.Fatal("expected heuristic abstract")
	}
	if got.Method != "heuristic" {
		t.Errorf("expected method heuristic, got %q", got.Method)
	}
	if got.WordCount <= 50 || got.WordCount >= 300 {
		t.Errorf("heuristic abstract outside word bounds: %d", got.WordCount)
	}
}

func TestExtractAbstract_NotFound(t *testing.T) {
	got := ExtractAbstract(NewDefaultDetector().Detect("short text"), "short text")
	if got.Found {
		t.Errorf("expected not found, got %+v", got)
	}
}

func TestKeySections_Truncation(t *testing.T) {
	long := strings.Repeat("word ", 600)
	text := "Introduction\n" + long + "\nConclusion\nbrief wrap up here now"
	res := NewDefaultDetector().Detect(text)

	key := KeySections(res)

	intro, ok := key["introduction"]
	if !ok {
		t.Fatal("expected introduction in key sections")
	}
	if !strings.HasSuffix(intro, "... [truncated]") {
		t.Errorf("expected truncation marker, got tail %q", intro[len(intro)-30:])
	}
	if got := len(strings.Fields(strings.TrimSuffix(intro, "... [truncated]"))); got != 500 {
		t.Errorf("expected 500 words before marker, got %d", got)
	}
	if _, ok := key["references"]; ok {
		t.Error("references is not a key section")
	}
}

func TestSummarize_StructureEstimate(t *testing.T) {
	full := NewDefaultDetector().Detect(paperText)
	sum := Summarize(full)

	if sum.Structure != "academic_paper" {
		t.Errorf("expected academic_paper for %d sections, got %q", full.Total, sum.Structure)
	}
	if !sum.HasAbstract || !sum.HasReferences || sum.HasDiscussion {
		t.Errorf("section flags wrong: %+v", sum)
	}

	single := NewDefaultDetector().Detect("Abstract\nOnly an abstract here.\n")
	if got := Summarize(single).Structure; got != "other_document" {
		t.Errorf("expected other_document for single header, got %q", got)
	}
}

func TestSummarize_PercentagesSumNearHundred(t *testing.T) {
	sum := Summarize(NewDefaultDetector().Detect(paperText))

	total := 0.0
	for _, stat := range sum.Statistics {
		total += stat.Percentage
	}
	if total < 99.0 || total > 101.0 {
		t.Errorf("percentages should sum near 100, got %.1f", total)
	}
}

func TestNewDetector_BadPattern(t *testing.T) {
	_, err := NewDetector([]NamePatterns{{Name: "x", Patterns: []string{"("}}})
	if err == nil {
		t.Fatal("expected compile error for invalid pattern")
	}
}
