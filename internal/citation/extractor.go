// Package citation finds in-text citation mentions and parses reference
// list entries out of academic document text.
package citation

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

const contextRadius = 50

// Mention is one distinct in-text citation. Mentions are keyed by their
// literal text: repeated occurrences of the same text collapse into the
// earliest one. That discards legitimately repeated citations, a known
// limitation kept for compatibility.
type Mention struct {
	Citation string `json:"citation"`
	Position int    `json:"position"`
	Context  string `json:"context"`
	Type     string `json:"type"`
}

// Entry is one parsed bibliography record. Everything beyond Number and
// RawText is best-effort and may be empty.
type Entry struct {
	Number     int    `json:"reference_number"`
	RawText    string `json:"raw_text"`
	AuthorsRaw string `json:"authors_raw"`
	Year       string `json:"year"`
	Title      string `json:"title"`
	Journal    string `json:"journal"`
	Volume     string `json:"volume"`
	Issue      string `json:"issue"`
	Pages      string `json:"pages"`
	DOI        string `json:"doi,omitempty"`
	URL        string `json:"url,omitempty"`
}

// Result bundles a full citation extraction pass.
type Result struct {
	InText         []Mention `json:"in_text_citations"`
	References     []Entry   `json:"references"`
	CitationCount  int       `json:"citation_count"`
	ReferenceCount int       `json:"reference_count"`
	Style          string    `json:"citation_style"`
}

var (
	yearRe       = regexp.MustCompile(`\((\d{4}[a-z]?)\)`)
	doiRe        = regexp.MustCompile(`(?i)doi[:\s]*(10\.\d+/[^\s]+)`)
	urlRe        = regexp.MustCompile(`https?://[^\s]+`)
	bracketNumRe = regexp.MustCompile(`^\[\d+\]\s*`)
	dottedNumRe  = regexp.MustCompile(`^\d+\.\s*`)
	surnameRe    = regexp.MustCompile(`^[A-Z][a-z]+,`)

	numberedTypeRe = regexp.MustCompile(`^\[\d`)
	authorTypeRe   = regexp.MustCompile(`^\([A-Z]`)
)

// Extractor applies a mention pattern library plus the reference entry
// grammar. Zero instance state beyond compiled patterns; safe for
// concurrent use.
type Extractor struct {
	mentions []*regexp.Regexp
	strict   []*regexp.Regexp
}

// NewExtractor compiles the given mention pattern library.
func NewExtractor(mentionPatterns []string) (*Extractor, error) {
	e := &Extractor{}
	for _, p := range mentionPatterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("citation pattern %q: %w", p, err)
		}
		e.mentions = append(e.mentions, re)
	}
	for _, p := range []string{refAPAWithIssue, refAPAPlain, refNumbered} {
		e.strict = append(e.strict, regexp.MustCompile(p))
	}
	return e, nil
}

// NewDefaultExtractor builds an extractor over the built-in patterns.
func NewDefaultExtractor() *Extractor {
	e, err := NewExtractor(DefaultMentionPatterns())
	if err != nil {
		panic(err) // built-in patterns always compile
	}
	return e
}

// Extract runs the full pass: mentions over the whole document text,
// references over the content of the detected references section (pass
// "" when that section is absent).
func (e *Extractor) Extract(fullText, referencesText string) *Result {
	mentions := e.FindMentions(fullText)
	refs := e.ParseReferences(referencesText)

	return &Result{
		InText:         mentions,
		References:     refs,
		CitationCount:  len(mentions),
		ReferenceCount: len(refs),
		Style:          DetectStyle(mentions),
	}
}

// FindMentions pools matches from every pattern over the whole text,
// sorts them by offset, and keeps the earliest occurrence of each
// distinct citation text.
func (e *Extractor) FindMentions(text string) []Mention {
	var pool []Mention

	for _, re := range e.mentions {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			citation := text[loc[0]:loc[1]]

			start := loc[0] - contextRadius
			if start < 0 {
				start = 0
			}
			end := loc[1] + contextRadius
			if end > len(text) {
				end = len(text)
			}

			pool = append(pool, Mention{
				Citation: citation,
				Position: loc[0],
				Context:  text[start:end],
				Type:     classify(citation),
			})
		}
	}

	sort.SliceStable(pool, func(i, j int) bool { return pool[i].Position < pool[j].Position })

	seen := make(map[string]bool)
	unique := make([]Mention, 0, len(pool))
	for _, m := range pool {
		if seen[m.Citation] {
			continue
		}
		seen[m.Citation] = true
		unique = append(unique, m)
	}
	return unique
}

// classify types a single mention by its leading characters.
func classify(citation string) string {
	switch {
	case numberedTypeRe.MatchString(citation):
		return "numbered"
	case authorTypeRe.MatchString(citation):
		return "author_year"
	default:
		return "other"
	}
}

// DetectStyle reports the majority mention type: "numbered",
// "apa_harvard", "mixed" on a tie, "unknown" with no mentions.
func DetectStyle(mentions []Mention) string {
	if len(mentions) == 0 {
		return "unknown"
	}
	numbered, authorYear := 0, 0
	for _, m := range mentions {
		switch m.Type {
		case "numbered":
			numbered++
		case "author_year":
			authorYear++
		}
	}
	switch {
	case numbered > authorYear:
		return "numbered"
	case authorYear > numbered:
		return "apa_harvard"
	default:
		return "mixed"
	}
}

// ParseReferences segments the references section into entries and
// parses each one. Entries under 20 characters are noise and are
// discarded without consuming a number.
func (e *Extractor) ParseReferences(text string) []Entry {
	var refs []Entry
	var current string

	flush := func() {
		if current == "" {
			return
		}
		if entry, ok := e.parseEntry(current, len(refs)+1); ok {
			refs = append(refs, entry)
		}
		current = ""
	}

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if startsEntry(line) {
			flush()
			current = line
		} else if current != "" {
			current += " " + line
		} else {
			current = line
		}
	}
	flush()

	return refs
}

// startsEntry reports whether a line opens a new reference entry: a
// bracketed number, a numeral followed by a period, or a capitalized
// surname followed by a comma.
func startsEntry(line string) bool {
	return bracketNumRe.MatchString(line) ||
		dottedNumRe.MatchString(line) ||
		surnameRe.MatchString(line)
}

// parseEntry extracts best-effort bibliographic fields from one raw
// entry. Returns ok=false for entries too short to be real references.
func (e *Extractor) parseEntry(raw string, number int) (Entry, bool) {
	raw = strings.TrimSpace(raw)
	if len(raw) < 20 {
		return Entry{}, false
	}

	entry := Entry{Number: number, RawText: raw}

	yearLoc := yearRe.FindStringSubmatchIndex(raw)
	if yearLoc != nil {
		entry.Year = raw[yearLoc[2]:yearLoc[3]]

		authors := strings.TrimSpace(raw[:yearLoc[0]])
		authors = bracketNumRe.ReplaceAllString(authors, "")
		authors = dottedNumRe.ReplaceAllString(authors, "")
		entry.AuthorsRaw = authors
	}

	if m := doiRe.FindStringSubmatch(raw); m != nil {
		entry.DOI = m[1]
	}
	if m := urlRe.FindString(raw); m != "" {
		entry.URL = m
	}

	e.applyStrict(raw, &entry)

	return entry, true
}

// applyStrict tries the strict entry grammars in order; the first match
// fills the structured fields.
func (e *Extractor) applyStrict(raw string, entry *Entry) {
	for i, re := range e.strict {
		m := re.FindStringSubmatch(raw)
		if m == nil {
			continue
		}
		switch i {
		case 0: // authors, year, title, journal, volume, issue?, pages
			entry.AuthorsRaw = m[1]
			entry.Year = m[2]
			entry.Title = m[3]
			entry.Journal = strings.TrimSpace(m[4])
			entry.Volume = m[5]
			entry.Issue = m[6]
			entry.Pages = m[7]
		case 1: // authors, year, title, journal, volume, pages
			entry.AuthorsRaw = m[1]
			entry.Year = m[2]
			entry.Title = m[3]
			entry.Journal = strings.TrimSpace(m[4])
			entry.Volume = m[5]
			entry.Pages = m[6]
		case 2: // number, authors, year, rest as title
			entry.AuthorsRaw = m[2]
			entry.Year = m[3]
			entry.Title = m[4]
		}
		return
	}
}
