// Package section segments normalized document text into named academic
// sections via a line classifier and a two-state accumulation loop.
package section

import (
	"fmt"
	"regexp"
	"strings"
)

// Section is one detected section. Line numbers index into the scanned
// text's line slice; LineEnd is inclusive and excludes the next header.
type Section struct {
	Content   string `json:"content"`
	LineStart int    `json:"line_start"`
	LineEnd   int    `json:"line_end"`
	WordCount int    `json:"word_count"`
}

// Result is the outcome of a detection pass. Sections are non-overlapping;
// Found preserves first-seen document order.
type Result struct {
	Sections map[string]Section `json:"sections"`
	Found    []string           `json:"sections_found"`
	Total    int                `json:"total_sections"`
}

// Detector classifies lines against compiled per-name pattern tables.
type Detector struct {
	order    []string
	patterns map[string][]*regexp.Regexp
}

// NewDetector compiles the given pattern tables. Name order in the slice
// is the match precedence.
func NewDetector(tables []NamePatterns) (*Detector, error) {
	d := &Detector{patterns: make(map[string][]*regexp.Regexp)}
	for _, t := range tables {
		var compiled []*regexp.Regexp
		for _, p := range t.Patterns {
			re, err := regexp.Compile(`(?i)` + p)
			if err != nil {
				return nil, fmt.Errorf("section pattern %q for %s: %w", p, t.Name, err)
			}
			compiled = append(compiled, re)
		}
		d.order = append(d.order, t.Name)
		d.patterns[t.Name] = compiled
	}
	return d, nil
}

// NewDefaultDetector builds a detector over the built-in tables.
func NewDefaultDetector() *Detector {
	d, err := NewDetector(DefaultPatterns())
	if err != nil {
		panic(err) // built-in tables always compile
	}
	return d
}

// Detect scans text line by line and segments it into named sections.
// Lines before the first recognized header belong to no section and are
// dropped; that is deliberate, not an omission. A header for an already
// seen name replaces that name's entry while keeping its original
// position in Found.
func (d *Detector) Detect(text string) *Result {
	lines := strings.Split(text, "\n")

	res := &Result{Sections: make(map[string]Section)}
	current := ""
	var content []string

	record := func(endExclusive int) {
		if current == "" || len(content) == 0 {
			return
		}
		if _, seen := res.Sections[current]; !seen {
			res.Found = append(res.Found, current)
		}
		res.Sections[current] = Section{
			Content:   strings.TrimSpace(strings.Join(content, "\n")),
			LineStart: endExclusive - len(content),
			LineEnd:   endExclusive - 1,
			WordCount: len(strings.Fields(strings.Join(content, " "))),
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if name := d.matchHeader(line); name != "" {
			record(i)
			current = name
			content = nil
			continue
		}

		if current != "" {
			content = append(content, line)
		}
	}
	record(len(lines))

	res.Total = len(res.Found)
	return res
}

// matchHeader returns the first section name whose table matches the line.
func (d *Detector) matchHeader(line string) string {
	for _, name := range d.order {
		for _, re := range d.patterns[name] {
			if re.MatchString(line) {
				return name
			}
		}
	}
	return ""
}
