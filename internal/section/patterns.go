package section

// NamePatterns binds one section name to its ordered header patterns.
// Tables are plain data so they can be overridden (e.g. from a YAML file)
// without touching the detector's control flow.
type NamePatterns struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// DefaultPatterns returns the built-in header tables. The name order is
// fixed and significant: a line is tested name by name and the first
// matching name wins. Patterns are matched case-insensitively, first
// match within a name's list wins.
func DefaultPatterns() []NamePatterns {
	return []NamePatterns{
		{Name: "abstract", Patterns: []string{
			`^ABSTRACT\s*$`,
			`^Abstract\s*$`,
			`^\d+\.\s*ABSTRACT`,
			`^\d+\.\s*Abstract`,
		}},
		{Name: "introduction", Patterns: []string{
			`^INTRODUCTION\s*$`,
			`^Introduction\s*$`,
			`^\d+\.\s*INTRODUCTION`,
			`^\d+\.\s*Introduction`,
			`^1\.\s*Introduction`,
		}},
		{Name: "methods", Patterns: []string{
			`^METHODS?\s*$`,
			`^Methods?\s*$`,
			`^METHODOLOGY\s*$`,
			`^Methodology\s*$`,
			`^\d+\.\s*METHODS?`,
			`^\d+\.\s*Methods?`,
			`^\d+\.\s*METHODOLOGY`,
			`^\d+\.\s*Methodology`,
		}},
		{Name: "results", Patterns: []string{
			`^RESULTS?\s*$`,
			`^Results?\s*$`,
			`^FINDINGS\s*$`,
			`^Findings\s*$`,
			`^\d+\.\s*RESULTS?`,
			`^\d+\.\s*Results?`,
			`^\d+\.\s*FINDINGS`,
			`^\d+\.\s*Findings`,
		}},
		{Name: "discussion", Patterns: []string{
			`^DISCUSSION\s*$`,
			`^Discussion\s*$`,
			`^\d+\.\s*DISCUSSION`,
			`^\d+\.\s*Discussion`,
		}},
		{Name: "conclusion", Patterns: []string{
			`^CONCLUSIONS?\s*$`,
			`^Conclusions?\s*$`,
			`^\d+\.\s*CONCLUSIONS?`,
			`^\d+\.\s*Conclusions?`,
		}},
		{Name: "references", Patterns: []string{
			`^REFERENCES\s*$`,
			`^References\s*$`,
			`^BIBLIOGRAPHY\s*$`,
			`^Bibliography\s*$`,
			`^\d+\.\s*REFERENCES`,
			`^\d+\.\s*References`,
		}},
	}
}
