package citation

// DefaultMentionPatterns is the ordered in-text citation pattern library.
// Every pattern scans the whole document independently; the pooled
// matches are sorted by offset and deduplicated afterwards.
func DefaultMentionPatterns() []string {
	return []string{
		`\(([A-Z][a-z]+ et al\.?, \d{4}[a-z]?)\)`,            // (Smith et al., 2020)
		`\(([A-Z][a-z]+ & [A-Z][a-z]+, \d{4}[a-z]?)\)`,       // (Smith & Jones, 2020)
		`\(([A-Z][a-z]+, \d{4}[a-z]?)\)`,                     // (Smith, 2020)
		`\[(\d+)\]`,                                          // [1]
		`\[(\d+)-(\d+)\]`,                                    // [1-3]
		`\[(\d+,\s*\d+(?:,\s*\d+)*)\]`,                       // [1, 2, 3]
	}
}

// Strict reference-entry shapes, tried in order. These are best-effort:
// when none match, the entry keeps only its year/DOI/URL/author fields.
const (
	// Author, A. (Year). Title. Journal, Volume(Issue), pages.
	refAPAWithIssue = `^([A-Z][a-z]+(?:,\s[A-Z]\.)*(?:\s&\s[A-Z][a-z]+(?:,\s[A-Z]\.)*)*)\.?\s*\((\d{4}[a-z]?)\)\.\s*(.+?)\.\s*([^,]+),\s*(\d+)(?:\((\d+)\))?,\s*(\d+-\d+)\.`
	// Author, A., & Author, B. (Year). Title. Journal, Volume, pages.
	refAPAPlain = `^([A-Z][a-z]+(?:,\s[A-Z]\.)*(?:\s&\s[A-Z][a-z]+(?:,\s[A-Z]\.)*)*)\.?\s*\((\d{4}[a-z]?)\)\.\s*(.+?)\.\s*([^,]+),\s*(\d+),\s*(\d+-\d+)\.`
	// [1] Author, A. (Year). Title...
	refNumbered = `^\[(\d+)\]\s+([A-Z][a-z]+(?:,\s[A-Z]\.)*(?:(?:,\s)?\s?&\s[A-Z][a-z]+(?:,\s[A-Z]\.)*)*)\.?\s*\((\d{4}[a-z]?)\)\.\s*(.+)`
)
