package textproc

import (
	"fmt"
	"regexp"
)

// mathPatterns is applied in order; the order is a contract (tested), since
// each pattern scans the text as modified by the ones before it. Inline
// delimiters run first, so a display formula $$x$$ is captured as the inner
// $x$ with the outer dollars left around the placeholder.
var mathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$[^$]+\$`),                              // inline LaTeX
	regexp.MustCompile(`\$\$[^$]+\$\$`),                          // display LaTeX
	regexp.MustCompile(`(?s)\\begin\{equation\}.*?\\end\{equation\}`), // equation env
	regexp.MustCompile(`(?s)\\begin\{align\}.*?\\end\{align\}`),       // align env
	regexp.MustCompile(`[∑∏∫∮∆∇α-ωΑ-Ω≤≥≠±∞]+`),                   // bare symbol runs
}

// IsolateMath strips mathematical notation out of text into a side list,
// replacing each occurrence with a [MATH_FORMULA_n] placeholder. Numbering
// is 1-based and continues from start, so formulas accumulate across the
// blocks of a page. Because replacement mutates the text between patterns,
// a later pattern can in principle match inside an inserted placeholder;
// that edge is accepted, not corrected.
func IsolateMath(text string, start int) (string, []string) {
	var formulas []string

	for _, pat := range mathPatterns {
		locs := pat.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		base := start + len(formulas)
		for _, loc := range locs {
			formulas = append(formulas, text[loc[0]:loc[1]])
		}
		// Replace back to front so earlier offsets stay valid.
		for i := len(locs) - 1; i >= 0; i-- {
			placeholder := fmt.Sprintf("[MATH_FORMULA_%d]", base+i+1)
			text = text[:locs[i][0]] + placeholder + text[locs[i][1]:]
		}
	}

	return text, formulas
}
