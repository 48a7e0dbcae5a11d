package textproc

import "testing"

func TestNormalize_CollapsesWhitespaceRuns(t *testing.T) {
	got := Normalize("too   many\t\tspaces here")
	want := "too many spaces here"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_RepairsMissingInterWordSpaces(t *testing.T) {
	got := Normalize("the resultShows that")
	want := "the result Shows that"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_JoinsHyphenBrokenWords(t *testing.T) {
	got := Normalize("an impor-\ntant finding on co- operation")
	want := "an important finding on cooperation"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_RemovesSpaceBeforePunctuation(t *testing.T) {
	got := Normalize("a claim , then more ; and done .")
	want := "a claim, then more; and done."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_CollapsesBlankLineRuns(t *testing.T) {
	got := Normalize("first paragraph\n\n\n\nsecond paragraph")
	want := "first paragraph\n\nsecond paragraph"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestNormalize_PreservesSingleParagraphBreak(t *testing.T) {
	got := Normalize("one\n\ntwo")
	if got != "one\n\ntwo" {
		t.Errorf("paragraph break should survive, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"too   many\t spaces andMissing breaks , every-\nwhere .\n\n\n\nNext para",
		"already clean text.\n\nsecond paragraph.",
		"hyphen at upper-\nCase stays",
		"",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("not idempotent for %q:\n once: %q\ntwice: %q", in, once, twice)
		}
	}
}
