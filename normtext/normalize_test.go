package normtext

import (
	"strings"
	"testing"
)

func TestNormalize_GlyphFolding(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"en dash", "pages 3–7", "pages 3-7"},
		{"em dash", "wait—stop", "wait-stop"},
		{"minus sign", "−4", "-4"},
		{"multiplication sign", "3 × 4", "3 x 4"},
		{"smart quotes", "“quoted” text", `"quoted" text`},
		{"smart apostrophe", "it’s", "it's"},
		{"ligature fi", "ﬁnd the value", "find the value"},
		{"ligature fl", "reﬂection", "reflection"},
		{"no-break space", "Total\u00a0for", "Total for"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.input)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNormalize_FuzzyPhraseRepair(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Tota1 for Quest1on 5", "Total for Question 5"},
		{"Total f0r Question 3 = 7 marks", "Total for Question 3 = 7 marks"},
		{"TotaI for Questlon 2", "Total for Question 2"},
		{"Quest1on num8er", "Question number"},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Dehyphenation(t *testing.T) {
	got := Normalize("the equa-\ntion holds")
	want := "the equation holds"
	if got != want {
		t.Errorf("Normalize dehyphenation = %q, want %q", got, want)
	}
}

func TestNormalize_DehyphenationRequiresLowercase(t *testing.T) {
	// A genuine hyphenated range followed by a capitalized word must
	// survive the line break
	got := Normalize("part A-\nB follows")
	if !strings.Contains(got, "A-") {
		t.Errorf("Normalize removed a non-wrap hyphen: %q", got)
	}
}

func TestNormalize_WhitespaceCollapse(t *testing.T) {
	got := Normalize("1   Solve\tthe equation")
	want := "1 Solve the equation"
	if got != want {
		t.Errorf("Normalize(%q) = %q, want %q", "1   Solve\tthe equation", got, want)
	}
}

func TestNormalize_BlankLineCollapse(t *testing.T) {
	got := Normalize("line one\n\n\n   \nline two")
	want := "line one\nline two"
	if got != want {
		t.Errorf("Normalize blank lines = %q, want %q", got, want)
	}
}

func TestNormalize_PreservesNonBlankLineCount(t *testing.T) {
	input := "first line\nsecond line\nthird line"
	got := Normalize(input)
	if len(strings.Split(got, "\n")) != 3 {
		t.Errorf("Normalize altered non-blank line count: %q", got)
	}
}

func TestNormalize_Empty(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Normalize(\"\") = %q, want \"\"", got)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	input := "Tota1 for Quest1on 5  =  7 marks\nnext – line"
	first := Normalize(input)
	second := Normalize(input)
	if first != second {
		t.Errorf("Normalize not deterministic: %q vs %q", first, second)
	}
}
