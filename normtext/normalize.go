package normtext

import (
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// glyphMap folds visually-equivalent glyphs to one canonical ASCII
// form. Ligatures (ﬁ, ﬂ, …) are handled separately by NFKC folding.
var glyphMap = map[rune]rune{
	'‐': '-', // hyphen
	'‑': '-', // non-breaking hyphen
	'‒': '-', // figure dash
	'–': '-', // en dash
	'—': '-', // em dash
	'―': '-', // horizontal bar
	'−': '-', // minus sign
	'×': 'x', // multiplication sign
	'‘': '\'',
	'’': '\'',
	'‚': '\'',
	'“': '"',
	'”': '"',
	'„': '"',
	' ': ' ', // no-break space
	' ': ' ', // figure space
	' ': ' ', // thin space
	' ': ' ', // narrow no-break space
}

// glyphTransformer folds ligatures via NFKC and then applies the fixed
// substitution table. Built once; transformers are stateless here so
// reuse is safe.
var glyphTransformer = transform.Chain(
	norm.NFKC,
	runes.Map(func(r rune) rune {
		if repl, ok := glyphMap[r]; ok {
			return repl
		}
		return r
	}),
)

// phraseRepair is a targeted fuzzy repair for one anchor phrase,
// tolerating single-character OCR corruption (digit-for-letter
// confusion) via explicit character classes rather than general fuzzy
// matching.
type phraseRepair struct {
	pattern     *regexp.Regexp
	replacement string
}

var phraseRepairs = []phraseRepair{
	// "Total for Question" with 0/O, 1/l/I, 5/S, 8/B confusions
	{
		pattern:     regexp.MustCompile(`(?i)\bT[o0]t[a4][l1i|!] +f[o0]r +[qQ0O]ue[s5]t[i1l|!][o0]n\b`),
		replacement: "Total for Question",
	},
	// "Question number" (mark scheme table header cell)
	{
		pattern:     regexp.MustCompile(`(?i)\b[qQ0O]ue[s5]t[i1l|!][o0]n +num[bd8]er\b`),
		replacement: "Question number",
	},
}

var (
	hyphenWrapRe = regexp.MustCompile(`([a-z])-\n([a-z])`)
	spaceRunRe   = regexp.MustCompile(`[ \t]+`)
)

// Normalize canonicalizes extracted page text. It folds glyph
// variants, repairs the anchor phrases, de-hyphenates line-wrapped
// words, collapses runs of spaces and tabs to a single space, and
// removes blank lines. The count of non-blank lines is never altered.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	folded, _, err := transform.String(glyphTransformer, text)
	if err != nil {
		// Invalid UTF-8 somewhere in the OCR layer; fall back to the
		// raw text so matching still sees something.
		folded = text
	}

	for _, repair := range phraseRepairs {
		folded = repair.pattern.ReplaceAllString(folded, repair.replacement)
	}

	folded = hyphenWrapRe.ReplaceAllString(folded, "$1$2")
	folded = spaceRunRe.ReplaceAllString(folded, " ")

	// Drop blank lines, trim edge whitespace on the survivors
	lines := strings.Split(folded, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		kept = append(kept, trimmed)
	}

	return strings.Join(kept, "\n")
}
