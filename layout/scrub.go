package layout

import (
	"regexp"
	"strings"
)

// Scrubber removes boilerplate lines from question paper text before
// pattern matching. It filters whole lines only, never reordering or
// merging, so line-based position matching downstream stays valid.
//
// The mark scheme is deliberately never scrubbed: its question-number
// rows can visually resemble boilerplate (a bare integer at the left
// margin) and must survive for row collection.
type Scrubber struct {
	patterns []*regexp.Regexp
}

// DefaultBoilerplatePatterns returns the boilerplate line patterns
// seen across exam board templates: bare page numbers, vendor and
// copyright lines, bracketed print codes, instruction lines, and
// turn-over / blank-page furniture.
func DefaultBoilerplatePatterns() []string {
	return []string{
		`^\d{1,3}$`,                 // bare page number
		`^- ?\d{1,3} ?-$`,           // "- 3 -"
		`(?i)^page \d+( of \d+)?$`,  // "Page 3 of 12"
		`©`,                         // copyright lines
		`(?i)pearson education`,
		`(?i)\bedexcel\b`,
		`(?i)\bocr\b.*(registered|charity)`,
		`(?i)\baqa\b.*(copyright|education)`,
		`(?i)cambridge (assessment|international)`,
		`^\*?[A-Z]\d{4,}[A-Z]?\d*\*?$`, // print codes like *P12345A0628*
		`^\[?[A-Z] ?\d( ?\d)+\]?$`,     // spaced print codes
		`(?i)do not write in this area`,
		`(?i)^turn over\.?$`,
		`(?i)blank page`,
	}
}

// NewScrubber creates a scrubber with the default pattern set.
func NewScrubber() *Scrubber {
	return NewScrubberWithPatterns(DefaultBoilerplatePatterns())
}

// NewScrubberWithPatterns creates a scrubber with a custom pattern
// set. Invalid patterns are skipped.
func NewScrubberWithPatterns(patterns []string) *Scrubber {
	s := &Scrubber{}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			continue
		}
		s.patterns = append(s.patterns, re)
	}
	return s
}

// Scrub returns the text with boilerplate lines removed.
func (s *Scrubber) Scrub(normalizedText string) string {
	if normalizedText == "" {
		return ""
	}

	lines := strings.Split(normalizedText, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if s.IsBoilerplate(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// IsBoilerplate reports whether a line matches any boilerplate pattern.
func (s *Scrubber) IsBoilerplate(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, re := range s.patterns {
		if re.MatchString(trimmed) {
			return true
		}
	}
	return false
}
