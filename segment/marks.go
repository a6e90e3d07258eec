package segment

import (
	"strings"

	"github.com/tsawler/pastpaper/model"
)

// MarksExtractor computes a question's mark total from its mark scheme
// pages: an explicit total line is authoritative; otherwise per-row
// trailing mark values are summed, with alternative-method ("or")
// blocks contributing their maximum once instead of the naive sum.
type MarksExtractor struct {
	profile   SubjectProfile
	blacklist map[string]bool
}

// NewMarksExtractor creates an extractor with the default profile.
func NewMarksExtractor() *MarksExtractor {
	return NewMarksExtractorWithProfile(DefaultSubjectProfile())
}

// NewMarksExtractorWithProfile creates an extractor with a custom
// profile.
func NewMarksExtractorWithProfile(profile SubjectProfile) *MarksExtractor {
	blacklist := make(map[string]bool, len(profile.MarkCodeBlacklist))
	for _, token := range profile.MarkCodeBlacklist {
		blacklist[strings.ToLower(token)] = true
	}
	return &MarksExtractor{profile: profile, blacklist: blacklist}
}

// Compute extracts the mark total for question q across the given mark
// scheme page indices.
func (e *MarksExtractor) Compute(ms *model.Document, q int, pages []int) model.MarksComputation {
	comp := model.MarksComputation{Question: q, Mode: model.MarksNoPages}
	if len(pages) == 0 {
		return comp
	}

	var spanLines []string
	for _, idx := range pages {
		page := ms.Page(idx)
		if page == nil {
			continue
		}
		for _, pl := range pageLines(page, e.profile.LineConfig, nil) {
			spanLines = append(spanLines, pl.text)
		}
	}

	// Explicit total is authoritative; skip summation entirely
	for _, line := range spanLines {
		if n, m, ok := matchTotals(line); ok && n == q {
			total := m
			comp.SumFromRows = &total
			comp.Mode = model.MarksExplicitTotal
			return comp
		}
	}

	// Span pages are legitimately shared with neighboring questions;
	// window summation to this question's own rows
	total, summed := e.sumRows(windowLines(spanLines, q))
	if summed {
		comp.SumFromRows = &total
		comp.Mode = model.MarksSummed
	}
	return comp
}

// windowLines trims the span's lines to question q's portion: from its
// first table row through its "Total for question" marker. With no row
// marker the whole span is kept.
func windowLines(lines []string, q int) []string {
	start := 0
	for i, line := range lines {
		if n, ok := matchMSRow(line); ok && n == q {
			start = i
			break
		}
	}
	end := len(lines)
	for i := start; i < len(lines); i++ {
		if n, ok := matchMSTotal(lines[i]); ok && n == q {
			end = i
			break
		}
	}
	return lines[start:end]
}

// sumRows sums per-line trailing mark values. A line opening with
// "or"/"alternatively"/"either" folds the preceding row and every
// following alternative into one block whose maximum is added once;
// the block closes at the next unrelated valued row or at span end.
func (e *MarksExtractor) sumRows(lines []string) (total int, summed bool) {
	inBlock := false
	blockMax := 0
	lastValue := 0
	lastValid := false

	for _, line := range lines {
		if e.isNoise(line) {
			continue
		}
		if _, ok := matchMSTotal(line); ok {
			// Total rows carry a trailing number that is not a row mark
			lastValid = false
			continue
		}

		value, hasValue := trailingInt(line)

		if isOrMarker(line) {
			if !inBlock {
				inBlock = true
				blockMax = 0
				if lastValid {
					// The row before the first "or" is the first
					// alternative; pull it back out of the sum
					total -= lastValue
					blockMax = lastValue
				}
			}
			if hasValue && value > blockMax {
				blockMax = value
			}
			lastValid = false
			continue
		}

		if inBlock {
			total += blockMax
			summed = true
			inBlock = false
			blockMax = 0
		}

		if hasValue {
			total += value
			summed = true
			lastValue = value
			lastValid = true
		} else {
			lastValid = false
		}
	}

	if inBlock {
		total += blockMax
		summed = true
	}

	return total, summed
}

// isNoise reports whether a line contains a blacklisted mark-code
// token and must be skipped during summation.
func (e *MarksExtractor) isNoise(line string) bool {
	for _, token := range strings.Fields(strings.ToLower(line)) {
		token = strings.Trim(token, "().,;:")
		if e.blacklist[token] {
			return true
		}
	}
	return false
}
