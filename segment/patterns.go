package segment

import (
	"regexp"
	"strconv"
	"strings"
)

// The anchor patterns shared across segmentation stages. All matching
// runs over normalized text, so whitespace is already collapsed and
// the anchor phrases repaired; the patterns stay tolerant of the
// punctuation drift that survives normalization (optional parentheses,
// "=" vs ":" vs nothing, "mark" vs "marks").
var (
	// "(Total for Question 3 = 7 marks)" and its variants
	totalsRe = regexp.MustCompile(`(?i)\(?\s*total for question\s+(\d{1,2})\s*[=:-]?\s*(\d{1,3})\s*marks?\s*\)?`)

	// "Total for question 7" without a marks tail, as printed in mark
	// scheme table footer rows
	msTotalRe = regexp.MustCompile(`(?i)total for question\s+(\d{1,2})\b`)

	// question start: leading integer, space, then uppercase or "("
	startRe = regexp.MustCompile(`^(\d{1,2}) [A-Z(]`)

	// bare start used during backward recovery
	bareStartRe = regexp.MustCompile(`^(\d{1,2}) `)

	// "Question 4 continued" overflow marker
	continuedRe = regexp.MustCompile(`(?i)\bquestion\s+(\d{1,2})\s+continued\b`)

	// mark scheme row: integer, optional parenthesized or bare
	// sub-part letter or roman numeral
	msRowRe = regexp.MustCompile(`^(\d{1,2})(?:\s*\(?\s*(?:[a-hj-z]|[ivx]{1,4})\s*\)?)?(?:\s|$)`)

	// trailing mark value at the end of a row, possibly parenthesized
	trailingIntRe = regexp.MustCompile(`\((\d{1,3})\)\s*$|\b(\d{1,3})\s*$`)

	// alternative-method block opener
	orMarkerRe = regexp.MustCompile(`(?i)^(?:or|alternatively|either)\b`)
)

// matchTotals returns the question number and declared marks from a
// totals line, if the text matches.
func matchTotals(line string) (q, marks int, ok bool) {
	m := totalsRe.FindStringSubmatch(line)
	if m == nil {
		return 0, 0, false
	}
	q, err1 := strconv.Atoi(m[1])
	marks, err2 := strconv.Atoi(m[2])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return q, marks, true
}

// matchMSTotal returns the question number from a mark scheme "Total
// for question N" line, with or without a marks tail.
func matchMSTotal(line string) (q int, ok bool) {
	m := msTotalRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	q, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return q, true
}

// matchStart returns the leading question number of a start line.
func matchStart(line string) (q int, ok bool) {
	m := startRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	q, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return q, true
}

// matchBareStart returns the leading integer of a bare "N " line.
func matchBareStart(line string) (q int, ok bool) {
	m := bareStartRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	q, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return q, true
}

// matchContinued returns the question number of a "Question N
// continued" line.
func matchContinued(line string) (q int, ok bool) {
	m := continuedRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	q, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return q, true
}

// matchMSRow returns the row-leading question number of a mark scheme
// table row.
func matchMSRow(line string) (q int, ok bool) {
	m := msRowRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	q, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return q, true
}

// trailingInt returns the mark value at the end of a row, if any.
func trailingInt(line string) (v int, ok bool) {
	m := trailingIntRe.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	v, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return v, true
}

// isOrMarker reports whether the line opens an alternative-method
// block.
func isOrMarker(line string) bool {
	return orMarkerRe.MatchString(line)
}

// hasTableHeader reports whether the text contains a mark scheme table
// header: "question" followed by "answer" or "scheme" followed by
// "marks", in that rough order.
func hasTableHeader(text string) bool {
	lower := strings.ToLower(text)

	qi := strings.Index(lower, "question")
	if qi < 0 {
		return false
	}
	rest := lower[qi+len("question"):]

	ai := strings.Index(rest, "answer")
	si := strings.Index(rest, "scheme")
	mid := ai
	midLen := len("answer")
	if mid < 0 || (si >= 0 && si < mid) {
		mid = si
		midLen = len("scheme")
	}
	if mid < 0 {
		return false
	}

	return strings.Contains(rest[mid+midLen:], "marks")
}
