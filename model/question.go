package model

import "sort"

// QuestionSet is the authoritative set of question numbers for one
// paper, with the declared mark total for each question where the
// question paper printed one. Built once per paper; immutable after.
type QuestionSet struct {
	numbers []int
	marks   map[int]int
}

// NewQuestionSet builds a set from question numbers and an optional
// map of declared marks. Duplicates are collapsed; numbers are kept
// sorted ascending.
func NewQuestionSet(numbers []int, marks map[int]int) *QuestionSet {
	seen := make(map[int]bool, len(numbers))
	var uniq []int
	for _, n := range numbers {
		if !seen[n] {
			seen[n] = true
			uniq = append(uniq, n)
		}
	}
	sort.Ints(uniq)

	m := make(map[int]int, len(marks))
	for q, v := range marks {
		m[q] = v
	}

	return &QuestionSet{numbers: uniq, marks: m}
}

// Numbers returns the question numbers in ascending order. The
// returned slice is a copy.
func (s *QuestionSet) Numbers() []int {
	if s == nil {
		return nil
	}
	out := make([]int, len(s.numbers))
	copy(out, s.numbers)
	return out
}

// Contains reports whether q is in the set.
func (s *QuestionSet) Contains(q int) bool {
	if s == nil {
		return false
	}
	for _, n := range s.numbers {
		if n == q {
			return true
		}
	}
	return false
}

// Len returns the number of questions in the set.
func (s *QuestionSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.numbers)
}

// Max returns the largest question number, or 0 for an empty set.
func (s *QuestionSet) Max() int {
	if s == nil || len(s.numbers) == 0 {
		return 0
	}
	return s.numbers[len(s.numbers)-1]
}

// DeclaredMarks returns the mark total the question paper declared for
// q, if any.
func (s *QuestionSet) DeclaredMarks(q int) (int, bool) {
	if s == nil {
		return 0, false
	}
	m, ok := s.marks[q]
	return m, ok
}

// QuestionSpan is the page range attributed to one question number in
// one document. QP and MS spans are separate instances keyed by the
// same question number.
type QuestionSpan struct {
	// Question is the question number this span belongs to
	Question int

	// StartPage is the first page of the span (0-based)
	StartPage int

	// EndPage is the last page of the span, inclusive
	EndPage int

	// Pages is the closed integer range [StartPage, EndPage]
	Pages []int

	// MarksDeclared is the mark total printed on the question paper
	// for this question, when one was found
	MarksDeclared *int

	// EvidenceStart is the line that established the start page
	EvidenceStart string

	// EvidenceEnd is the line that established the end page
	EvidenceEnd string
}

// NewQuestionSpan creates a span for question q covering the inclusive
// page range [start, end]. If end < start, end is raised to start.
func NewQuestionSpan(q, start, end int) *QuestionSpan {
	if end < start {
		end = start
	}
	span := &QuestionSpan{
		Question:  q,
		StartPage: start,
		EndPage:   end,
	}
	span.rebuildPages()
	return span
}

// SetRange updates the span's page range and rebuilds Pages.
func (s *QuestionSpan) SetRange(start, end int) {
	if end < start {
		end = start
	}
	s.StartPage = start
	s.EndPage = end
	s.rebuildPages()
}

func (s *QuestionSpan) rebuildPages() {
	s.Pages = make([]int, 0, s.EndPage-s.StartPage+1)
	for p := s.StartPage; p <= s.EndPage; p++ {
		s.Pages = append(s.Pages, p)
	}
}

// ContainsPage reports whether the span includes the page index.
func (s *QuestionSpan) ContainsPage(page int) bool {
	if s == nil {
		return false
	}
	return page >= s.StartPage && page <= s.EndPage
}

// MarksMode describes how a marks computation was obtained.
type MarksMode int

const (
	// MarksNoPages means the span was empty and nothing was summed
	MarksNoPages MarksMode = iota

	// MarksSummed means per-row mark values were summed
	MarksSummed

	// MarksExplicitTotal means an explicit total line was found and
	// used verbatim
	MarksExplicitTotal
)

// String returns a string representation of the mode.
func (m MarksMode) String() string {
	switch m {
	case MarksExplicitTotal:
		return "explicit_total"
	case MarksSummed:
		return "summed"
	default:
		return "no_pages"
	}
}

// MarksComputation is the result of extracting a question's mark total
// from its mark-scheme pages.
type MarksComputation struct {
	// Question is the question number
	Question int

	// SumFromRows is the extracted total, absent when no pages or no
	// numeric rows were available
	SumFromRows *int

	// Mode records how the total was obtained
	Mode MarksMode
}
