package segment

import (
	"fmt"

	"github.com/tsawler/pastpaper/layout"
	"github.com/tsawler/pastpaper/model"
)

// QPSegmenter locates each authoritative question's page span in the
// question paper: start page via margin-calibrated start lines, end
// page via the declared-totals marker, with backward recovery and
// boundary clamping when either anchor is missing.
type QPSegmenter struct {
	profile  SubjectProfile
	scrubber *layout.Scrubber
}

// NewQPSegmenter creates a segmenter with the default subject profile.
func NewQPSegmenter() *QPSegmenter {
	return NewQPSegmenterWithProfile(DefaultSubjectProfile())
}

// NewQPSegmenterWithProfile creates a segmenter with a custom profile.
func NewQPSegmenterWithProfile(profile SubjectProfile) *QPSegmenter {
	return &QPSegmenter{
		profile:  profile,
		scrubber: layout.NewScrubberWithPatterns(profile.BoilerplatePatterns),
	}
}

// Segment finds the page span for every question in the set. Every
// recovery fallback taken is recorded as a warning issue alongside the
// spans.
func (s *QPSegmenter) Segment(qp *model.Document, set *model.QuestionSet) (map[int]*model.QuestionSpan, []model.Issue) {
	lastPage := qp.PageCount() - 1
	if lastPage < 0 {
		return map[int]*model.QuestionSpan{}, nil
	}

	lines := make([][]pageLine, qp.PageCount())
	for i := range qp.Pages {
		lines[i] = pageLines(&qp.Pages[i], s.profile.LineConfig, s.scrubber)
	}

	band := s.calibrate(lines, set)

	starts := make(map[int]int)
	startEvidence := make(map[int]string)
	ends := make(map[int]int)
	endEvidence := make(map[int]string)
	var issues []model.Issue

	// Start detection: first page wins; ties on one page resolve by
	// line order
	for page, pls := range lines {
		for _, pl := range pls {
			q, ok := matchStart(pl.text)
			if !ok || !set.Contains(q) {
				continue
			}
			if _, seen := starts[q]; seen {
				continue
			}
			if pl.positioned && !band.Contains(pl.relLeft) {
				continue
			}
			starts[q] = page
			startEvidence[q] = pl.text
		}
	}

	// End detection via declared-totals markers
	for page, pls := range lines {
		for _, pl := range pls {
			q, _, ok := matchTotals(pl.text)
			if !ok || !set.Contains(q) {
				continue
			}
			if _, seen := ends[q]; seen {
				continue
			}
			ends[q] = page
			endEvidence[q] = pl.text
		}
	}

	// Recovery: a question with an end but no start
	numbers := set.Numbers()
	for i, q := range numbers {
		if _, ok := starts[q]; ok {
			continue
		}
		end, ok := ends[q]
		if !ok {
			continue
		}

		if page, evidence, found := s.searchBackward(lines, q, end); found {
			starts[q] = page
			startEvidence[q] = evidence
			issues = append(issues, warning("question %d: start recovered from bare line on page %d", q, page))
			continue
		}

		// Fall back to the page after the previous question's end
		prevEnd := -1
		if i > 0 {
			if e, ok := ends[numbers[i-1]]; ok {
				prevEnd = e
			}
		}
		start := prevEnd + 1
		if start < 0 {
			start = 0
		}
		if start > end {
			start = end
		}
		starts[q] = start
		startEvidence[q] = ""
		issues = append(issues, warning("question %d: start not found; assuming page %d after previous question", q, start))
	}

	// Continuation markers extend ends
	for page, pls := range lines {
		for _, pl := range pls {
			q, ok := matchContinued(pl.text)
			if !ok || !set.Contains(q) {
				continue
			}
			if end, seen := ends[q]; !seen || page > end {
				ends[q] = page
				endEvidence[q] = pl.text
			}
		}
	}

	// Clamping and assembly
	spans := make(map[int]*model.QuestionSpan, len(numbers))
	for i, q := range numbers {
		end, hasEnd := ends[q]
		if !hasEnd {
			end = lastPage
			issues = append(issues, warning("question %d: no totals marker found; defaulting end to last page", q))
		}

		start, hasStart := starts[q]
		if !hasStart {
			start = end
			issues = append(issues, warning("question %d: start never found; defaulting to end page %d", q, end))
		}

		// The next question's start bounds this question's end
		if i+1 < len(numbers) {
			if nextStart, ok := starts[numbers[i+1]]; ok && end > nextStart-1 {
				end = nextStart - 1
			}
		}

		var span *model.QuestionSpan
		if end < start {
			// Clamping exhausted the span; the empty page list routes
			// this question to the checker's fatal path
			span = &model.QuestionSpan{Question: q, StartPage: start, EndPage: end}
		} else {
			span = model.NewQuestionSpan(q, start, end)
		}
		if m, ok := set.DeclaredMarks(q); ok {
			declared := m
			span.MarksDeclared = &declared
		}
		span.EvidenceStart = startEvidence[q]
		span.EvidenceEnd = endEvidence[q]
		spans[q] = span
	}

	return spans, issues
}

// calibrate derives the left-margin acceptance band from the relative
// x-positions of candidate start lines whose leading integer is in the
// authoritative set.
func (s *QPSegmenter) calibrate(lines [][]pageLine, set *model.QuestionSet) Band {
	var samples []float64
	for _, pls := range lines {
		for _, pl := range pls {
			if !pl.positioned {
				continue
			}
			if q, ok := matchStart(pl.text); ok && set.Contains(q) {
				samples = append(samples, pl.relLeft)
			}
		}
	}
	return bandFromSamples(samples, s.profile.BandK, s.profile.BandMinHalfWidth, s.profile.QPFallbackBand)
}

// searchBackward looks up to RecoveryLookback pages backward from the
// end page for a bare "N " line opening question q.
func (s *QPSegmenter) searchBackward(lines [][]pageLine, q, endPage int) (page int, evidence string, found bool) {
	lowest := endPage - s.profile.RecoveryLookback
	if lowest < 0 {
		lowest = 0
	}
	for page := endPage; page >= lowest; page-- {
		for _, pl := range lines[page] {
			if n, ok := matchBareStart(pl.text); ok && n == q {
				return page, pl.text, true
			}
		}
	}
	return 0, "", false
}

// warning builds a warning-severity issue.
func warning(format string, args ...interface{}) model.Issue {
	return model.Issue{
		Severity: model.SeverityWarning,
		Message:  fmt.Sprintf(format, args...),
	}
}
