package segment

import (
	"fmt"
	"sort"

	"github.com/tsawler/pastpaper/model"
)

// Checker runs the global invariant checks over the assembled question
// set and produces the per-paper validation report. All findings are
// warnings except an empty question paper span, which is fatal for the
// paper.
type Checker struct{}

// NewChecker creates a consistency checker.
func NewChecker() *Checker {
	return &Checker{}
}

// Check validates spans and marks against the authoritative set. The
// report lists issues in deterministic order: sequence checks first,
// then overlap checks, then per-question checks ascending. A non-nil
// error (ErrEmptySpan) means the paper must be aborted; the report is
// still returned with the fatal issue recorded.
func (c *Checker) Check(qpSpans, msSpans map[int]*model.QuestionSpan, marks map[int]model.MarksComputation, set *model.QuestionSet) (*model.ValidationReport, error) {
	report := &model.ValidationReport{}
	numbers := set.Numbers()

	// (a) the found set should be {1..max} with no gaps
	c.checkSequence(report, numbers)

	// (b) QP spans may only touch at a shared boundary page
	c.checkOverlap(report, qpSpans, numbers)

	var fatal error
	for _, q := range numbers {
		// (c) a question with zero QP pages cannot be used downstream
		qpSpan := qpSpans[q]
		if qpSpan == nil || len(qpSpan.Pages) == 0 {
			report.Add(model.SeverityFatal, fmt.Sprintf("question %d: empty question paper span", q))
			if fatal == nil {
				fatal = fmt.Errorf("question %d: %w", q, ErrEmptySpan)
			}
			continue
		}

		// (d) a missing MS span is survivable; some questions have no
		// markable content
		if span := msSpans[q]; span == nil || len(span.Pages) == 0 {
			report.Add(model.SeverityWarning, fmt.Sprintf("question %d: no mark scheme pages found", q))
		}

		// (e) both mark signals are noisy, so a mismatch is never fatal
		c.checkMarks(report, q, set, marks)
	}

	return report, fatal
}

// checkSequence warns about gaps relative to {1..max}. The set is
// already deduplicated and sorted, so a gap is the only observable
// sequence defect; legitimate papers occasionally skip a number, so
// gaps stay warnings.
func (c *Checker) checkSequence(report *model.ValidationReport, numbers []int) {
	if len(numbers) == 0 {
		return
	}
	max := numbers[len(numbers)-1]

	present := make(map[int]bool, len(numbers))
	for _, q := range numbers {
		present[q] = true
	}
	for q := 1; q <= max; q++ {
		if !present[q] {
			report.Add(model.SeverityWarning, fmt.Sprintf("question %d: missing from sequence 1..%d", q, max))
		}
	}
}

// checkOverlap warns when two QP spans share more than a boundary
// page.
func (c *Checker) checkOverlap(report *model.ValidationReport, qpSpans map[int]*model.QuestionSpan, numbers []int) {
	var spans []*model.QuestionSpan
	for _, q := range numbers {
		if s := qpSpans[q]; s != nil {
			spans = append(spans, s)
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].StartPage != spans[j].StartPage {
			return spans[i].StartPage < spans[j].StartPage
		}
		return spans[i].Question < spans[j].Question
	})

	for i := 1; i < len(spans); i++ {
		prev, cur := spans[i-1], spans[i]
		if cur.StartPage < prev.EndPage {
			report.Add(model.SeverityWarning, fmt.Sprintf(
				"question %d: span overlaps question %d beyond a shared boundary (pages %d-%d vs %d-%d)",
				cur.Question, prev.Question, cur.StartPage, cur.EndPage, prev.StartPage, prev.EndPage))
		}
	}
}

// checkMarks cross-checks the QP-declared total against the MS
// computation.
func (c *Checker) checkMarks(report *model.ValidationReport, q int, set *model.QuestionSet, marks map[int]model.MarksComputation) {
	declared, hasDeclared := set.DeclaredMarks(q)
	comp, hasComp := marks[q]
	if !hasDeclared || !hasComp || comp.SumFromRows == nil {
		return
	}
	if *comp.SumFromRows != declared {
		report.Add(model.SeverityWarning, fmt.Sprintf(
			"question %d: declared total %d disagrees with mark scheme %s total %d",
			q, declared, comp.Mode, *comp.SumFromRows))
	}
}
