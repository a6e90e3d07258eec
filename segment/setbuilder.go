package segment

import (
	"github.com/tsawler/pastpaper/layout"
	"github.com/tsawler/pastpaper/model"
)

// SetBuilder establishes the authoritative question-number set for a
// paper, the single source of truth every later stage is gated
// against.
type SetBuilder struct {
	profile  SubjectProfile
	scrubber *layout.Scrubber
}

// NewSetBuilder creates a builder with the default subject profile.
func NewSetBuilder() *SetBuilder {
	return NewSetBuilderWithProfile(DefaultSubjectProfile())
}

// NewSetBuilderWithProfile creates a builder with a custom profile.
func NewSetBuilderWithProfile(profile SubjectProfile) *SetBuilder {
	return &SetBuilder{
		profile:  profile,
		scrubber: layout.NewScrubberWithPatterns(profile.BoilerplatePatterns),
	}
}

// Build derives the question-number set. The primary signal is the
// "(Total for Question N = M marks)" marker scanned across every
// question paper page; the matched M is retained as that question's
// declared marks. When the question paper yields nothing (non-standard
// template), the mark scheme's row-leading question numbers are used
// instead, with no declared marks. Fallback rows are scanned from the
// table header page onward and, when word positions are available,
// gated to the question column, so cover-sheet dates and bare page
// numbers never enter the set. ErrNoQuestionNumbers is returned only
// when both signals are empty.
func (b *SetBuilder) Build(qp, ms *model.Document) (*model.QuestionSet, error) {
	var numbers []int
	marks := make(map[int]int)

	for i := range qp.Pages {
		for _, line := range pageLines(&qp.Pages[i], b.profile.LineConfig, b.scrubber) {
			q, m, ok := matchTotals(line.text)
			if !ok {
				continue
			}
			numbers = append(numbers, q)
			if _, seen := marks[q]; !seen {
				marks[q] = m
			}
		}
	}

	if len(numbers) > 0 {
		return model.NewQuestionSet(numbers, marks), nil
	}

	// Fallback: mark scheme row markers in the left column, starting
	// at the table header page so cover-sheet text is never scanned
	headerPage := 0
	for i := range ms.Pages {
		if hasTableHeader(ms.Pages[i].Text()) {
			headerPage = i
			break
		}
	}

	type rowCandidate struct {
		q    int
		line pageLine
	}
	var rows []rowCandidate
	for i := headerPage; i < len(ms.Pages); i++ {
		for _, line := range pageLines(&ms.Pages[i], b.profile.LineConfig, nil) {
			if q, ok := matchMSRow(line.text); ok {
				rows = append(rows, rowCandidate{q: q, line: line})
			}
		}
	}

	// Positioned candidates are gated to the question column; the band
	// is calibrated from the candidates themselves, so a handful of
	// stray numbers elsewhere on the page are rejected as outliers
	var samples []float64
	for _, row := range rows {
		if row.line.positioned {
			samples = append(samples, row.line.relLeft)
		}
	}
	band := bandFromSamples(samples, b.profile.BandK, b.profile.BandMinHalfWidth, b.profile.MSFallbackColumnBand)

	for _, row := range rows {
		if row.line.positioned && !band.Contains(row.line.relLeft) {
			continue
		}
		numbers = append(numbers, row.q)
	}

	if len(numbers) == 0 {
		return nil, ErrNoQuestionNumbers
	}

	return model.NewQuestionSet(numbers, nil), nil
}
