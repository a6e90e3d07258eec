package segment

import (
	"github.com/tsawler/pastpaper/model"
)

// MSSegmenter links each question to its mark scheme pages. Table
// layouts drift badly across template generations, so the question
// column band derived here is advisory evidence only: rows are
// collected wherever their leading integer belongs to the
// authoritative set, and a single page legitimately belongs to more
// than one question's span.
type MSSegmenter struct {
	profile SubjectProfile
}

// MSResult is the outcome of mark scheme segmentation.
type MSResult struct {
	// Spans maps question number to its mark scheme span. Questions
	// with no rows found have no entry.
	Spans map[int]*model.QuestionSpan

	// HeaderPage is the detected (or assumed) table header page index
	HeaderPage int

	// HeaderFound reports whether a table header was actually detected
	HeaderFound bool

	// ColumnBand is the question-column acceptance band, retained as
	// auxiliary evidence; it never gates row collection
	ColumnBand Band
}

// NewMSSegmenter creates a segmenter with the default subject profile.
func NewMSSegmenter() *MSSegmenter {
	return NewMSSegmenterWithProfile(DefaultSubjectProfile())
}

// NewMSSegmenterWithProfile creates a segmenter with a custom profile.
func NewMSSegmenterWithProfile(profile SubjectProfile) *MSSegmenter {
	return &MSSegmenter{profile: profile}
}

// Segment finds the mark scheme span for every question with at least
// one table row. Detection failures degrade silently to the profile's
// fallback header page and column band.
func (s *MSSegmenter) Segment(ms *model.Document, set *model.QuestionSet) *MSResult {
	result := &MSResult{
		Spans:      make(map[int]*model.QuestionSpan),
		HeaderPage: s.profile.MSFallbackHeaderPage,
		ColumnBand: s.profile.MSFallbackColumnBand,
	}
	if ms.PageCount() == 0 {
		return result
	}

	lines := make([][]pageLine, ms.PageCount())
	for i := range ms.Pages {
		lines[i] = pageLines(&ms.Pages[i], s.profile.LineConfig, nil)
	}

	// Header detection: first page whose text reads like a
	// question/answer/marks table header
	for i := range ms.Pages {
		if hasTableHeader(ms.Pages[i].Text()) {
			result.HeaderPage = i
			result.HeaderFound = true
			break
		}
	}

	result.ColumnBand = s.deriveColumnBand(ms, lines, set, result.HeaderPage)

	// Row collection from the header page onward; first page with a
	// row for a question starts its span
	firstRow := make(map[int]int)
	rowEvidence := make(map[int]string)
	for page := result.HeaderPage; page < len(lines); page++ {
		for _, pl := range lines[page] {
			q, ok := matchMSRow(pl.text)
			if !ok || !set.Contains(q) {
				continue
			}
			if _, seen := firstRow[q]; !seen {
				firstRow[q] = page
				rowEvidence[q] = pl.text
			}
		}
	}

	// Span assembly: forward search for this question's total marker
	for q, start := range firstRow {
		end, evidence := s.findTotalForward(lines, q, start)
		span := model.NewQuestionSpan(q, start, end)
		span.EvidenceStart = rowEvidence[q]
		span.EvidenceEnd = evidence
		result.Spans[q] = span
	}

	return result
}

// deriveColumnBand samples row-leading question number positions on
// the few pages after the header page, using the same median/MAD
// technique as question paper margin calibration.
func (s *MSSegmenter) deriveColumnBand(ms *model.Document, lines [][]pageLine, set *model.QuestionSet, headerPage int) Band {
	var samples []float64
	limit := headerPage + s.profile.MSHeaderSampleWindow
	for page := headerPage + 1; page <= limit && page < len(lines); page++ {
		for _, pl := range lines[page] {
			if !pl.positioned {
				continue
			}
			if q, ok := matchMSRow(pl.text); ok && set.Contains(q) {
				samples = append(samples, pl.relLeft)
			}
		}
	}
	return bandFromSamples(samples, s.profile.BandK, s.profile.BandMinHalfWidth, s.profile.MSFallbackColumnBand)
}

// findTotalForward searches page-by-page from the start page for a
// "Total for question N" marker with this exact question number. With
// no marker the span stays on its start page.
func (s *MSSegmenter) findTotalForward(lines [][]pageLine, q, start int) (endPage int, evidence string) {
	for page := start; page < len(lines); page++ {
		for _, pl := range lines[page] {
			if n, ok := matchMSTotal(pl.text); ok && n == q {
				return page, pl.text
			}
		}
	}
	return start, ""
}
