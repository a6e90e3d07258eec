package pastpaper

import (
	"fmt"
	"strings"

	"github.com/tsawler/pastpaper/layout"
	"github.com/tsawler/pastpaper/model"
	"github.com/tsawler/pastpaper/normtext"
	"github.com/tsawler/pastpaper/segment"
)

// Process runs the full segmentation pipeline for the paper:
// normalization, scrubbing (question paper only), question-set
// building, QP and MS segmentation, marks extraction, and consistency
// checking. Processing is deterministic: identical input pages yield
// identical results.
//
// A non-nil error means the paper could not be segmented
// (segment.ErrNoQuestionNumbers or segment.ErrEmptySpan); the partial
// Result still carries the report. All other inconsistencies are
// recorded as warnings in the report and processing continues with
// best-effort spans.
func (p *Paper) Process() (*Result, error) {
	profile := p.options.profile
	scrubber := layout.NewScrubberWithPatterns(profile.BoilerplatePatterns)

	qpDoc := prepareDocument(model.KindQuestionPaper, p.qpPages, scrubber)
	msDoc := prepareDocument(model.KindMarkScheme, p.msPages, nil)

	set, err := segment.NewSetBuilderWithProfile(profile).Build(qpDoc, msDoc)
	if err != nil {
		return &Result{Report: &model.ValidationReport{}}, err
	}

	qpSpans, segIssues := segment.NewQPSegmenterWithProfile(profile).Segment(qpDoc, set)
	msResult := segment.NewMSSegmenterWithProfile(profile).Segment(msDoc, set)

	extractor := segment.NewMarksExtractorWithProfile(profile)
	marks := make(map[int]model.MarksComputation, set.Len())
	for _, q := range set.Numbers() {
		var pages []int
		if span := msResult.Spans[q]; span != nil {
			pages = span.Pages
		}
		marks[q] = extractor.Compute(msDoc, q, pages)
	}

	checkReport, fatal := segment.NewChecker().Check(qpSpans, msResult.Spans, marks, set)

	// Segmentation fallback warnings come first, then checker findings
	report := &model.ValidationReport{}
	report.Issues = append(report.Issues, segIssues...)
	report.Issues = append(report.Issues, checkReport.Issues...)

	result := &Result{Report: report, Set: set}
	if fatal != nil {
		return result, fatal
	}

	result.Records = assembleRecords(set, qpSpans, msResult.Spans, marks, report)
	return result, nil
}

// prepareDocument normalizes every page and, for question papers,
// scrubs boilerplate lines. Raw text is never modified.
func prepareDocument(kind model.DocumentKind, pages []model.Page, scrubber *layout.Scrubber) *model.Document {
	prepared := make([]model.Page, len(pages))
	for i, page := range pages {
		page.Index = i
		page.NormalizedText = normtext.Normalize(page.RawText)
		if scrubber != nil {
			page.ScrubbedText = scrubber.Scrub(page.NormalizedText)
		}
		prepared[i] = page
	}
	return model.NewDocument(kind, prepared)
}

// assembleRecords merges each question's QP span, MS span, and marks
// computation into the final output records, ascending by question
// number.
func assembleRecords(set *model.QuestionSet, qpSpans, msSpans map[int]*model.QuestionSpan, marks map[int]model.MarksComputation, report *model.ValidationReport) []model.QuestionRecord {
	records := make([]model.QuestionRecord, 0, set.Len())
	for _, q := range set.Numbers() {
		qpSpan := qpSpans[q]
		if qpSpan == nil {
			continue
		}

		rec := model.QuestionRecord{
			Question:      q,
			QPPages:       qpSpan.Pages,
			MarksQP:       qpSpan.MarksDeclared,
			EvidenceStart: qpSpan.EvidenceStart,
			EvidenceEnd:   qpSpan.EvidenceEnd,
			Issues:        issuesForQuestion(report, q),
		}
		if msSpan := msSpans[q]; msSpan != nil {
			rec.MSPages = msSpan.Pages
		}
		if comp, ok := marks[q]; ok {
			rec.MarksMS = comp.SumFromRows
		}
		records = append(records, rec)
	}
	return records
}

// issuesForQuestion filters the report down to issues mentioning one
// question. Issue messages follow the "question N: ..." convention.
func issuesForQuestion(report *model.ValidationReport, q int) []model.Issue {
	prefix := fmt.Sprintf("question %d:", q)
	var out []model.Issue
	for _, issue := range report.Issues {
		if strings.HasPrefix(issue.Message, prefix) {
			out = append(out, issue)
		}
	}
	return out
}
