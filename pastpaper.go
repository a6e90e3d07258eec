// Package pastpaper segments scanned examination papers. Given a
// question paper and its mark scheme, each already reduced to
// per-page text layers with word bounding boxes, it splits the
// question paper into one contiguous page span per question, links
// each question to its mark scheme pages, and validates the result
// against redundant signals (declared mark totals, sequential
// numbering, page coverage).
//
// Basic usage:
//
//	result, err := pastpaper.NewPaper(qpPages, msPages).Process()
//	if err != nil {
//	    // the paper could not be segmented at all
//	}
//	for _, rec := range result.Records {
//	    fmt.Printf("Q%d: QP pages %v, MS pages %v\n",
//	        rec.Question, rec.QPPages, rec.MSPages)
//	}
//
// With a subject-specific profile:
//
//	result, err := pastpaper.NewPaper(qpPages, msPages).
//	    WithProfile(profile).
//	    Process()
//
// Independent papers may be processed in parallel with ProcessBatch;
// all state is paper-local.
package pastpaper

import (
	"github.com/tsawler/pastpaper/model"
	"github.com/tsawler/pastpaper/segment"
)

// Paper is one (question paper, mark scheme) pair configured for
// processing.
type Paper struct {
	qpPages []model.Page
	msPages []model.Page
	options processOptions
}

// Result is the outcome of processing one paper.
type Result struct {
	// Records are the per-question outputs, ascending by question
	// number. Empty when processing aborted fatally.
	Records []model.QuestionRecord

	// Report lists every issue found, including recovery fallbacks
	// taken during segmentation
	Report *model.ValidationReport

	// Set is the authoritative question-number set the paper was
	// segmented against
	Set *model.QuestionSet
}

// NewPaper creates a Paper from extracted question paper and mark
// scheme pages, ready for fluent configuration.
func NewPaper(qpPages, msPages []model.Page) *Paper {
	return &Paper{
		qpPages: qpPages,
		msPages: msPages,
		options: defaultProcessOptions(),
	}
}

// WithProfile sets the subject profile used for segmentation.
func (p *Paper) WithProfile(profile segment.SubjectProfile) *Paper {
	p.options.profile = profile
	return p
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
