package model

// QuestionRecord is the final per-question output of the pipeline,
// merging the question paper span, the mark scheme span (if any), and
// the marks computation. Records are constructed once at the end of
// processing and are read-only to downstream consumers.
type QuestionRecord struct {
	// Question is the question number
	Question int

	// QPPages are the question paper pages for this question
	QPPages []int

	// MSPages are the mark scheme pages, nil when no MS span was found
	MSPages []int

	// MarksQP is the mark total declared on the question paper
	MarksQP *int

	// MarksMS is the mark total extracted from the mark scheme
	MarksMS *int

	// EvidenceStart is the QP line that established the span start
	EvidenceStart string

	// EvidenceEnd is the QP line that established the span end
	EvidenceEnd string

	// Issues are the validation issues that mention this question
	Issues []Issue
}
