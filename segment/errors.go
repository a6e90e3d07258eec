package segment

import "errors"

var (
	// ErrNoQuestionNumbers is returned when neither the question paper
	// totals nor the mark scheme rows yield any question numbers. It is
	// the one unrecoverable condition in the pipeline and aborts the
	// current paper only.
	ErrNoQuestionNumbers = errors.New("no authoritative question numbers found in question paper or mark scheme")

	// ErrEmptySpan is returned when a question ends up with zero
	// question paper pages after clamping. Such a question cannot be
	// used downstream.
	ErrEmptySpan = errors.New("question has an empty question paper span")
)
