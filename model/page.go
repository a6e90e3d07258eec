package model

// Word is a single positioned text token on a page, as produced by the
// page-extraction collaborator. Words are immutable after extraction.
type Word struct {
	// Text is the token text as extracted (possibly noisy OCR output)
	Text string

	// X0 is the left edge of the word's bounding box
	X0 float64

	// Top is the top edge of the word's bounding box
	Top float64

	// Width is the bounding box width
	Width float64

	// Height is the bounding box height
	Height float64
}

// CenterY returns the vertical center of the word's bounding box.
// Line grouping clusters words by this value.
func (w Word) CenterY() float64 {
	return w.Top + w.Height/2
}

// Page represents a single page of a question paper or mark scheme.
// RawText is never modified; NormalizedText is produced by the text
// normalizer, and ScrubbedText (question papers only) additionally has
// boilerplate lines removed.
type Page struct {
	// Index is the 0-based page index within its document
	Index int

	// RawText is the extracted text layer, untouched
	RawText string

	// NormalizedText is RawText after glyph canonicalization and
	// whitespace repair
	NormalizedText string

	// ScrubbedText is NormalizedText with boilerplate lines dropped.
	// Empty for mark-scheme pages, which are never scrubbed.
	ScrubbedText string

	// Width is the page width in extraction units
	Width float64

	// Height is the page height in extraction units
	Height float64

	// Words are the positioned tokens on the page
	Words []Word
}

// Text returns the most processed text available for the page:
// scrubbed if present, else normalized, else raw.
func (p *Page) Text() string {
	if p.ScrubbedText != "" {
		return p.ScrubbedText
	}
	if p.NormalizedText != "" {
		return p.NormalizedText
	}
	return p.RawText
}
