package model

// DocumentKind distinguishes the two documents of a paper pair.
type DocumentKind int

const (
	// KindQuestionPaper is the exam booklet containing the questions
	KindQuestionPaper DocumentKind = iota

	// KindMarkScheme is the companion grading document
	KindMarkScheme
)

// String returns a string representation of the kind.
func (k DocumentKind) String() string {
	if k == KindQuestionPaper {
		return "question paper"
	}
	return "mark scheme"
}

// Document is an ordered sequence of pages belonging to one physical
// document. Pages are never shared across documents; spans reference
// them by index only.
type Document struct {
	// Kind indicates whether this is the question paper or mark scheme
	Kind DocumentKind

	// Pages are the document's pages in physical order
	Pages []Page
}

// NewDocument creates a document of the given kind.
func NewDocument(kind DocumentKind, pages []Page) *Document {
	return &Document{Kind: kind, Pages: pages}
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Page returns the page at the given index, or nil if out of range.
func (d *Document) Page(index int) *Page {
	if d == nil || index < 0 || index >= len(d.Pages) {
		return nil
	}
	return &d.Pages[index]
}
