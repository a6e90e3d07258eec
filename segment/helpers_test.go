package segment

import (
	"strings"

	"github.com/tsawler/pastpaper/model"
	"github.com/tsawler/pastpaper/normtext"
)

// textPage builds a word-less test page from its lines, normalized the
// way the pipeline would normalize it.
func textPage(index int, lines ...string) model.Page {
	raw := strings.Join(lines, "\n")
	return model.Page{
		Index:          index,
		RawText:        raw,
		NormalizedText: normtext.Normalize(raw),
		Width:          612,
		Height:         792,
	}
}

// qpDoc builds a question paper document from pages.
func qpDoc(pages ...model.Page) *model.Document {
	return model.NewDocument(model.KindQuestionPaper, pages)
}

// msDoc builds a mark scheme document from pages.
func msDoc(pages ...model.Page) *model.Document {
	return model.NewDocument(model.KindMarkScheme, pages)
}

// set builds a question set with no declared marks.
func set(numbers ...int) *model.QuestionSet {
	return model.NewQuestionSet(numbers, nil)
}

// pagesOf returns the page list of a span, nil-safe.
func pagesOf(span *model.QuestionSpan) []int {
	if span == nil {
		return nil
	}
	return span.Pages
}
