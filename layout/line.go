package layout

import (
	"sort"
	"strings"

	"github.com/tsawler/pastpaper/model"
)

// Line is a single visual line of text on a page: the words sharing a
// vertical band, ordered left to right. Lines are derived on demand
// from a page's words and never stored on the page itself, so repeated
// calls are idempotent.
type Line struct {
	// Text is the line's words joined with single spaces
	Text string

	// LeftX is the X0 of the leftmost word
	LeftX float64

	// Words are the line's words, sorted left to right
	Words []model.Word
}

// LineConfig holds configuration for line grouping.
type LineConfig struct {
	// VerticalTolerance is the maximum difference in vertical center
	// for two words to share a line (default: 3 units)
	VerticalTolerance float64
}

// DefaultLineConfig returns sensible default configuration.
func DefaultLineConfig() LineConfig {
	return LineConfig{
		VerticalTolerance: 3.0,
	}
}

// Lines groups a page's words into lines using the default
// configuration.
func Lines(page *model.Page) []Line {
	return LinesWithConfig(page, DefaultLineConfig())
}

// LinesWithConfig groups a page's words into lines. Words whose
// vertical centers differ by less than the tolerance share a line;
// within a line words are ordered left to right by X0. Lines are
// returned top to bottom.
func LinesWithConfig(page *model.Page, config LineConfig) []Line {
	if page == nil || len(page.Words) == 0 {
		return nil
	}

	sorted := make([]model.Word, len(page.Words))
	copy(sorted, page.Words)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := sorted[i].CenterY() - sorted[j].CenterY()
		if absFloat(di) >= config.VerticalTolerance {
			return di < 0 // smaller center = higher on page
		}
		// Same band; preserve extraction order, X sort happens per line
		return false
	})

	var groups [][]model.Word
	var current []model.Word
	for _, w := range sorted {
		if len(current) == 0 {
			current = append(current, w)
			continue
		}
		if absFloat(w.CenterY()-bandCenter(current)) < config.VerticalTolerance {
			current = append(current, w)
		} else {
			groups = append(groups, current)
			current = []model.Word{w}
		}
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	lines := make([]Line, 0, len(groups))
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].X0 < group[j].X0
		})
		lines = append(lines, Line{
			Text:  joinWords(group),
			LeftX: group[0].X0,
			Words: group,
		})
	}

	return lines
}

// bandCenter returns the average vertical center of the words grouped
// so far, which tracks baseline drift better than the first word alone.
func bandCenter(words []model.Word) float64 {
	total := 0.0
	for _, w := range words {
		total += w.CenterY()
	}
	return total / float64(len(words))
}

// joinWords assembles line text with single spaces between words.
func joinWords(words []model.Word) string {
	var sb strings.Builder
	for i, w := range words {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(w.Text)
	}
	return sb.String()
}

// RelativeLeft returns a line's left position as a fraction of the
// page width, the position signal used for margin calibration.
func (l Line) RelativeLeft(pageWidth float64) float64 {
	if pageWidth <= 0 {
		return 0
	}
	return l.LeftX / pageWidth
}

// absFloat returns the absolute value of a float64.
func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
