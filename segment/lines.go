package segment

import (
	"strings"

	"github.com/tsawler/pastpaper/layout"
	"github.com/tsawler/pastpaper/model"
	"github.com/tsawler/pastpaper/normtext"
)

// pageLine is one matchable line of a page. Positioned lines come from
// word bounding boxes and carry a usable relative left position;
// text-only pages (no word layer) fall back to plain text lines, which
// skip position gating.
type pageLine struct {
	text       string
	relLeft    float64
	positioned bool
}

// pageLines derives the matchable lines of a page. Word-derived line
// text is normalized the same way page text is, so the anchor patterns
// see one canonical form either way. A non-nil scrubber drops
// boilerplate lines (question paper only).
func pageLines(page *model.Page, config layout.LineConfig, scrubber *layout.Scrubber) []pageLine {
	if page == nil {
		return nil
	}

	if len(page.Words) > 0 {
		grouped := layout.LinesWithConfig(page, config)
		out := make([]pageLine, 0, len(grouped))
		for _, line := range grouped {
			text := normtext.Normalize(line.Text)
			if text == "" {
				continue
			}
			if scrubber != nil && scrubber.IsBoilerplate(text) {
				continue
			}
			out = append(out, pageLine{
				text:       text,
				relLeft:    line.RelativeLeft(page.Width),
				positioned: true,
			})
		}
		return out
	}

	// No word layer; page.Text() is already normalized (and scrubbed
	// for question papers) by the pipeline.
	var out []pageLine
	for _, text := range strings.Split(page.Text(), "\n") {
		if strings.TrimSpace(text) == "" {
			continue
		}
		out = append(out, pageLine{text: text})
	}
	return out
}
