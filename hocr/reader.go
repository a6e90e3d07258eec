// Package hocr parses hOCR output, the XHTML interchange format
// emitted by OCR engines, into the page model consumed by the
// segmentation pipeline. It is the adapter at the page-extraction
// boundary: the library never re-reads source documents itself.
package hocr

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/pastpaper/model"
)

// Open reads an hOCR file and returns its pages in document order.
func Open(filename string) ([]model.Page, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f)
}

// OpenReader parses hOCR from an io.Reader.
func OpenReader(r io.Reader) ([]model.Page, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var pages []model.Page
	walkPages(doc, &pages)
	return pages, nil
}

// walkPages collects ocr_page elements in document order.
func walkPages(n *html.Node, pages *[]model.Page) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_page") {
		*pages = append(*pages, parsePage(n, len(*pages)))
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkPages(c, pages)
	}
}

// parsePage builds one Page from an ocr_page element. Page dimensions
// come from the element's bbox; malformed word boxes are skipped
// rather than failing the page.
func parsePage(n *html.Node, index int) model.Page {
	page := model.Page{Index: index}

	if x0, y0, x1, y1, ok := parseBBox(attr(n, "title")); ok {
		page.Width = x1 - x0
		page.Height = y1 - y0
	}

	var lines []string
	collectLines(n, &page, &lines)
	page.RawText = strings.Join(lines, "\n")

	return page
}

// collectLines walks ocr_line elements, appending their words to the
// page and their assembled text to lines.
func collectLines(n *html.Node, page *model.Page, lines *[]string) {
	if n.Type == html.ElementNode && hasClass(n, "ocr_line") {
		var texts []string
		collectWords(n, page, &texts)
		if len(texts) > 0 {
			*lines = append(*lines, strings.Join(texts, " "))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, page, lines)
	}
}

// collectWords walks ocrx_word elements within a line.
func collectWords(n *html.Node, page *model.Page, texts *[]string) {
	if n.Type == html.ElementNode && hasClass(n, "ocrx_word") {
		text := strings.TrimSpace(textContent(n))
		if text == "" {
			return
		}
		*texts = append(*texts, text)

		x0, y0, x1, y1, ok := parseBBox(attr(n, "title"))
		if !ok {
			return
		}
		page.Words = append(page.Words, model.Word{
			Text:   text,
			X0:     x0,
			Top:    y0,
			Width:  x1 - x0,
			Height: y1 - y0,
		})
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectWords(c, page, texts)
	}
}

// parseBBox extracts "bbox x0 y0 x1 y1" from an hOCR title attribute.
func parseBBox(title string) (x0, y0, x1, y1 float64, ok bool) {
	for _, prop := range strings.Split(title, ";") {
		fields := strings.Fields(strings.TrimSpace(prop))
		if len(fields) != 5 || fields[0] != "bbox" {
			continue
		}
		coords := make([]float64, 4)
		valid := true
		for i, f := range fields[1:] {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				valid = false
				break
			}
			coords[i] = v
		}
		if !valid {
			continue
		}
		return coords[0], coords[1], coords[2], coords[3], true
	}
	return 0, 0, 0, 0, false
}

// hasClass reports whether the element's class attribute contains the
// given class name.
func hasClass(n *html.Node, class string) bool {
	for _, field := range strings.Fields(attr(n, "class")) {
		if field == class {
			return true
		}
	}
	return false
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textContent returns the concatenated text of a node's subtree.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
