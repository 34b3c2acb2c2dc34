package extractor

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Extract returns the concatenated plain text of every readable page.
// Extraction never fails the caller: absent input, a malformed document, or
// an unreadable page degrades toward the empty string.
func (e *implExtractor) Extract(ctx context.Context, data []byte) string {
	if len(data) == 0 {
		return ""
	}

	reader, pages := openDocument(data)
	if reader == nil {
		e.logger.Warn(ctx, "Document could not be parsed; continuing with empty text")
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		sb.WriteString(pageText(reader, i))
	}

	e.logger.Debug(ctx, "Extracted %d chars from %d page(s)", sb.Len(), pages)
	return sb.String()
}

// openDocument parses the document and reports its page count. The pdf
// package panics on some malformed files, so the parse is fenced.
func openDocument(data []byte) (reader *pdf.Reader, pages int) {
	defer func() {
		if r := recover(); r != nil {
			reader, pages = nil, 0
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, 0
	}
	return r, r.NumPage()
}

// pageText extracts one page, yielding "" for anything unreadable.
func pageText(reader *pdf.Reader, number int) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	page := reader.Page(number)
	if page.V.IsNull() {
		return ""
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return ""
	}
	return content
}
