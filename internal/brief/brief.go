package brief

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/knmori/papercast/internal/outline"
)

const (
	fontName    = "Times New Roman"
	fontSize    = 12
	titleSize   = 16
	headingSize = 14
)

var (
	reBold   = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reBullet = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
)

// Write renders the title, summary points, and outline sections into a
// docx brief.
func (w *implWriter) Write(ctx context.Context, title, summary string, sections outline.Outline, outPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("new document: %w", err)
	}

	addStyledRun(doc.AddParagraph(""), title, true, titleSize)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Summary", true, headingSize)
	for _, line := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			trimmed = "• " + m[1]
		}
		addRichText(doc.AddParagraph(""), trimmed)
	}

	for _, name := range outline.Sections {
		doc.AddParagraph("")
		addStyledRun(doc.AddParagraph(""), name, true, headingSize)
		addRichText(doc.AddParagraph(""), sections.Section(name))
	}

	if err := doc.SaveTo(outPath); err != nil {
		return fmt.Errorf("save brief: %w", err)
	}

	w.logger.Info(ctx, "Brief written: %s", outPath)
	return nil
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(stripInlineMarkers(text)).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

// addRichText splits **bold** spans into separate bold runs and leaves the
// rest as plain text.
func addRichText(p *docx.Paragraph, text string) {
	parts := reBold.Split(text, -1)
	matches := reBold.FindAllStringSubmatch(text, -1)

	for i, part := range parts {
		if part != "" {
			p.AddText(stripInlineMarkers(part)).Font(fontName).Size(fontSize).Color("000000")
		}
		if i < len(matches) {
			p.AddText(stripInlineMarkers(matches[i][1])).Font(fontName).Size(fontSize).Color("000000").Bold(true)
		}
	}
}

func stripInlineMarkers(s string) string {
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "__", "")
	s = strings.ReplaceAll(s, "`", "")
	return s
}
