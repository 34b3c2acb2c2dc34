package summarizer

import (
	"context"
	"fmt"
	"strings"
)

const summaryPrompt = `Summarize the following research paper in %s, concisely, as exactly %d points.

%s`

// Summarize truncates the input to the configured character cap, asks
// the model for the fixed-count summary, and returns the trimmed response.
// The response is untrusted free text; nothing enforces the point count.
func (s *implSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	text = truncateRunes(text, s.maxChars)

	s.logger.Info(ctx, "Summarizing %d chars into %d points (%s)",
		len([]rune(text)), s.points, s.language)

	out, err := s.gen.Generate(ctx, fmt.Sprintf(summaryPrompt, s.language, s.points, text))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}

	return strings.TrimSpace(out), nil
}

// truncateRunes cuts text to at most max runes. The cut can land
// mid-sentence; the cap is a cost control, not a correctness rule.
func truncateRunes(text string, max int) string {
	if max <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
