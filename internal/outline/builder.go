package outline

import (
	"context"
	"fmt"
	"strings"
)

const outlinePrompt = `Organize the following paper into five slides for a short video, one line per slide, each line formatted as "NAME: content":

1. TITLE
2. PURPOSE
3. METHOD
4. RESULT
5. CONCLUSION

Title:
%s

Summary:
%s`

// Build asks the model for the five-section breakdown and parses whatever
// comes back. The response format is not guaranteed, so parsing is
// line-oriented and tolerant; missing sections degrade to empty text.
func (b *implBuilder) Build(ctx context.Context, title, summary string) (Outline, error) {
	b.logger.Info(ctx, "Building slide outline")

	out, err := b.gen.Generate(ctx, fmt.Sprintf(outlinePrompt, title, summary))
	if err != nil {
		return nil, fmt.Errorf("build outline: %w", err)
	}

	parsed := parse(out)
	for _, name := range Sections {
		if _, ok := parsed[name]; !ok {
			b.logger.Warn(ctx, "Outline is missing section %s", name)
		}
	}
	return parsed, nil
}

// parse reads key:value lines out of loosely structured model output.
// Lines without a separator are ignored; a repeated key keeps its last
// value; only the first separator splits, so values may carry colons.
func parse(raw string) Outline {
	sections := Outline{}
	for _, line := range strings.Split(raw, "\n") {
		if !strings.Contains(line, ":") {
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		key := strings.TrimSpace(parts[0])
		sections[key] = strings.TrimSpace(parts[1])
	}
	return sections
}
