package textgen

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/genai"
)

// Generate submits one prompt and returns the concatenated response text.
// Each call is a single attempt; failures surface directly to the caller.
func (g *implGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	started := time.Now()

	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from %s", g.model)
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("response from %s carried no text", g.model)
	}

	g.logger.Debug(ctx, "Model %s answered %d chars in %s",
		g.model, len(text), time.Since(started).Round(time.Millisecond))
	return text, nil
}
