package voicevox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

// ErrVoiceNotFound means the configured speaker/style pair is absent from
// the engine's catalog. There is no substitute voice; the run fails.
var ErrVoiceNotFound = errors.New("voice not found in speaker catalog")

type speaker struct {
	Name   string  `json:"name"`
	Styles []style `json:"styles"`
}

type style struct {
	Name string `json:"name"`
	ID   int    `json:"id"`
}

// Synthesize resolves the configured voice, builds an audio query for the
// text, overrides the speaking speed, and writes the synthesized audio to
// outPath.
func (s *implSynthesizer) Synthesize(ctx context.Context, text, outPath string) error {
	styleID, err := s.resolveStyleID(ctx)
	if err != nil {
		return err
	}

	s.logger.Debug(ctx, "Voice %s (%s) resolved to style id %d", s.speaker, s.style, styleID)

	// The engine reads emphasis markers aloud, so markdown bold from the
	// generated summary is stripped.
	cleaned := strings.ReplaceAll(text, "**", "")

	query, err := s.buildAudioQuery(ctx, cleaned, styleID)
	if err != nil {
		return err
	}
	query["speedScale"] = s.speed

	audio, err := s.requestSynthesis(ctx, query, styleID)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, audio, 0644); err != nil {
		return fmt.Errorf("write narration: %w", err)
	}

	s.logger.Info(ctx, "Narration written: %s (%d bytes)", outPath, len(audio))
	return nil
}

// resolveStyleID scans the voice catalog for an exact speaker and style
// name match.
func (s *implSynthesizer) resolveStyleID(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/speakers", nil)
	if err != nil {
		return 0, fmt.Errorf("build speakers request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("list speakers: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("speaker catalog returned %s", resp.Status)
	}

	var catalog []speaker
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		return 0, fmt.Errorf("decode speaker catalog: %w", err)
	}

	for _, sp := range catalog {
		if sp.Name != s.speaker {
			continue
		}
		for _, st := range sp.Styles {
			if st.Name == s.style {
				return st.ID, nil
			}
		}
	}

	return 0, fmt.Errorf("%w: %s (%s)", ErrVoiceNotFound, s.speaker, s.style)
}

// buildAudioQuery asks the engine to describe how the text should be
// spoken. The query shape is engine-defined and versioned, so it stays an
// opaque map and is passed back verbatim apart from the speed override.
func (s *implSynthesizer) buildAudioQuery(ctx context.Context, text string, styleID int) (map[string]any, error) {
	endpoint := fmt.Sprintf("%s/audio_query?%s", s.baseURL, url.Values{
		"text":    {text},
		"speaker": {strconv.Itoa(styleID)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build audio query request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("audio query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("audio query returned %s", resp.Status)
	}

	var query map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&query); err != nil {
		return nil, fmt.Errorf("decode audio query: %w", err)
	}
	return query, nil
}

func (s *implSynthesizer) requestSynthesis(ctx context.Context, query map[string]any, styleID int) ([]byte, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("marshal audio query: %w", err)
	}

	endpoint := fmt.Sprintf("%s/synthesis?speaker=%d", s.baseURL, styleID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis returned %s", resp.Status)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read synthesized audio: %w", err)
	}
	return audio, nil
}
