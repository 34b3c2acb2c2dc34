package config

import (
	"os"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				Paths: PathsConfig{
					Output: "outputs",
				},
			},
			wantErr: false,
		},
		{
			name:    "missing output path",
			config:  Config{},
			wantErr: true,
		},
		{
			name: "negative max_results",
			config: Config{
				Feed:  FeedConfig{MaxResults: -1},
				Paths: PathsConfig{Output: "outputs"},
			},
			wantErr: true,
		},
		{
			name: "negative fps",
			config: Config{
				Video: VideoConfig{FPS: -24},
				Paths: PathsConfig{Output: "outputs"},
			},
			wantErr: true,
		},
		{
			name: "negative speed",
			config: Config{
				Voicevox: VoicevoxConfig{Speed: -1.1},
				Paths:    PathsConfig{Output: "outputs"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{
		Paths: PathsConfig{Output: "outputs"},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Feed.Endpoint == "" {
		t.Error("Feed.Endpoint should default")
	}
	if len(cfg.Feed.Categories) == 0 {
		t.Error("Feed.Categories should default")
	}
	if cfg.Feed.MaxResults != 3 {
		t.Errorf("Feed.MaxResults = %d, want 3", cfg.Feed.MaxResults)
	}
	if cfg.Document.TimeoutSeconds != 20 {
		t.Errorf("Document.TimeoutSeconds = %d, want 20", cfg.Document.TimeoutSeconds)
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Gemini.Model = %q, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.SummaryPoints != 3 {
		t.Errorf("Gemini.SummaryPoints = %d, want 3", cfg.Gemini.SummaryPoints)
	}
	if cfg.Gemini.MaxInputChars != 5000 {
		t.Errorf("Gemini.MaxInputChars = %d, want 5000", cfg.Gemini.MaxInputChars)
	}
	if cfg.Voicevox.BaseURL != "http://localhost:50021" {
		t.Errorf("Voicevox.BaseURL = %q", cfg.Voicevox.BaseURL)
	}
	if cfg.Voicevox.Speed != 1.1 {
		t.Errorf("Voicevox.Speed = %v, want 1.1", cfg.Voicevox.Speed)
	}
	if cfg.Video.FPS != 24 {
		t.Errorf("Video.FPS = %d, want 24", cfg.Video.FPS)
	}
	if cfg.Video.SecondsPerSlide != 4 {
		t.Errorf("Video.SecondsPerSlide = %d, want 4", cfg.Video.SecondsPerSlide)
	}
	if cfg.Paths.Inbox != "inbox" {
		t.Errorf("Paths.Inbox = %q, want inbox", cfg.Paths.Inbox)
	}
}

func TestTimeoutAccessors(t *testing.T) {
	cfg := Config{Paths: PathsConfig{Output: "outputs"}}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if got := cfg.Document.Timeout(); got != 20*time.Second {
		t.Errorf("Document.Timeout() = %v, want 20s", got)
	}
	if got := cfg.Gemini.Timeout(); got != 120*time.Second {
		t.Errorf("Gemini.Timeout() = %v, want 120s", got)
	}
	if got := cfg.Voicevox.Timeout(); got != 60*time.Second {
		t.Errorf("Voicevox.Timeout() = %v, want 60s", got)
	}
}

func TestLoad(t *testing.T) {
	// Create a temporary config file
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
feed:
  max_results: 5
  categories: ["cs.AI"]

gemini:
  model: "gemini-2.5-flash"
  language: "English"
  summary_points: 4

voicevox:
  speaker: "ずんだもん"
  style: "あまあま"
  speed: 1.3

paths:
  output: "data/output"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	// Test loading
	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Feed.MaxResults != 5 {
		t.Errorf("MaxResults = %v, want 5", cfg.Feed.MaxResults)
	}
	if cfg.Gemini.Language != "English" {
		t.Errorf("Language = %v, want English", cfg.Gemini.Language)
	}
	if cfg.Voicevox.Speaker != "ずんだもん" {
		t.Errorf("Speaker = %v, want ずんだもん", cfg.Voicevox.Speaker)
	}
	if cfg.Voicevox.Speed != 1.3 {
		t.Errorf("Speed = %v, want 1.3", cfg.Voicevox.Speed)
	}
	if cfg.Paths.Output != "data/output" {
		t.Errorf("Output = %v, want data/output", cfg.Paths.Output)
	}

	// Unset fields pick up defaults
	if cfg.Video.FPS != 24 {
		t.Errorf("FPS = %v, want default 24", cfg.Video.FPS)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	if _, err := tmpfile.Write([]byte("feed: [unclosed")); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(tmpfile.Name()); err == nil {
		t.Error("Load() should return error for malformed yaml")
	}
}
