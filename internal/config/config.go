package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Feed     FeedConfig     `yaml:"feed"`
	Document DocumentConfig `yaml:"document"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Voicevox VoicevoxConfig `yaml:"voicevox"`
	Slides   SlidesConfig   `yaml:"slides"`
	Video    VideoConfig    `yaml:"video"`
	Paths    PathsConfig    `yaml:"paths"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type FeedConfig struct {
	Endpoint       string   `yaml:"endpoint"`
	Categories     []string `yaml:"categories"`
	MaxResults     int      `yaml:"max_results"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type DocumentConfig struct {
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

type GeminiConfig struct {
	Model          string `yaml:"model"`
	Language       string `yaml:"language"`
	SummaryPoints  int    `yaml:"summary_points"`
	MaxInputChars  int    `yaml:"max_input_chars"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type VoicevoxConfig struct {
	BaseURL        string  `yaml:"base_url"`
	Speaker        string  `yaml:"speaker"`
	Style          string  `yaml:"style"`
	Speed          float64 `yaml:"speed"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

type SlidesConfig struct {
	FontPath   string  `yaml:"font_path"`
	FontPoints float64 `yaml:"font_points"`
}

type VideoConfig struct {
	FPS             int `yaml:"fps"`
	SecondsPerSlide int `yaml:"seconds_per_slide"`
}

type PathsConfig struct {
	Output string `yaml:"output"`
	Inbox  string `yaml:"inbox"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Load reads and validates the YAML config at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Feed.MaxResults < 0 {
		return fmt.Errorf("feed.max_results must be positive")
	}
	if c.Video.FPS < 0 {
		return fmt.Errorf("video.fps must be positive")
	}
	if c.Video.SecondsPerSlide < 0 {
		return fmt.Errorf("video.seconds_per_slide must be positive")
	}
	if c.Voicevox.Speed < 0 {
		return fmt.Errorf("voicevox.speed must be positive")
	}

	if c.Feed.Endpoint == "" {
		c.Feed.Endpoint = "http://export.arxiv.org/api/query"
	}
	if len(c.Feed.Categories) == 0 {
		c.Feed.Categories = []string{"cs.AI", "cs.LG", "cs.CL", "cs.CV", "stat.ML"}
	}
	if c.Feed.MaxResults == 0 {
		c.Feed.MaxResults = 3
	}
	if c.Feed.TimeoutSeconds == 0 {
		c.Feed.TimeoutSeconds = 30
	}
	if c.Document.TimeoutSeconds == 0 {
		c.Document.TimeoutSeconds = 20
	}
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Language == "" {
		c.Gemini.Language = "Japanese"
	}
	if c.Gemini.SummaryPoints == 0 {
		c.Gemini.SummaryPoints = 3
	}
	if c.Gemini.MaxInputChars == 0 {
		c.Gemini.MaxInputChars = 5000
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = 120
	}
	if c.Voicevox.BaseURL == "" {
		c.Voicevox.BaseURL = "http://localhost:50021"
	}
	if c.Voicevox.Speaker == "" {
		c.Voicevox.Speaker = "四国めたん"
	}
	if c.Voicevox.Style == "" {
		c.Voicevox.Style = "ノーマル"
	}
	if c.Voicevox.Speed == 0 {
		c.Voicevox.Speed = 1.1
	}
	if c.Voicevox.TimeoutSeconds == 0 {
		c.Voicevox.TimeoutSeconds = 60
	}
	if c.Slides.FontPoints == 0 {
		c.Slides.FontPoints = 36
	}
	if c.Video.FPS == 0 {
		c.Video.FPS = 24
	}
	if c.Video.SecondsPerSlide == 0 {
		c.Video.SecondsPerSlide = 4
	}
	if c.Paths.Inbox == "" {
		c.Paths.Inbox = "inbox"
	}

	return nil
}

// Timeout returns the feed request timeout as a duration.
func (f FeedConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// Timeout returns the document download timeout as a duration.
func (d DocumentConfig) Timeout() time.Duration {
	return time.Duration(d.TimeoutSeconds) * time.Second
}

// Timeout returns the per-call model timeout as a duration.
func (g GeminiConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// Timeout returns the synthesis request timeout as a duration.
func (v VoicevoxConfig) Timeout() time.Duration {
	return time.Duration(v.TimeoutSeconds) * time.Second
}
