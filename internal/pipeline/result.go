package pipeline

import "github.com/knmori/papercast/internal/feed"

// Result collects everything a single run produced. Paths are set only
// for artifacts that were actually written.
type Result struct {
	RunID         string
	State         State
	FailedStage   State
	Paper         *feed.Paper
	DocumentPath  string
	Summary       string
	SlidePaths    []string
	NarrationPath string
	BriefPath     string
	VideoPath     string
}
