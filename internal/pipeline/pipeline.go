package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/knmori/papercast/internal/outline"
)

// Run drives the newest feed candidate all the way to a finished video.
// Feed and download problems degrade; everything after extraction is
// fatal for the run.
func (p *implRunner) Run(ctx context.Context) (*Result, error) {
	res := p.newResult()

	p.logger.Info(ctx, "[%s] Fetching latest papers...", res.RunID)
	res.State = StateFetching

	papers, err := p.deps.Feed.Fetch(ctx, p.cfg.Feed.MaxResults)
	if err != nil {
		p.logger.Warn(ctx, "[%s] Feed query failed: %v", res.RunID, err)
		papers = nil
	}
	if len(papers) == 0 {
		p.logger.Info(ctx, "[%s] No papers found", res.RunID)
		res.State = StateNoWork
		return res, nil
	}

	paper := papers[0]
	res.Paper = &paper
	p.logger.Info(ctx, "[%s] Processing: %s", res.RunID, paper.Title)

	name := safeFileName(paper.Title)

	data, err := p.deps.Fetcher.Fetch(ctx, paper.PDFURL())
	if err != nil {
		// A failed download joins the empty-text path instead of killing
		// the run.
		p.logger.Warn(ctx, "[%s] Document download failed: %v", res.RunID, err)
		data = nil
	} else {
		docPath := filepath.Join(p.cfg.Paths.Output, name+".pdf")
		if writeErr := os.WriteFile(docPath, data, 0644); writeErr != nil {
			p.logger.Warn(ctx, "[%s] Could not keep document copy: %v", res.RunID, writeErr)
		} else {
			res.DocumentPath = docPath
		}
	}

	return p.process(ctx, res, paper.Title, data)
}

// RunDocument runs the extraction-to-assembly tail for one local document.
// The file name stands in for the paper title.
func (p *implRunner) RunDocument(ctx context.Context, path string) (*Result, error) {
	res := p.newResult()
	res.DocumentPath = path

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p.logger.Info(ctx, "[%s] Processing local document: %s", res.RunID, path)

	data, err := os.ReadFile(path)
	if err != nil {
		p.logger.Warn(ctx, "[%s] Could not read %s: %v", res.RunID, path, err)
		data = nil
	}

	return p.process(ctx, res, title, data)
}

func (p *implRunner) process(ctx context.Context, res *Result, title string, data []byte) (*Result, error) {
	res.State = StateExtracting
	text := p.deps.Extractor.Extract(ctx, data)
	if text == "" {
		p.logger.Warn(ctx, "[%s] No text extracted; summarizing without body text", res.RunID)
	}

	res.State = StateSummarizing
	summary, err := p.deps.Summarizer.Summarize(ctx, text)
	if err != nil {
		return p.fail(ctx, res, err)
	}
	res.Summary = summary

	res.State = StateOutlining
	sections, err := p.deps.Outliner.Build(ctx, title, summary)
	if err != nil {
		return p.fail(ctx, res, err)
	}

	if p.deps.Brief != nil {
		briefPath := filepath.Join(p.cfg.Paths.Output, safeFileName(title)+"_brief.docx")
		if err := p.deps.Brief.Write(ctx, title, summary, sections, briefPath); err != nil {
			p.logger.Warn(ctx, "[%s] Brief not written: %v", res.RunID, err)
		} else {
			res.BriefPath = briefPath
		}
	}

	res.State = StateRendering
	for _, section := range outline.Sections {
		slidePath := filepath.Join(p.cfg.Paths.Output, section+".png")
		if err := p.deps.Slides.Render(ctx, section, sections.Section(section), slidePath); err != nil {
			return p.fail(ctx, res, err)
		}
		res.SlidePaths = append(res.SlidePaths, slidePath)
	}

	stamp := p.now().UTC().Format("20060102")

	res.State = StateNarrating
	narrationPath := filepath.Join(p.cfg.Paths.Output, fmt.Sprintf("narration_%s.wav", stamp))
	if err := p.deps.Narrator.Synthesize(ctx, summary, narrationPath); err != nil {
		return p.fail(ctx, res, err)
	}
	res.NarrationPath = narrationPath

	res.State = StateAssembling
	videoPath := filepath.Join(p.cfg.Paths.Output, fmt.Sprintf("paper_video_%s.mp4", stamp))
	if err := p.deps.Assembler.Assemble(ctx, res.SlidePaths, narrationPath, videoPath); err != nil {
		return p.fail(ctx, res, err)
	}
	res.VideoPath = videoPath

	res.State = StateDone
	p.logger.Info(ctx, "[%s] Done: %s", res.RunID, videoPath)
	return res, nil
}

func (p *implRunner) fail(ctx context.Context, res *Result, err error) (*Result, error) {
	stageErr := &StageError{Stage: res.State, Err: err}
	res.FailedStage = res.State
	res.State = StateFailed
	p.logger.Error(ctx, "[%s] %v", res.RunID, stageErr)
	return res, stageErr
}

func (p *implRunner) newResult() *Result {
	return &Result{
		RunID: uuid.NewString()[:8],
		State: StateIdle,
	}
}
