package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// TranscriptFetcher returns a video's transcript as a single string.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string, lang Language) (string, error)
}

// SummaryGenerator produces one summary for a (level, language) pair.
type SummaryGenerator interface {
	Generate(ctx context.Context, level SummaryLevel, lang Language, transcript string) (string, error)
}

// Pipeline runs the whole flow: URL → video ID → transcript → summaries →
// printed sections. Collaborators are injected so tests can run without
// network access.
type Pipeline struct {
	fetcher   TranscriptFetcher
	generator SummaryGenerator
	out       io.Writer
}

// Run executes one summarization pass. Stages are strictly sequential and
// fail-fast: the first error aborts everything after it. Each summary is
// printed as soon as it is generated, so sections completed before a
// mid-run failure remain on stdout.
func (p *Pipeline) Run(ctx context.Context, cfg *Config) error {
	videoID, err := extractVideoID(cfg.URL)
	if err != nil {
		return err
	}
	logInfo("resolved video", slog.String("video_id", videoID))

	transcript, err := p.fetcher.FetchTranscript(ctx, videoID, cfg.Languages[0])
	if err != nil {
		return err
	}
	logInfo("transcript fetched", slog.Int("chars", len(transcript)))

	for _, level := range summaryLevels {
		for _, lang := range cfg.Languages {
			logDebug("generating summary",
				slog.String("level", level.Name),
				slog.String("language", string(lang)))

			summary, err := p.generator.Generate(ctx, level, lang, transcript)
			if err != nil {
				return fmt.Errorf("%s summary (%s): %w: %w", level.Name, lang, ErrSummarizationFailed, err)
			}
			printSummary(p.out, level, lang, summary)
		}
	}

	return nil
}
