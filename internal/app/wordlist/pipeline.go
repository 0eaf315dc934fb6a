package wordlist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-wordlist/internal/config"
	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
	"github.com/heartmarshall/myenglish-wordlist/pkg/ctxutil"
)

// Pipeline orchestrates a conversion run: enumerate archives, merge every
// member, then write the sorted wordlist.
type Pipeline struct {
	log    *slog.Logger
	reader ArchiveReader
	cfg    config.WordlistConfig
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, reader ArchiveReader, cfg config.WordlistConfig) *Pipeline {
	return &Pipeline{
		log:    log,
		reader: reader,
		cfg:    cfg,
	}
}

// Run executes the pipeline. A missing archive directory yields an empty
// wordlist; an unreadable archive or an output failure aborts the run.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	start := time.Now()

	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		runID = uuid.New()
	}
	log := p.log.With(slog.String("run_id", runID.String()))

	report := &Report{RunID: runID, DryRun: p.cfg.DryRun}

	// Step 1: Enumerate archives.
	archives, err := p.reader.ListArchives(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		log.Warn("archive directory not found, nothing to merge",
			slog.String("book_dir", p.cfg.BookDir),
		)
	case err != nil:
		return nil, fmt.Errorf("list archives: %w", err)
	}

	// Step 2: Merge archives in enumeration order.
	merger := NewMerger()
	for _, archive := range archives {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("merge interrupted: %w", err)
		}

		result, err := p.mergeArchive(ctx, log, merger, archive)
		if err != nil {
			return nil, err
		}
		report.Archives = append(report.Archives, result)

		log.Info("archive merged",
			slog.String("archive", result.Name),
			slog.Int("members", result.Members),
			slog.Int("records", result.Stats.Records),
			slog.Int("skipped", result.Stats.Skipped()),
			slog.Duration("duration", result.Duration),
		)
	}

	words := merger.Words()
	report.Totals = merger.Stats()
	report.UniqueWords = merger.Len()
	report.WithPhonetic, report.WithMeanings = coverage(words)

	// Step 3: Write output.
	if p.cfg.DryRun {
		log.Info("dry run, output not written", slog.String("output_path", p.cfg.OutputPath))
	} else {
		written, err := WriteFile(p.cfg.OutputPath, words)
		if err != nil {
			return nil, fmt.Errorf("write wordlist %s: %w", p.cfg.OutputPath, err)
		}
		report.Written = written
		log.Info("wordlist written",
			slog.String("output_path", p.cfg.OutputPath),
			slog.Int("words", written),
		)
	}

	report.Duration = time.Since(start)
	return report, nil
}

// mergeArchive feeds every member of archive to merger.
func (p *Pipeline) mergeArchive(ctx context.Context, log *slog.Logger, merger *Merger, archive string) (ArchiveResult, error) {
	start := time.Now()
	result := ArchiveResult{Name: archive}

	err := p.reader.ReadMembers(ctx, archive, func(member string, blob []byte) error {
		stats := merger.AddBlob(blob)
		result.Members++
		result.Stats.Add(stats)

		log.Debug("member merged",
			slog.String("archive", archive),
			slog.String("member", member),
			slog.Int("records", stats.Records),
			slog.Int("malformed_lines", stats.MalformedLines),
		)
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("merge archive %s: %w", archive, err)
	}

	result.Duration = time.Since(start)
	return result, nil
}
