package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-wordlist/internal/app/wordlist"
	"github.com/heartmarshall/myenglish-wordlist/internal/config"
	"github.com/heartmarshall/myenglish-wordlist/pkg/ctxutil"
)

// Run converts the dictionary books configured in cfg into a wordlist and
// logs a summary of the run.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*wordlist.Report, error) {
	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctx, runID)

	logger.Info("starting conversion",
		slog.String("version", BuildVersion()),
		slog.String("run_id", runID.String()),
		slog.String("book_dir", cfg.Wordlist.BookDir),
		slog.String("output_path", cfg.Wordlist.OutputPath),
	)

	reader := &wordlist.ZipDir{
		Dir:        cfg.Wordlist.BookDir,
		ArchiveExt: cfg.Wordlist.ArchiveExt,
		MemberExt:  cfg.Wordlist.MemberExt,
	}

	report, err := wordlist.NewPipeline(logger, reader, cfg.Wordlist).Run(ctx)
	if err != nil {
		return nil, err
	}

	logger.Info("conversion completed", report.LogAttrs()...)
	return report, nil
}
