package wordlist

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/myenglish-wordlist/internal/app/wordlist/kajweb"
	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
)

// ArchiveResult holds the outcome of merging a single archive.
type ArchiveResult struct {
	Name     string
	Members  int
	Stats    kajweb.Stats
	Duration time.Duration
}

// Report summarizes a pipeline run.
type Report struct {
	RunID        uuid.UUID
	Archives     []ArchiveResult
	Totals       kajweb.Stats
	UniqueWords  int
	WithPhonetic int
	WithMeanings int
	Written      int
	DryRun       bool
	Duration     time.Duration
}

// PhoneticPercent returns the share of unique words with a phonetic
// transcription, in percent. Zero when there are no words.
func (r *Report) PhoneticPercent() float64 {
	return percent(r.WithPhonetic, r.UniqueWords)
}

// MeaningsPercent returns the share of unique words with at least one
// meaning, in percent. Zero when there are no words.
func (r *Report) MeaningsPercent() float64 {
	return percent(r.WithMeanings, r.UniqueWords)
}

// LogAttrs returns the summary as slog attributes.
func (r *Report) LogAttrs() []any {
	return []any{
		slog.String("run_id", r.RunID.String()),
		slog.Int("archives", len(r.Archives)),
		slog.Int("records", r.Totals.Records),
		slog.Int("malformed_lines", r.Totals.MalformedLines),
		slog.Int("empty_headwords", r.Totals.EmptyHeadwords),
		slog.Int("unique_words", r.UniqueWords),
		slog.Int("written", r.Written),
		slog.Int("with_phonetic", r.WithPhonetic),
		slog.String("with_phonetic_pct", formatPercent(r.PhoneticPercent())),
		slog.Int("with_meanings", r.WithMeanings),
		slog.String("with_meanings_pct", formatPercent(r.MeaningsPercent())),
		slog.Bool("dry_run", r.DryRun),
		slog.Duration("duration", r.Duration),
	}
}

// coverage counts words with a phonetic and words with meanings.
func coverage(words map[string]*domain.MergedEntry) (withPhonetic, withMeanings int) {
	for _, e := range words {
		if e.Phonetic() != "" {
			withPhonetic++
		}
		if e.MeaningCount() > 0 {
			withMeanings++
		}
	}
	return withPhonetic, withMeanings
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) * 100 / float64(total)
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}
