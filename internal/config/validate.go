package config

import (
	"strings"

	"github.com/heartmarshall/myenglish-wordlist/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// All problems are reported together as a *domain.ValidationError.
func (c *Config) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, c.Wordlist.validate()...)
	errs = append(errs, c.Log.validate()...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (w *WordlistConfig) validate() []domain.FieldError {
	var errs []domain.FieldError

	if strings.TrimSpace(w.BookDir) == "" {
		errs = append(errs, domain.FieldError{Field: "wordlist.book_dir", Message: "required"})
	}
	if strings.TrimSpace(w.OutputPath) == "" {
		errs = append(errs, domain.FieldError{Field: "wordlist.output_path", Message: "required"})
	}
	if !isExtension(w.ArchiveExt) {
		errs = append(errs, domain.FieldError{Field: "wordlist.archive_ext", Message: "must start with a dot"})
	}
	if !isExtension(w.MemberExt) {
		errs = append(errs, domain.FieldError{Field: "wordlist.member_ext", Message: "must start with a dot"})
	}

	return errs
}

func (l *LogConfig) validate() []domain.FieldError {
	var errs []domain.FieldError

	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, domain.FieldError{Field: "log.level", Message: "must be one of debug, info, warn, error"})
	}

	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case "", "json", "text":
	default:
		errs = append(errs, domain.FieldError{Field: "log.format", Message: "must be json or text"})
	}

	return errs
}

func isExtension(ext string) bool {
	return len(ext) > 1 && strings.HasPrefix(ext, ".")
}
