package config

// Config is the root application configuration.
type Config struct {
	Wordlist WordlistConfig `yaml:"wordlist"`
	Log      LogConfig      `yaml:"log"`
}

// WordlistConfig holds conversion settings.
type WordlistConfig struct {
	BookDir    string `yaml:"book_dir"    env:"WORDLIST_BOOK_DIR"    env-default:"./dict/book"`
	OutputPath string `yaml:"output_path" env:"WORDLIST_OUTPUT_PATH" env-default:"./wordbooks/master.txt"`
	ArchiveExt string `yaml:"archive_ext" env:"WORDLIST_ARCHIVE_EXT" env-default:".zip"`
	MemberExt  string `yaml:"member_ext"  env:"WORDLIST_MEMBER_EXT"  env-default:".json"`
	DryRun     bool   `yaml:"dry_run"     env:"WORDLIST_DRY_RUN"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
