// Command wordlist converts kajweb/dict word books (zip archives of JSON-lines
// files) into a single sorted, line-per-word text wordlist.
//
// Flags:
//
//	--config    path to YAML config file (default: $CONFIG_PATH or ./config.yaml)
//	--book-dir  directory with the zip archives
//	--output    wordlist output path
//	--dry-run   merge the books without writing the output file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/myenglish-wordlist/internal/app"
	"github.com/heartmarshall/myenglish-wordlist/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to YAML config file")
	bookDirFlag := flag.String("book-dir", "", "directory with dictionary zip archives")
	outputFlag := flag.String("output", "", "wordlist output path")
	dryRunFlag := flag.Bool("dry-run", false, "merge books without writing the output file")
	flag.Parse()

	path := *configFlag
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadPath(path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// CLI flags override config.
	if *bookDirFlag != "" {
		cfg.Wordlist.BookDir = *bookDirFlag
	}
	if *outputFlag != "" {
		cfg.Wordlist.OutputPath = *outputFlag
	}
	if *dryRunFlag {
		cfg.Wordlist.DryRun = true
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error("conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
