package app

import "fmt"

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/heartmarshall/myenglish-wordlist/internal/app.Version=1.2.0" ./cmd/wordlist
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion describes the running binary for the conversion start log line.
func BuildVersion() string {
	return fmt.Sprintf("wordlist %s (commit %s, built %s)", Version, Commit, BuildTime)
}
