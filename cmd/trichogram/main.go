package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var debug bool

func main() {
	root := &cobra.Command{
		Use:     "trichogram",
		Short:   "Trichogram analysis: enclosing triangles, growth direction, and batch reports",
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		Long: `trichogram processes hair follicle detections from an upstream
segmentation service. For each detection it computes a minimum enclosing
triangle and a growth-direction pair, and aggregates the batch into an
analysis report. Optionally it renders the results onto the source image.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	root.AddCommand(newAnalyzeCommand(), newAnnotateCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger. Logs go to stderr so stdout stays
// clean for JSON output.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
