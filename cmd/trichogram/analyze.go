package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trichoscope/trichogram/internal/analysis"
	"github.com/trichoscope/trichogram/internal/ingest"
	"github.com/trichoscope/trichogram/internal/report"
)

// envelope is the JSON document analyze writes to stdout.
type envelope struct {
	Success        bool               `json:"success"`
	ReportID       string             `json:"report_id"`
	Detections     []analysis.Outcome `json:"detections"`
	AnalysisReport report.Report      `json:"analysis_report"`
}

func newAnalyzeCommand() *cobra.Command {
	var (
		pretty  bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "analyze [predictions.json]",
		Short: "Analyze a prediction batch and print the JSON report",
		Long: `Reads a prediction payload from the given file (or stdin when the
argument is omitted or "-"), computes the enclosing triangle and growth
direction for every detection, and prints the result envelope with the
aggregate analysis report as JSON on stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args)
			if err != nil {
				return fmt.Errorf("read predictions: %w", err)
			}

			dets, err := ingest.ParsePayload(data)
			if err != nil {
				return err
			}

			log := newLogger()
			pipeline := analysis.NewPipeline(
				analysis.WithLogger(log),
				analysis.WithWorkers(workers),
			)
			outcomes := pipeline.Process(dets)

			env := envelope{
				Success:        true,
				ReportID:       uuid.NewString(),
				Detections:     outcomes,
				AnalysisReport: report.Generate(outcomes),
			}
			log.Info("batch analyzed",
				"report_id", env.ReportID,
				"detections", len(outcomes),
				"total_count", env.AnalysisReport.TotalCount)

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(env)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	cmd.Flags().IntVar(&workers, "workers", 1, "detections processed concurrently")

	return cmd
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}
