package main

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/trichoscope/trichogram/internal/analysis"
	"github.com/trichoscope/trichogram/internal/ingest"
	"github.com/trichoscope/trichogram/internal/overlay"
)

func newAnnotateCommand() *cobra.Command {
	var (
		predictionsPath string
		outputPath      string
		triangles       bool
		workers         int
	)

	cmd := &cobra.Command{
		Use:   "annotate <image>",
		Short: "Render detection triangles and direction rays onto an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := os.ReadFile(predictionsPath)
			if err != nil {
				return fmt.Errorf("read predictions: %w", err)
			}

			dets, err := ingest.ParsePayload(payload)
			if err != nil {
				return err
			}

			img, err := imaging.Open(args[0])
			if err != nil {
				return fmt.Errorf("open image: %w", err)
			}

			log := newLogger()
			pipeline := analysis.NewPipeline(
				analysis.WithLogger(log),
				analysis.WithWorkers(workers),
			)
			outcomes := pipeline.Process(dets)

			annotated := overlay.Annotate(img, outcomes, overlay.Options{Triangles: triangles})
			if err := imaging.Save(annotated, outputPath); err != nil {
				return fmt.Errorf("save annotated image: %w", err)
			}

			log.Info("image annotated",
				"input", args[0],
				"output", outputPath,
				"detections", len(outcomes))
			return nil
		},
	}

	cmd.Flags().StringVarP(&predictionsPath, "predictions", "p", "", "path to the predictions JSON (required)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "annotated.png", "output image path")
	cmd.Flags().BoolVar(&triangles, "triangles", true, "draw enclosing triangle outlines")
	cmd.Flags().IntVar(&workers, "workers", 1, "detections processed concurrently")
	_ = cmd.MarkFlagRequired("predictions")

	return cmd
}
