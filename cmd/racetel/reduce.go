package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/psybedev/racetel/capture"
	"github.com/psybedev/racetel/session"
)

func runReduce(args []string, logger zerolog.Logger) error {
	fs := flag.NewFlagSet("reduce", flag.ExitOnError)
	inPath := fs.String("in", "", "capture file to read (required)")
	outPath := fs.String("out", "", "output path (stdout if absent)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" {
		return fmt.Errorf("reduce: -in is required")
	}

	in, err := capture.ResilientOpen(context.Background(), *inPath, capture.DefaultRetryConfig(), capture.NewCircuitBreaker())
	if err != nil {
		return fmt.Errorf("reduce: opening %s: %w", *inPath, err)
	}
	defer in.Close()

	src := capture.NewSource(in, logger)
	result, err := session.RunReducer(src, logger)
	if err != nil {
		return fmt.Errorf("reduce: %w", err)
	}

	var out *os.File = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			return fmt.Errorf("reduce: creating %s: %w", *outPath, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("reduce: encoding output: %w", err)
	}

	logger.Info().Int("sessions", len(result.Sessions)).Msg("reduce complete")
	return nil
}
