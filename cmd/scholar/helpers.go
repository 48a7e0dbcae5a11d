package main

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/dgallion1/scholardoc/internal/academic"
	"github.com/dgallion1/scholardoc/internal/citation"
	"github.com/dgallion1/scholardoc/internal/engine"
	"github.com/dgallion1/scholardoc/internal/section"
)

// newAnalyzer builds the analyzer used by every subcommand. Logs are
// discarded so stdout stays pure JSON.
func newAnalyzer() (*academic.Analyzer, error) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	var det *section.Detector
	var ext *citation.Extractor
	if patternsFile != "" {
		pc, err := academic.LoadPatternConfig(patternsFile)
		if err != nil {
			return nil, err
		}
		det, ext, err = pc.Build()
		if err != nil {
			return nil, err
		}
	}

	return academic.New(engine.New(log), det, ext, log), nil
}

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
