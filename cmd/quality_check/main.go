// Command quality_check runs the exercise quality report over a JSON file offline.
//
//	quality_check -file exercises.json [-threshold 0.8]
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"homework-grader/internal/config"
	"homework-grader/internal/domain"
	"homework-grader/internal/logger"
	"homework-grader/internal/quality"

	"go.uber.org/zap"
)

const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
)

func main() {
	_ = logger.Initialize(config.LoggerConfig{Level: "warn", Env: "development"})
	defer logger.Sync()
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("quality_check", flag.ContinueOnError)
	file := fs.String("file", "", "path to a JSON array of exercises")
	threshold := fs.Float64("threshold", quality.DefaultDuplicateThreshold, "near-duplicate threshold in [0, 1]")
	if err := fs.Parse(args); err != nil {
		return exitFailure
	}
	log := logger.Get()

	if *file == "" {
		log.Error("missing -file")
		return exitValidation
	}

	exercises, err := readExercises(*file)
	if err != nil {
		log.Error("Failed to read exercises", zap.String("file", *file), zap.Error(err))
		return exitFailure
	}

	report, err := quality.NewEngine(quality.WithDuplicateThreshold(*threshold)).GenerateQualityReport(exercises)
	if err != nil {
		var verrs domain.ValidationErrors
		if errors.As(err, &verrs) {
			log.Error("Invalid input", zap.Error(err))
			return exitValidation
		}
		log.Error("Failed to generate report", zap.Error(err))
		return exitFailure
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		log.Error("Failed to write report", zap.Error(err))
		return exitFailure
	}
	return exitOK
}

func readExercises(path string) ([]domain.Exercise, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var exercises []domain.Exercise
	if err := json.Unmarshal(raw, &exercises); err != nil {
		return nil, fmt.Errorf("decode exercises: %w", err)
	}
	return exercises, nil
}
