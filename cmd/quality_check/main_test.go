package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"homework-grader/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "exercises.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRun(t *testing.T) {
	path := writeFile(t, `[
		{"id": 1, "number": 1, "question_text": "计算 3+4", "correct_answer": "7", "question_type": "计算题"},
		{"id": "2", "number": 2, "question_text": "计算 3+4", "correct_answer": "7", "question_type": "计算题", "analysis": null},
		{"id": 3, "number": 3, "question_text": "求长方形面积，长5宽3", "correct_answer": "15", "question_type": "应用题"}
	]`)

	var out bytes.Buffer
	code := run([]string{"-file", path}, &out)

	require.Equal(t, exitOK, code)
	var report domain.QualityReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 3, report.TotalExercises)
	assert.Equal(t, 1, report.QualityMetrics.Duplicates.RemovedCount)
	assert.Len(t, report.QualityMetrics.DifficultyAnalysis, 3)
}

func TestRun_Errors(t *testing.T) {
	valid := writeFile(t, `[]`)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"Missing File Flag", nil, exitValidation},
		{"Threshold Out Of Range", []string{"-file", valid, "-threshold", "1.5"}, exitValidation},
		{"Unreadable File", []string{"-file", filepath.Join(t.TempDir(), "missing.json")}, exitFailure},
		{"Malformed JSON", []string{"-file", writeFile(t, `{"exercises":`)}, exitFailure},
		{"Unknown Flag", []string{"-bogus"}, exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			assert.Equal(t, tt.want, run(tt.args, &out))
			assert.Empty(t, out.String())
		})
	}
}
