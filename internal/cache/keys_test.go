package cache

import (
	"testing"

	"homework-grader/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCacheKey(t *testing.T) {
	tests := []struct {
		name        string
		serviceName string
		objectType  string
		identifier  string
		paramsKey   []string
		expectedKey string
	}{
		{
			name:        "without paramsKey",
			serviceName: "quality",
			objectType:  "report",
			identifier:  "abc123",
			expectedKey: "hwgrader:quality:report:abc123",
		},
		{
			name:        "with empty paramsKey",
			serviceName: "quality",
			objectType:  "report",
			identifier:  "abc123",
			paramsKey:   []string{},
			expectedKey: "hwgrader:quality:report:abc123",
		},
		{
			name:        "with multiple paramsKey",
			serviceName: "practice",
			objectType:  "set",
			identifier:  "math",
			paramsKey:   []string{"grade5", "fractions"},
			expectedKey: "hwgrader:practice:set:math:grade5_fractions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedKey, GenerateCacheKey(tt.serviceName, tt.objectType, tt.identifier, tt.paramsKey...))
		})
	}
}

func TestFingerprint(t *testing.T) {
	a := domain.NewExercise("1", 1, "计算 2 + 3", "5", "arithmetic", "")
	b := domain.NewExercise("2", 2, "计算 4 + 6", "10", "arithmetic", "")

	ab, err := Fingerprint([]domain.Exercise{a, b}, 0.8)
	require.NoError(t, err)
	again, err := Fingerprint([]domain.Exercise{a, b}, 0.8)
	require.NoError(t, err)
	assert.Equal(t, ab, again)
	assert.Len(t, ab, 16)

	ba, err := Fingerprint([]domain.Exercise{b, a}, 0.8)
	require.NoError(t, err)
	assert.NotEqual(t, ab, ba, "order matters")

	other, err := Fingerprint([]domain.Exercise{a, b}, 0.9)
	require.NoError(t, err)
	assert.NotEqual(t, ab, other, "threshold matters")
}
