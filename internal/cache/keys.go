package cache

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"homework-grader/internal/domain"

	"github.com/cespare/xxhash/v2"
)

const (
	GlobalKeyPrefix = "hwgrader"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// Fingerprint hashes an exercise batch together with the duplicate threshold.
// Equal batches in the same order produce the same fingerprint; reordering
// changes it, since deduplication is order dependent.
func Fingerprint(exercises []domain.Exercise, threshold float64) (string, error) {
	d := xxhash.New()
	enc := json.NewEncoder(d)
	for _, ex := range exercises {
		if err := enc.Encode(ex); err != nil {
			return "", fmt.Errorf("failed to encode exercise %s: %w", ex.ID, err)
		}
	}
	if _, err := d.WriteString(strconv.FormatFloat(threshold, 'g', -1, 64)); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", d.Sum64()), nil
}
