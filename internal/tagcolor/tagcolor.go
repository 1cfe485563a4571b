package tagcolor

import (
	"maps"
	"math/rand/v2"
)

// GenerateRandomColor returns a palette color chosen uniformly at random.
// Consecutive calls may return the same color.
func GenerateRandomColor() string {
	//nolint:gosec // Display colors do not need a cryptographic source.
	return palette[rand.IntN(len(palette))]
}

// InitializeTagColors returns a copy of existing extended with a random color
// for every tag it does not contain yet. Entries of existing are never changed,
// and a tag repeated in tags draws a color only once. existing may be nil.
func InitializeTagColors(tags []string, existing map[string]string) map[string]string {
	tagColors := make(map[string]string, len(existing)+len(tags))
	maps.Copy(tagColors, existing)

	for _, tag := range tags {
		if _, ok := tagColors[tag]; !ok {
			tagColors[tag] = GenerateRandomColor()
		}
	}

	return tagColors
}
