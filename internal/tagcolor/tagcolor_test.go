package tagcolor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPalette tests the preset palette.
func TestPalette(t *testing.T) {
	t.Parallel()

	colors := Palette()
	require.Len(t, colors, 10)
	assert.Equal(t, Magenta, colors[0])
	assert.Equal(t, Purple, colors[9])

	// The returned slice is a copy.
	colors[0] = "black"
	assert.Equal(t, Magenta, Palette()[0])

	for _, color := range Palette() {
		assert.True(t, IsPaletteColor(color), color)

		hex, ok := HexOf(color)
		assert.True(t, ok, color)
		assert.Regexp(t, `^#[0-9a-f]{6}$`, hex)
	}

	assert.False(t, IsPaletteColor("black"))
}

// TestGenerateRandomColor tests that generated colors belong to the palette.
func TestGenerateRandomColor(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})

	for range 2000 {
		color := GenerateRandomColor()
		require.True(t, IsPaletteColor(color), color)

		seen[color] = struct{}{}
	}

	// With 2000 uniform draws every one of the ten presets shows up.
	assert.Len(t, seen, 10)
}

// TestInitializeTagColors tests the InitializeTagColors function.
func TestInitializeTagColors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		tags         []string
		existing     map[string]string
		expectedKeys []string
	}{
		{
			name:         "nil existing map",
			tags:         []string{"landscape", "portrait"},
			existing:     nil,
			expectedKeys: []string{"landscape", "portrait"},
		},
		{
			name:         "empty tags keep existing",
			tags:         nil,
			existing:     map[string]string{"city": Blue},
			expectedKeys: []string{"city"},
		},
		{
			name:         "duplicates draw once",
			tags:         []string{"cat", "cat", "dog", "cat"},
			existing:     map[string]string{},
			expectedKeys: []string{"cat", "dog"},
		},
		{
			name:         "existing entries are kept",
			tags:         []string{"city", "night"},
			existing:     map[string]string{"city": Blue, "sea": "custom"},
			expectedKeys: []string{"city", "night", "sea"},
		},
		{
			name:         "empty color still counts as assigned",
			tags:         []string{"draft"},
			existing:     map[string]string{"draft": ""},
			expectedKeys: []string{"draft"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var original map[string]string
			if tt.existing != nil {
				original = make(map[string]string, len(tt.existing))
				for k, v := range tt.existing {
					original[k] = v
				}
			}

			result := InitializeTagColors(tt.tags, tt.existing)

			assert.ElementsMatch(t, tt.expectedKeys, keys(result))

			for tag, color := range tt.existing {
				assert.Equal(t, color, result[tag], "existing tag %q was reassigned", tag)
			}

			for _, tag := range tt.tags {
				if _, ok := tt.existing[tag]; !ok {
					assert.True(t, IsPaletteColor(result[tag]), tag)
				}
			}

			// The input map is never mutated.
			assert.Equal(t, original, tt.existing)
		})
	}
}

// TestInitializeTagColors_Idempotent tests that feeding the output back adds nothing.
func TestInitializeTagColors_Idempotent(t *testing.T) {
	t.Parallel()

	tags := []string{"a", "b", "c", "b"}

	first := InitializeTagColors(tags, map[string]string{"z": Gold})
	second := InitializeTagColors(tags, first)

	assert.Equal(t, first, second)

	// The result is a fresh map.
	second["a"] = "changed"
	assert.NotEqual(t, "changed", first["a"])
}

func keys(m map[string]string) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}

	return result
}
