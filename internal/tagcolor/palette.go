package tagcolor

import "slices"

// Preset color names, in palette order.
const (
	Magenta  = "magenta"
	Red      = "red"
	Volcano  = "volcano"
	Orange   = "orange"
	Gold     = "gold"
	Lime     = "lime"
	Cyan     = "cyan"
	Blue     = "blue"
	GeekBlue = "geekblue"
	Purple   = "purple"
)

//nolint:gochecknoglobals // Immutable palette, never modified after initialization.
var (
	palette = [...]string{Magenta, Red, Volcano, Orange, Gold, Lime, Cyan, Blue, GeekBlue, Purple}

	// paletteHex holds the primary shade of every preset, used for terminal output.
	paletteHex = map[string]string{
		Magenta:  "#eb2f96",
		Red:      "#f5222d",
		Volcano:  "#fa541c",
		Orange:   "#fa8c16",
		Gold:     "#faad14",
		Lime:     "#a0d911",
		Cyan:     "#13c2c2",
		Blue:     "#1677ff",
		GeekBlue: "#2f54eb",
		Purple:   "#722ed1",
	}
)

// Palette returns the preset color names in order. The result is a copy.
func Palette() []string {
	return slices.Clone(palette[:])
}

// IsPaletteColor reports whether color is one of the presets.
func IsPaletteColor(color string) bool {
	_, ok := paletteHex[color]

	return ok
}

// HexOf returns the #rrggbb shade of a preset color.
func HexOf(color string) (string, bool) {
	hex, ok := paletteHex[color]

	return hex, ok
}
