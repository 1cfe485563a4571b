package format

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	hexPrefix   = "0x"
	colorDigits = 6
)

// ErrInvalidHexColor indicates that a color value is not a base-16 number.
var ErrInvalidHexColor = errors.New("invalid hex color")

// ToHexColor normalizes a color such as "0xff0000" or "ff" to "#rrggbb".
// Values wider than six digits are kept in full, not truncated.
func ToHexColor(input string) (string, error) {
	value := strings.TrimPrefix(input, hexPrefix)

	parsed, err := strconv.ParseUint(value, 16, 64)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidHexColor, input)
	}

	return fmt.Sprintf("#%0*x", colorDigits, parsed), nil
}
