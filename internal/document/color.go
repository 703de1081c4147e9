package document

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrInvalidColor = errors.New("invalid color")

// NormalizeColor parses a #rgb or #rrggbb hex color and returns it as
// lowercase #rrggbb, the form used for color group keys.
func NormalizeColor(hex string) (string, error) {
	hex = strings.TrimSpace(hex)
	if (len(hex) != 4 && len(hex) != 7) || hex[0] != '#' ||
		strings.IndexFunc(hex[1:], notHexDigit) >= 0 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return c.Hex(), nil
}

// RandomColor returns a random, reasonably saturated palette color.
func RandomColor() string {
	return colorful.FastHappyColor().Clamped().Hex()
}

func notHexDigit(r rune) bool {
	return !('0' <= r && r <= '9' || 'a' <= r && r <= 'f' || 'A' <= r && r <= 'F')
}
