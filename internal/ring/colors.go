package ring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	ErrInvalidColorCount = errors.New("ring: expected 1 to 4 colors")
	ErrInvalidColor      = errors.New("ring: invalid hex color")
)

// Color is a hex color string such as "#5c9eff".
type Color string

// DefaultColors is the palette used when no colors are configured.
var DefaultColors = []Color{"#f137a6", "#fbe932", "#5c9eff", "#7ed21e"}

// ParseColor validates a hex color and returns it unchanged apart from
// surrounding whitespace.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if _, err := colorful.Hex(s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color(s), nil
}

// ParseColors parses a comma-separated color list. An empty string yields
// a nil slice so callers can fall back to DefaultColors.
func ParseColors(csv string) ([]Color, error) {
	if strings.TrimSpace(csv) == "" {
		return nil, nil
	}
	parts := strings.Split(csv, ",")
	if len(parts) > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidColorCount, len(parts))
	}
	out := make([]Color, 0, len(parts))
	for _, part := range parts {
		c, err := ParseColor(part)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// AssignColors expands 1 to 4 colors into exactly four by cyclic reuse:
// [a b c] becomes [a b c a], [a b] becomes [a b a b], [a] becomes [a a a a].
func AssignColors(colors []Color) ([4]Color, error) {
	var out [4]Color
	n := len(colors)
	if n < 1 || n > 4 {
		return out, fmt.Errorf("%w: got %d", ErrInvalidColorCount, n)
	}
	for i := range out {
		out[i] = colors[i%n]
	}
	return out, nil
}
