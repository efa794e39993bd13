package turtle

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var hexColor = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}){1,2}$`)

// ResolveColor normalizes a textual color token. Named CSS colors come back
// as their lower-cased name, 3- and 6-digit hex tokens as the lower-cased
// token. Anything else fails with ErrInvalidColor carrying the input. Pure;
// safe for concurrent use.
func ResolveColor(token string) (string, error) {
	color := strings.ToLower(token)
	if _, ok := namedColors[color]; ok {
		return color, nil
	}
	if hexColor.MatchString(color) {
		return color, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColor, token)
}

// RGB composes a hex color from three components in [0,1]. Components are
// scaled to [0,255], truncated and rendered as uppercase hex pairs. This is
// the only numeric route into a color; everything else is a textual token.
func RGB(r, g, b float64) (string, error) {
	for _, v := range []float64{r, g, b} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return "", fmt.Errorf("%w: got %v", ErrRGBRange, v)
		}
	}
	return fmt.Sprintf("#%02X%02X%02X", int(r*255), int(g*255), int(b*255)), nil
}

// DecodeColor expands a resolved color string into RGBA components for
// renderers. transparent decodes to a fully transparent black; #rgb doubles
// each digit. The input must already have passed ResolveColor.
func DecodeColor(color string) (r, g, b, a uint8, err error) {
	c := strings.ToLower(color)
	if c == "transparent" {
		return 0, 0, 0, 0, nil
	}
	if hx, ok := namedColors[c]; ok {
		c = hx
	}
	if !hexColor.MatchString(c) {
		return 0, 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	digits := c[1:]
	if len(digits) == 3 {
		digits = string([]byte{digits[0], digits[0], digits[1], digits[1], digits[2], digits[2]})
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("%w: %q", ErrInvalidColor, color)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), 255, nil
}
