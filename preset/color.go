package preset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// EncodeColorToken serializes a color as "r,g,b" with three decimals per
// channel, locale-independent.
func EncodeColorToken(c PaintColor) string {
	return fmt.Sprintf("%.3f,%.3f,%.3f", c.R, c.G, c.B)
}

// ParseColorToken decodes an "r,g,b" token. The format accepts both
// normalized and 0-255 authoring conventions: a component greater than 1 is
// treated as an 8-bit channel and divided by 255. Unparsable components
// default to 0, negatives clamp to 0, missing components stay 0. Never fails.
func ParseColorToken(token string) PaintColor {
	var c PaintColor
	for i, component := range strings.Split(token, ",") {
		if i >= 3 {
			break
		}
		value, err := strconv.ParseFloat(trimLine(component), 64)
		// ParseFloat accepts "nan", which no range check below catches.
		if err != nil || math.IsNaN(value) {
			value = 0
		}
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value /= 255.0
		}
		value = clamp01(value)
		switch i {
		case 0:
			c.R = value
		case 1:
			c.G = value
		case 2:
			c.B = value
		}
	}
	return c
}
