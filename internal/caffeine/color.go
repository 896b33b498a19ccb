package caffeine

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf16"
)

const defaultBrandColor = "#CCCCCC"

var brandColors = map[string]string{
	"purdeys":  "green",
	"red bull": "#00008B",
	"celsius":  "#EFEFEF",
}

// BrandColor returns the chart colour for a brand. Known brands have a fixed
// colour; everything else gets a stable hue derived from its name so that the
// dashboard renders the same brand the same way on every load.
func BrandColor(name string) string {
	if name == "" {
		return defaultBrandColor
	}
	if c, ok := brandColors[strings.ToLower(name)]; ok {
		return c
	}
	return hashColor(name)
}

// hashColor folds name into a hue with the web dashboard's hash: UTF-16 code
// units, a 32-bit shift of the running total, accumulation in float64.
func hashColor(name string) string {
	var hash float64
	for _, c := range utf16.Encode([]rune(name)) {
		shifted := int32(int64(hash)) << 5
		hash = float64(c) + (float64(shifted) - hash)
	}
	hue := int64(math.Abs(hash)) % 360
	return fmt.Sprintf("hsl(%d, 80%%, 60%%)", hue)
}
