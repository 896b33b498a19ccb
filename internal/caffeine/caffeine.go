package caffeine

import (
	"fmt"
	"math"
)

// UnknownBrand is shown in drink listings when a drink's brand_id no longer resolves.
const UnknownBrand = "Unknown Brand"

// MaxServingMg bounds a serving's caffeine so it fits the stored integer column.
const MaxServingMg = math.MaxInt32

// ServingInRange reports whether CaffeineMg(per100ml, sizeMl) is a finite,
// non-negative value no larger than MaxServingMg.
func ServingInRange(per100ml float64, sizeMl int) bool {
	mg := per100ml * float64(sizeMl) / 100
	return !math.IsNaN(mg) && mg >= 0 && mg <= MaxServingMg
}

// CaffeineMg returns the caffeine content of a serving, truncated to whole milligrams.
func CaffeineMg(per100ml float64, sizeMl int) int {
	return int(per100ml * float64(sizeMl) / 100)
}

// Per100ml recovers the caffeine concentration from a stored serving total.
func Per100ml(caffeineMg, sizeMl int) float64 {
	if sizeMl <= 0 {
		return 0
	}
	return float64(caffeineMg) * 100 / float64(sizeMl)
}

// DisplayName formats a drink as "{brand} {flavour} {size}ml".
func DisplayName(brand, flavour string, sizeMl int) string {
	return fmt.Sprintf("%s %s %dml", brand, flavour, sizeMl)
}
