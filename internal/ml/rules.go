package ml

import (
	"math"

	"github.com/weatherintel/backend/internal/domain"
)

// temperatureBands are the six fixed, contiguous temperature categories.
// First match wins; the bands cover the whole real line.
var temperatureBands = []struct {
	upper float64 // exclusive
	key   string
	label string
}{
	{5, "extreme_cold", "Extreme Cold"},
	{15, "cold", "Cold"},
	{25, "normal", "Normal"},
	{30, "warm", "Warm"},
	{35, "hot", "Hot"},
	{math.Inf(1), "extreme_hot", "Extreme Hot"},
}

// ClassifyTemperature maps a temperature to its category band
func ClassifyTemperature(temp float64) domain.TemperatureCategory {
	for _, b := range temperatureBands {
		if temp < b.upper {
			return domain.TemperatureCategory{Key: b.key, Label: b.label}
		}
	}
	return domain.TemperatureCategory{Key: "normal", Label: "Normal"}
}

// clothingBands is the single source of truth for the seven clothing
// buckets on effective temperature. The rule-based recommendation, the
// learned classifier's label set, and the synthetic training labels all
// derive from this table so the two classifiers stay in lock-step.
var clothingBands = []struct {
	upper   float64 // exclusive, on effective temperature
	mlLabel string
	primary string
	items   []string
}{
	{5, "Heavy Jacket + Thermal", "Heavy Jacket + Thermal Sweater",
		[]string{"Thermal base layer", "Heavy insulated jacket", "Wool sweater", "Scarf & gloves", "Warm boots"}},
	{10, "Heavy Jacket", "Heavy Jacket",
		[]string{"Fleece sweater", "Heavy jacket", "Jeans or warm pants", "Warm socks"}},
	{20, "Light Jacket", "Light Jacket",
		[]string{"Light jacket or hoodie", "Long-sleeve shirt", "Comfortable trousers"}},
	{25, "Full Sleeve Shirt", "Full Sleeve Shirt",
		[]string{"Long-sleeve shirt or light sweater", "Jeans or chinos"}},
	{30, "T-Shirt & Jeans", "T-Shirt & Jeans",
		[]string{"T-shirt", "Light jeans or shorts", "Sneakers"}},
	{35, "Light Cotton", "Light Cotton Wear",
		[]string{"Breathable cotton t-shirt", "Shorts or light trousers", "Sunglasses"}},
	{math.Inf(1), "Summer Wear", "Summer Wear",
		[]string{"Lightweight linen/cotton", "Shorts", "Sun hat", "Sunglasses", "Sunscreen"}},
}

// ClothingClassCount is the number of clothing categories
const ClothingClassCount = 7

// effectiveTemperature applies the wind-chill adjustment used by both the
// rule heuristic and the synthetic-label generator.
func effectiveTemperature(temp, wind float64) float64 {
	return temp - wind*0.05
}

// clothingClassIndex buckets an effective temperature into 0..6
func clothingClassIndex(eff float64) int {
	for i, b := range clothingBands {
		if eff < b.upper {
			return i
		}
	}
	return ClothingClassCount - 1
}

// ClothingLabel returns the learned classifier's label for a class index
func ClothingLabel(class int) string {
	if class < 0 || class >= ClothingClassCount {
		return ""
	}
	return clothingBands[class].mlLabel
}

// ClothingFromTemp is the rule-based clothing heuristic: bucket the
// wind-adjusted effective temperature, then append a moisture-wicking note
// for humid heat.
func ClothingFromTemp(temp, wind, humidity float64) (primary string, items []string) {
	band := clothingBands[clothingClassIndex(effectiveTemperature(temp, wind))]
	primary = band.primary
	items = append([]string(nil), band.items...)
	if humidity > 75 && temp > 20 {
		items = append(items, "Moisture-wicking fabric recommended")
	}
	return primary, items
}
