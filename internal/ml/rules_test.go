package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyTemperatureBands(t *testing.T) {
	tests := []struct {
		temp float64
		key  string
	}{
		{-30, "extreme_cold"},
		{4.9, "extreme_cold"},
		{5, "cold"},
		{14.9, "cold"},
		{15, "normal"},
		{24.9, "normal"},
		{25, "warm"},
		{29.9, "warm"},
		{30, "hot"},
		{34.9, "hot"},
		{35, "extreme_hot"},
		{50, "extreme_hot"},
	}
	for _, tc := range tests {
		got := ClassifyTemperature(tc.temp)
		assert.Equal(t, tc.key, got.Key, "temp %.1f", tc.temp)
		assert.NotEmpty(t, got.Label)
	}
}

func TestClothingClassIndexBoundaries(t *testing.T) {
	tests := []struct {
		eff  float64
		want int
	}{
		{-10, 0},
		{4.9, 0},
		{5, 1},
		{9.9, 1},
		{10, 2},
		{19.9, 2},
		{20, 3},
		{24.9, 3},
		{25, 4},
		{29.9, 4},
		{30, 5},
		{34.9, 5},
		{35, 6},
		{45, 6},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, clothingClassIndex(tc.eff), "eff %.1f", tc.eff)
	}
}

func TestEffectiveTemperature(t *testing.T) {
	assert.InDelta(t, 37.5, effectiveTemperature(38, 10), 1e-9)
	assert.InDelta(t, 20.0, effectiveTemperature(20, 0), 1e-9)
	// Strong wind pushes the bucket down a band
	assert.Equal(t, 2, clothingClassIndex(effectiveTemperature(21, 40)))
}

func TestClothingLabel(t *testing.T) {
	assert.Equal(t, "Heavy Jacket + Thermal", ClothingLabel(0))
	assert.Equal(t, "T-Shirt & Jeans", ClothingLabel(4))
	assert.Equal(t, "Summer Wear", ClothingLabel(6))
	assert.Equal(t, "", ClothingLabel(-1))
	assert.Equal(t, "", ClothingLabel(7))
}

func TestClothingFromTemp(t *testing.T) {
	primary, items := ClothingFromTemp(38, 10, 30)
	assert.Equal(t, "Summer Wear", primary)
	assert.NotEmpty(t, items)
	assert.NotContains(t, items, "Moisture-wicking fabric recommended")

	// Humid heat adds the moisture-wicking note
	_, humid := ClothingFromTemp(28, 5, 85)
	assert.Contains(t, humid, "Moisture-wicking fabric recommended")

	// Humid but cold does not
	_, cold := ClothingFromTemp(10, 5, 90)
	assert.NotContains(t, cold, "Moisture-wicking fabric recommended")

	primary, items = ClothingFromTemp(-8, 20, 50)
	assert.Equal(t, "Heavy Jacket + Thermal Sweater", primary)
	assert.Contains(t, items, "Thermal base layer")
}

func TestClothingFromTempDoesNotShareItemSlices(t *testing.T) {
	_, items := ClothingFromTemp(22, 0, 80)
	before := len(items)
	items = append(items, "extra")
	_ = items

	_, again := ClothingFromTemp(22, 0, 50)
	assert.LessOrEqual(t, len(again), before)
}
