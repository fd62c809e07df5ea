package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFoods_PortionLabelsAndWeights(t *testing.T) {
	foods := catalogFoods()
	require.Len(t, foods, 3)

	byName := make(map[string]map[string]float64)
	for _, food := range foods {
		portions := make(map[string]float64, len(food.Portions))
		for _, portion := range food.Portions {
			portions[portion.Label] = portion.Grams
		}
		byName[food.Name] = portions
	}

	assert.Equal(t, map[string]float64{
		"100g":           100,
		"1 cup (cooked)": 158,
		"1 bowl":         200,
		"1 serving":      150,
	}, byName["Rice"])

	assert.Equal(t, map[string]float64{
		"1 small (40g)":  40,
		"1 medium (50g)": 50,
		"1 large (60g)":  60,
	}, byName["Chapati"])

	assert.Equal(t, map[string]float64{
		"100g":             100,
		"1 piece (150g)":   150,
		"1 serving (200g)": 200,
	}, byName["Chicken Breast"])
}

func TestCatalogFoods_MacroBaselines(t *testing.T) {
	foods := catalogFoods()
	require.Len(t, foods, 3)

	rice := foods[0]
	assert.Equal(t, "Rice", rice.Name)
	assert.InDelta(t, 130, rice.CaloriesPer100g, 0.001)
	assert.InDelta(t, 2.7, rice.ProteinPer100g, 0.001)
	assert.InDelta(t, 28.2, rice.CarbsPer100g, 0.001)
	assert.InDelta(t, 0.3, rice.FatPer100g, 0.001)
}
