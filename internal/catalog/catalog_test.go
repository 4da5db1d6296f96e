package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bytetrack/backend/internal/types"
)

func TestSearchEmptyQueryReturnsFullCatalog(t *testing.T) {
	foods := Search("", "")

	require.Len(t, foods, 20)
	assert.Equal(t, Size(), len(foods))

	// stable insertion order
	assert.Equal(t, "th_1", foods[0].ID)
	assert.Equal(t, "th_20", foods[19].ID)
}

func TestSearchByName(t *testing.T) {
	foods := Search("curry", "")

	require.Len(t, foods, 2)
	assert.Equal(t, "th_3", foods[0].ID)
	assert.Equal(t, "th_13", foods[1].ID)

	// case-insensitive against the English name
	assert.Equal(t, foods, Search("CURRY", ""))
}

func TestSearchByThaiName(t *testing.T) {
	foods := Search("ต้มยำ", "")

	require.Len(t, foods, 1)
	assert.Equal(t, "Tom Yum Goong", foods[0].NameEn)
}

func TestSearchByCategory(t *testing.T) {
	foods := Search("", "noodles")

	require.Len(t, foods, 3)
	for _, item := range foods {
		assert.Equal(t, "noodles", item.Category)
	}

	// "all" behaves like no filter
	assert.Len(t, Search("", "all"), 20)
}

func TestSearchCategoryAndQueryCombined(t *testing.T) {
	foods := Search("chicken", "curry")

	require.Len(t, foods, 2)
	for _, item := range foods {
		assert.Equal(t, "curry", item.Category)
		assert.True(t, strings.Contains(item.NameEn, "Chicken"))
	}
}

func TestSearchNoMatches(t *testing.T) {
	foods := Search("xyzzznonexistent", "")

	assert.NotNil(t, foods)
	assert.Empty(t, foods)
}

func TestSearchReturnsFreshSlice(t *testing.T) {
	first := Search("", "")
	first[0].Name = "mutated"

	second := Search("", "")
	assert.Equal(t, "ข้าวผัดกุ้ง", second[0].Name)
}

func TestByID(t *testing.T) {
	item, ok := ByID("th_4")
	require.True(t, ok)
	assert.Equal(t, "Tom Yum Goong", item.NameEn)
	assert.Equal(t, types.FoodSourceLocal, item.Source)
	assert.Equal(t, 120, item.Nutrition.Calories)

	_, ok = ByID("off_12345")
	assert.False(t, ok)
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	for _, item := range All() {
		assert.True(t, strings.HasPrefix(item.ID, "th_"), "id %s", item.ID)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.NameEn)
		assert.NotEmpty(t, item.Category)
		assert.Greater(t, item.Nutrition.Calories, 0)
		assert.Greater(t, item.Nutrition.ServingSize, 0.0)
		assert.Equal(t, "g", item.Nutrition.ServingUnit)
		assert.Equal(t, types.FoodSourceLocal, item.Source)
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()

	require.Len(t, cats, 9)
	assert.Equal(t, "all", cats[0].ID)

	// every catalog entry carries a known category tag
	known := make(map[string]bool, len(cats))
	for _, c := range cats {
		known[c.ID] = true
	}
	for _, item := range All() {
		assert.True(t, known[item.Category], "category %s", item.Category)
	}
}
