package client

import (
	"testing"

	"github.com/Likhithagandham/Digital-Cafe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() []models.MenuItem {
	items := []struct {
		name     string
		category string
	}{
		{"Green Tea", models.CategoryBeverages},
		{"Iced TEA Latte", models.CategoryBeverages},
		{"Tiramisu", models.CategoryDesserts},
		{"Cheesecake", models.CategoryDesserts},
		{"Steak", models.CategoryMainCourse},
	}

	menu := make([]models.MenuItem, 0, len(items))
	for _, it := range items {
		menu = append(menu, menuItem(it.name, 5.0))
		category := it.category
		menu[len(menu)-1].Category = &category
	}
	return menu
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	filtered := FilterMenu(testMenu(), "tea", CategoryAll)

	require.Len(t, filtered, 2)
	assert.Equal(t, "Green Tea", *filtered[0].Name)
	assert.Equal(t, "Iced TEA Latte", *filtered[1].Name)
}

func TestFilterByCategoryOnly(t *testing.T) {
	filtered := FilterMenu(testMenu(), "", models.CategoryDesserts)

	require.Len(t, filtered, 2)
	assert.Equal(t, "Tiramisu", *filtered[0].Name)
	assert.Equal(t, "Cheesecake", *filtered[1].Name)
}

func TestFilterCombinesSearchAndCategory(t *testing.T) {
	filtered := FilterMenu(testMenu(), "tea", models.CategoryDesserts)
	assert.Empty(t, filtered)

	filtered = FilterMenu(testMenu(), "steak", models.CategoryMainCourse)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Steak", *filtered[0].Name)
}

func TestFilterAllWithEmptySearchReturnsEverything(t *testing.T) {
	menu := testMenu()
	assert.Len(t, FilterMenu(menu, "", CategoryAll), len(menu))
}
