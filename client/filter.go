package client

import (
	"strings"

	"github.com/Likhithagandham/Digital-Cafe/models"
)

// CategoryAll matches every category in the filter bar.
const CategoryAll = "All"

// FilterMenu derives the visible menu from the full menu and the two filter
// inputs: case-insensitive substring match on name, exact match on category.
// Recomputed from scratch on every call; a cafe's menu is small enough.
func FilterMenu(menu []models.MenuItem, searchTerm, category string) []models.MenuItem {
	search := strings.ToLower(searchTerm)

	filtered := []models.MenuItem{}
	for _, item := range menu {
		name := ""
		if item.Name != nil {
			name = *item.Name
		}
		if !strings.Contains(strings.ToLower(name), search) {
			continue
		}

		if category != CategoryAll {
			itemCategory := ""
			if item.Category != nil {
				itemCategory = *item.Category
			}
			if itemCategory != category {
				continue
			}
		}

		filtered = append(filtered, item)
	}
	return filtered
}
