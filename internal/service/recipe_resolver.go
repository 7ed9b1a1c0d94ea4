package service

import (
	"sort"
	"strings"
)

// resolveRecipe matches a free-text dish name against the recipe keys using
// bidirectional substring containment ("peanut butter sandwich" matches the
// "sandwich" recipe and vice versa). Keys are scanned in sorted order so the
// first match is deterministic regardless of map iteration.
func resolveRecipe(recipes map[string][]string, dishName string) (string, []string) {
	dish := strings.ToLower(strings.TrimSpace(dishName))
	if dish == "" {
		return "", nil
	}

	keys := make([]string, 0, len(recipes))
	for k := range recipes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		k := strings.ToLower(key)
		if strings.Contains(dish, k) || strings.Contains(k, dish) {
			return key, recipes[key]
		}
	}
	return "", nil
}
