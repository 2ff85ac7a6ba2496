package util

import "strings"

func RemoveDuplicateStrings(items []string, ignoreList []string) []string {
	presentStrings := make(map[string]bool)
	var list []string

	for _, ignoreString := range ignoreList {
		presentStrings[ignoreString] = true
	}

	for _, item := range items {
		if _, value := presentStrings[item]; !value && item != "" {
			presentStrings[item] = true
			list = append(list, item)
		}
	}
	return list
}

// SplitList splits a comma separated query value, trimming each item and dropping blanks
func SplitList(value string) []string {
	items := strings.Split(value, ",")

	for i := range items {
		items[i] = strings.TrimSpace(items[i])
	}

	InPlaceFilter(&items, func(item string) bool {
		return item != ""
	})

	return items
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s string, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
