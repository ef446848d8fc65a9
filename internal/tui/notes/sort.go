package notes

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
)

type sortField int

const (
	sortByTitle sortField = iota
	sortBySubdir
	sortByModifiedAt
)

type sortOrder int

const (
	ascending sortOrder = iota
	descending
)

func sortItems(items []ListItem, field sortField, order sortOrder) []list.Item {
	sortedItems := make([]ListItem, len(items))
	copy(sortedItems, items)

	sort.Slice(sortedItems, func(i, j int) bool {
		cmp := 0
		switch field {
		case sortByTitle:
			cmp = strings.Compare(
				strings.ToLower(sortedItems[i].Title()),
				strings.ToLower(sortedItems[j].Title()),
			)
		case sortBySubdir:
			cmp = strings.Compare(
				sortedItems[i].subdirectory,
				sortedItems[j].subdirectory,
			)
		case sortByModifiedAt:
			ti, tj := sortedItems[i].modifiedAt, sortedItems[j].modifiedAt
			if ti.Before(tj) {
				cmp = -1
			} else if tj.Before(ti) {
				cmp = 1
			}
		}

		if order == descending {
			return cmp > 0
		}
		return cmp < 0
	})

	listItems := make([]list.Item, len(sortedItems))
	for i, item := range sortedItems {
		listItems[i] = item
	}

	return listItems
}
