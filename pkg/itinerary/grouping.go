package itinerary

import (
	"sort"
)

// GroupByDay buckets items by DayNumber. Items keep their relative input order
// within a bucket and whatever day number they carry becomes the key.
func GroupByDay(items []Item) map[int][]Item {
	groups := make(map[int][]Item)
	for _, item := range items {
		groups[item.DayNumber] = append(groups[item.DayNumber], item)
	}
	return groups
}

// Days returns the keys of a grouping in ascending order.
func Days(groups map[int][]Item) []int {
	days := make([]int, 0, len(groups))
	for day := range groups {
		days = append(days, day)
	}
	sort.Ints(days)
	return days
}

// SortByStartTime returns a copy of items ordered by StartTime; ties keep input order.
func SortByStartTime(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartTime < out[j].StartTime
	})
	return out
}
