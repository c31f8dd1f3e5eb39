package browse

import (
	"fmt"
	"sort"
	"strings"
)

type SortKey int

const (
	SortByName SortKey = iota
	SortBySize
	SortByType
)

func (k SortKey) String() string {
	switch k {
	case SortBySize:
		return "Size"
	case SortByType:
		return "Type"
	default:
		return "Name"
	}
}

func ParseSortKey(raw string) (SortKey, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "name":
		return SortByName, nil
	case "size":
		return SortBySize, nil
	case "type":
		return SortByType, nil
	default:
		return SortByName, fmt.Errorf("unknown sort column %q (want name, size or type)", raw)
	}
}

type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "Descending"
	}
	return "Ascending"
}

func (o Order) Toggle() Order {
	if o == Descending {
		return Ascending
	}
	return Descending
}

// SortEntries orders entries in place. Ties fall back to the relative path so the
// result is stable across refreshes.
func SortEntries(entries []Entry, key SortKey, order Order) {
	sort.SliceStable(entries, func(i, j int) bool {
		left := entries[i]
		right := entries[j]
		if order == Descending {
			left, right = right, left
		}
		switch key {
		case SortBySize:
			if left.Size != right.Size {
				return left.Size < right.Size
			}
		case SortByType:
			lt, rt := left.Type(), right.Type()
			if lt != rt {
				return lt < rt
			}
		}
		return strings.ToLower(left.RelPath) < strings.ToLower(right.RelPath)
	})
}
