package catalog

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/aidanlsb/tripbook/internal/model"
)

// Predicate selects the elements shown in a view.
type Predicate[T any] func(T) bool

// Comparator orders the elements of a view. Views sort stably, so elements
// that compare equal keep their insertion order.
type Comparator[T any] func(a, b T) int

// SortKey names a reusable attraction ordering.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByPriority SortKey = "priority"
	SortByPrice    SortKey = "price"
	SortNone       SortKey = "none"
)

// SortKeys lists the accepted sort keys in display order.
var SortKeys = []SortKey{SortByName, SortByPriority, SortByPrice, SortNone}

// ByName orders attractions by name, ascending and case-sensitive.
func ByName(a, b model.Attraction) int {
	return strings.Compare(a.Name().String(), b.Name().String())
}

// ByPriorityDesc orders attractions from highest to lowest priority.
func ByPriorityDesc(a, b model.Attraction) int {
	return cmp.Compare(b.Priority().Value(), a.Priority().Value())
}

// ByPriceDesc orders attractions from most to least expensive. The currency
// is ignored; attractions without a price count as zero.
func ByPriceDesc(a, b model.Attraction) int {
	return cmp.Compare(b.Price().Amount(), a.Price().Amount())
}

// ComparatorFor returns the comparator registered under key. SortNone maps to
// a nil comparator, which restores insertion order.
func ComparatorFor(key SortKey) (Comparator[model.Attraction], error) {
	switch key {
	case SortByName:
		return ByName, nil
	case SortByPriority:
		return ByPriorityDesc, nil
	case SortByPrice:
		return ByPriceDesc, nil
	case SortNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown sort key %q", key)
	}
}

// NameContainsAny matches attractions whose name contains any keyword,
// ignoring case. No keywords matches nothing.
func NameContainsAny(keywords []string) Predicate[model.Attraction] {
	match := containsAny(keywords)
	return func(a model.Attraction) bool { return match(a.Name().String()) }
}

func containsAny(keywords []string) func(string) bool {
	lowered := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k = strings.TrimSpace(k); k != "" {
			lowered = append(lowered, strings.ToLower(k))
		}
	}
	return func(s string) bool {
		s = strings.ToLower(s)
		for _, k := range lowered {
			if strings.Contains(s, k) {
				return true
			}
		}
		return false
	}
}
