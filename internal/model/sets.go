package model

import (
	"slices"
	"strings"
)

// TagSet returns tags deduplicated and sorted, the canonical form stored on
// an attraction.
func TagSet(tags ...Tag) []Tag {
	return canonicalSet(tags, func(t Tag) string { return t.value })
}

// CommentSet returns comments deduplicated and sorted.
func CommentSet(comments ...Comment) []Comment {
	return canonicalSet(comments, func(c Comment) string { return c.value })
}

// NameSet returns attraction names deduplicated and sorted.
func NameSet(names ...Name) []Name {
	return canonicalSet(names, func(n Name) string { return n.value })
}

func canonicalSet[T comparable](items []T, key func(T) string) []T {
	out := slices.Clone(items)
	slices.SortFunc(out, func(a, b T) int { return strings.Compare(key(a), key(b)) })
	return slices.Compact(out)
}

func joinStrings[T interface{ String() string }](items []T, sep string) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.String()
	}
	return strings.Join(parts, sep)
}
