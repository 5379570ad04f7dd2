package model

import "slices"

// UniqueList is an insertion-ordered sequence that never holds two elements
// with the same identity. Full equality is used to locate elements for
// removal and replacement.
type UniqueList[T any] struct {
	entity string
	same   func(a, b T) bool
	equal  func(a, b T) bool
	key    func(T) string
	items  []T
}

// NewUniqueList creates an empty list. same decides identity, equal decides
// full equality and key renders an element's identity for error messages.
func NewUniqueList[T any](entity string, same, equal func(a, b T) bool, key func(T) string) *UniqueList[T] {
	return &UniqueList[T]{entity: entity, same: same, equal: equal, key: key}
}

// Contains reports whether an element with the same identity as x is present.
func (l *UniqueList[T]) Contains(x T) bool {
	return slices.ContainsFunc(l.items, func(item T) bool { return l.same(item, x) })
}

// Add appends x, failing if its identity is already taken.
func (l *UniqueList[T]) Add(x T) error {
	if l.Contains(x) {
		return &DuplicateIdentityError{Entity: l.entity, Key: l.key(x)}
	}
	l.items = append(l.items, x)
	return nil
}

// Set replaces target with edited at the same position. It fails if target
// is absent or if edited's identity belongs to a different element.
func (l *UniqueList[T]) Set(target, edited T) error {
	i := slices.IndexFunc(l.items, func(item T) bool { return l.equal(item, target) })
	if i < 0 {
		return &NotFoundError{Entity: l.entity, Key: l.key(target)}
	}
	if !l.same(target, edited) && l.Contains(edited) {
		return &DuplicateIdentityError{Entity: l.entity, Key: l.key(edited)}
	}
	l.items[i] = edited
	return nil
}

// Remove deletes the element fully equal to x.
func (l *UniqueList[T]) Remove(x T) error {
	i := slices.IndexFunc(l.items, func(item T) bool { return l.equal(item, x) })
	if i < 0 {
		return &NotFoundError{Entity: l.entity, Key: l.key(x)}
	}
	l.items = slices.Delete(l.items, i, i+1)
	return nil
}

// FindFunc returns the first element satisfying match.
func (l *UniqueList[T]) FindFunc(match func(T) bool) (T, bool) {
	i := slices.IndexFunc(l.items, match)
	if i < 0 {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// SetAll replaces the contents, failing without change if xs repeats an identity.
func (l *UniqueList[T]) SetAll(xs []T) error {
	for i := range xs {
		for j := i + 1; j < len(xs); j++ {
			if l.same(xs[i], xs[j]) {
				return &DuplicateIdentityError{Entity: l.entity, Key: l.key(xs[j])}
			}
		}
	}
	l.items = slices.Clone(xs)
	return nil
}

// All returns a copy of the elements in insertion order.
func (l *UniqueList[T]) All() []T { return slices.Clone(l.items) }

// Len returns the number of elements.
func (l *UniqueList[T]) Len() int { return len(l.items) }

// Clear removes every element.
func (l *UniqueList[T]) Clear() { l.items = nil }

// NewAttractionList returns a list unique by attraction name.
func NewAttractionList() *UniqueList[Attraction] {
	return NewUniqueList(EntityAttraction, SameAttraction, EqualAttractions,
		func(a Attraction) string { return a.Name().String() })
}

// NewItineraryList returns a list unique by itinerary name.
func NewItineraryList() *UniqueList[Itinerary] {
	return NewUniqueList(EntityItinerary, SameItinerary, EqualItineraries,
		func(it Itinerary) string { return it.Name().String() })
}

// NewLocationList returns a list unique by case-insensitive location name.
func NewLocationList() *UniqueList[Location] {
	return NewUniqueList(EntityLocation, SameLocation, EqualLocations,
		func(l Location) string { return l.Name().String() })
}
