package model

import (
	"slices"
)

const emptyLocationReason = "a location must contain at least one attraction"

// Location groups attractions under a name. It never has an empty
// attraction set.
type Location struct {
	name        LocationName
	attractions []Name
}

// NewLocation builds a location from a non-empty set of attraction names.
func NewLocation(name LocationName, attractions []Name) (Location, error) {
	set := NameSet(attractions...)
	if len(set) == 0 {
		return Location{}, &InvariantViolationError{Entity: EntityLocation, Key: name.String(), Reason: emptyLocationReason}
	}
	return Location{name: name, attractions: set}, nil
}

func (l Location) Name() LocationName { return l.name }

// Attractions returns a copy of the referenced attraction names, sorted.
func (l Location) Attractions() []Name { return slices.Clone(l.attractions) }

// References reports whether the location contains n.
func (l Location) References(n Name) bool { return slices.Contains(l.attractions, n) }

// WithAttraction returns a copy that also references n.
func (l Location) WithAttraction(n Name) (Location, error) {
	if l.References(n) {
		return Location{}, &DuplicateReferenceError{Location: l.name, Attraction: n}
	}
	return NewLocation(l.name, append(l.Attractions(), n))
}

// WithoutAttraction returns a copy that no longer references n. Removing the
// last reference fails and leaves l as it was.
func (l Location) WithoutAttraction(n Name) (Location, error) {
	if !l.References(n) {
		return Location{}, &NotFoundError{Entity: "attraction in location " + l.name.String(), Key: n.String()}
	}
	remaining := slices.DeleteFunc(l.Attractions(), func(existing Name) bool { return existing == n })
	return NewLocation(l.name, remaining)
}

// SameLocation compares location names ignoring case.
func SameLocation(a, b Location) bool { return a.name.SameAs(b.name) }

// EqualLocations reports an exact name match and identical reference sets.
func EqualLocations(a, b Location) bool {
	return a.name == b.name && slices.Equal(a.attractions, b.attractions)
}

func (l Location) String() string {
	return l.name.String() + "; Attractions: " + joinStrings(l.attractions, ", ")
}
