package model

import (
	"slices"
	"strings"
	"time"
)

// Itinerary is a named, timestamped, ordered trip plan. It holds attraction
// values; the catalog keeps them in step with identity-preserving edits.
type Itinerary struct {
	name        ItineraryName
	createdAt   time.Time
	attractions []Attraction
}

// NewItinerary builds an itinerary. The attractions must have distinct names.
func NewItinerary(name ItineraryName, createdAt time.Time, attractions []Attraction) (Itinerary, error) {
	list := NewAttractionList()
	if err := list.SetAll(attractions); err != nil {
		return Itinerary{}, err
	}
	return Itinerary{name: name, createdAt: createdAt, attractions: list.All()}, nil
}

func (it Itinerary) Name() ItineraryName  { return it.name }
func (it Itinerary) CreatedAt() time.Time { return it.createdAt }

// Attractions returns a copy of the attractions in visiting order.
func (it Itinerary) Attractions() []Attraction { return slices.Clone(it.attractions) }

// AttractionNames returns the names of the attractions in visiting order.
func (it Itinerary) AttractionNames() []Name {
	names := make([]Name, len(it.attractions))
	for i, a := range it.attractions {
		names[i] = a.Name()
	}
	return names
}

// References reports whether the itinerary contains an attraction named n.
func (it Itinerary) References(n Name) bool {
	return slices.ContainsFunc(it.attractions, func(a Attraction) bool { return a.Name() == n })
}

// WithAttraction returns a copy in which the attraction sharing a's identity is
// replaced by a. The itinerary is returned unchanged if it has no such attraction.
func (it Itinerary) WithAttraction(a Attraction) Itinerary {
	out := it
	out.attractions = slices.Clone(it.attractions)
	for i, existing := range out.attractions {
		if SameAttraction(existing, a) {
			out.attractions[i] = a
		}
	}
	return out
}

// SameItinerary reports whether a and b share a name.
func SameItinerary(a, b Itinerary) bool { return a.name == b.name }

// EqualItineraries reports full equality, including attraction order.
func EqualItineraries(a, b Itinerary) bool {
	return a.name == b.name &&
		a.createdAt.Equal(b.createdAt) &&
		slices.EqualFunc(a.attractions, b.attractions, EqualAttractions)
}

func (it Itinerary) String() string {
	var sb strings.Builder
	sb.WriteString(it.name.String())
	sb.WriteString("; Created: " + it.createdAt.Format(time.DateTime))
	sb.WriteString("; Attractions: ")
	names := it.AttractionNames()
	if len(names) == 0 {
		sb.WriteString("(none)")
	} else {
		sb.WriteString(joinStrings(names, ", "))
	}
	return sb.String()
}
