package commands

import (
	"fmt"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/model"
)

// Messages shared by several commands.
const (
	MessageInvalidAttractionDisplayedIndex = "The attraction index provided is invalid"
	MessageInvalidItineraryDisplayedIndex  = "The itinerary index provided is invalid"
	MessageAttractionsListedOverview       = "%d attractions listed!"
)

// Command is one parsed, validated operation against the catalog.
// Execute either applies the whole operation or leaves c unchanged.
type Command interface {
	Execute(c *catalog.Catalog) (Result, error)
}

// View names the list a UI should show after a command.
type View string

const (
	ViewAttractions View = "attractions"
	ViewItineraries View = "itineraries"
	ViewLocations   View = "locations"
)

// Result is the outcome of a successful command. The flags describe effects
// the caller is expected to carry out; commands never act on them.
type Result struct {
	Feedback string
	View     View

	ShowHelp    bool
	ShowHistory bool
	Exit        bool

	// ShowDetail asks for the attraction at Detail to be shown in full.
	ShowDetail bool
	Detail     Index

	// Export is set when an itinerary should be written out.
	Export *model.Itinerary
}

// Index is a zero-based position in a displayed list.
type Index int

// FromOneBased converts a user-facing position.
func FromOneBased(n int) Index { return Index(n - 1) }

// ZeroBased returns the position as a slice index.
func (i Index) ZeroBased() int { return int(i) }

// OneBased returns the position as shown to users.
func (i Index) OneBased() int { return int(i) + 1 }

// Error is an execution failure that carries only a message for the user,
// such as an index past the end of the displayed list.
type Error struct {
	Message string
}

func (e *Error) Error() string { return e.Message }

func errorf(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

func attractionAt(c *catalog.Catalog, i Index) (model.Attraction, error) {
	shown := c.FilteredAttractions()
	if i.ZeroBased() < 0 || i.ZeroBased() >= len(shown) {
		return model.Attraction{}, &Error{Message: MessageInvalidAttractionDisplayedIndex}
	}
	return shown[i.ZeroBased()], nil
}

func itineraryAt(c *catalog.Catalog, i Index) (model.Itinerary, error) {
	shown := c.FilteredItineraries()
	if i.ZeroBased() < 0 || i.ZeroBased() >= len(shown) {
		return model.Itinerary{}, &Error{Message: MessageInvalidItineraryDisplayedIndex}
	}
	return shown[i.ZeroBased()], nil
}

// attractionsAt resolves every index before anything is changed.
func attractionsAt(c *catalog.Catalog, indexes []Index) ([]model.Attraction, error) {
	out := make([]model.Attraction, 0, len(indexes))
	for _, i := range indexes {
		a, err := attractionAt(c, i)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
