// Package syntax defines the prefix vocabulary of the command language and
// the tokenizer that splits an argument string on those prefixes.
package syntax

// Prefix marks the start of a field value in command text, e.g. "n/".
type Prefix string

func (p Prefix) String() string { return string(p) }

// Attraction fields.
const (
	PrefixName         Prefix = "n/"
	PrefixPriority     Prefix = "p/"
	PrefixContact      Prefix = "c/"
	PrefixAddress      Prefix = "a/"
	PrefixActivities   Prefix = "act/"
	PrefixOpeningHours Prefix = "h/"
	PrefixPrice        Prefix = "pr/"
	PrefixTag          Prefix = "t/"
	PrefixComment      Prefix = "com/"
)

// Itinerary and location fields.
const (
	PrefixItineraryAttraction Prefix = "ai/"
	PrefixLocationName        Prefix = "ln/"
	PrefixLocationAttraction  Prefix = "i/"
	PrefixAction              Prefix = "action/"
)

// AttractionPrefixes are the prefixes accepted by add and edit, in the order
// their values are validated.
var AttractionPrefixes = []Prefix{
	PrefixName,
	PrefixPriority,
	PrefixContact,
	PrefixAddress,
	PrefixActivities,
	PrefixOpeningHours,
	PrefixPrice,
	PrefixTag,
}
