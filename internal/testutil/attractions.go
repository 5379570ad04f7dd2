// Package testutil provides reusable fixtures for tripbook tests.
package testutil

import (
	"testing"
	"time"

	"github.com/aidanlsb/tripbook/internal/model"
)

// AttractionBuilder assembles attractions from raw strings, failing the test
// on invalid input.
type AttractionBuilder struct {
	t      testing.TB
	fields map[string]string
	tags   []string
	notes  []string
}

// NewAttraction starts a builder with valid defaults for the required fields.
func NewAttraction(t testing.TB, name string) *AttractionBuilder {
	t.Helper()
	return &AttractionBuilder{
		t: t,
		fields: map[string]string{
			"name":     name,
			"priority": "5",
			"contact":  "hello@example.com",
			"address":  "1 Example Street",
		},
	}
}

func (b *AttractionBuilder) WithPriority(p string) *AttractionBuilder { return b.with("priority", p) }
func (b *AttractionBuilder) WithContact(c string) *AttractionBuilder  { return b.with("contact", c) }
func (b *AttractionBuilder) WithAddress(a string) *AttractionBuilder  { return b.with("address", a) }
func (b *AttractionBuilder) WithActivities(a string) *AttractionBuilder {
	return b.with("activities", a)
}
func (b *AttractionBuilder) WithHours(h string) *AttractionBuilder { return b.with("hours", h) }
func (b *AttractionBuilder) WithPrice(p string) *AttractionBuilder { return b.with("price", p) }

// WithTags replaces the tag set.
func (b *AttractionBuilder) WithTags(tags ...string) *AttractionBuilder {
	b.tags = tags
	return b
}

// WithComments replaces the comment set.
func (b *AttractionBuilder) WithComments(comments ...string) *AttractionBuilder {
	b.notes = comments
	return b
}

func (b *AttractionBuilder) with(key, value string) *AttractionBuilder {
	b.fields[key] = value
	return b
}

// Build validates every field and returns the attraction.
func (b *AttractionBuilder) Build() model.Attraction {
	b.t.Helper()
	var (
		f   model.AttractionFields
		err error
	)
	f.Name, err = model.NewName(b.fields["name"])
	fatalIf(b.t, err)
	f.Priority, err = model.NewPriority(b.fields["priority"])
	fatalIf(b.t, err)
	f.Contact, err = model.NewContact(b.fields["contact"])
	fatalIf(b.t, err)
	f.Address, err = model.NewAddress(b.fields["address"])
	fatalIf(b.t, err)
	if v, ok := b.fields["activities"]; ok {
		f.Activities, err = model.NewActivities(v)
		fatalIf(b.t, err)
	}
	if v, ok := b.fields["hours"]; ok {
		f.OpeningHours, err = model.NewOpeningHours(v)
		fatalIf(b.t, err)
	}
	if v, ok := b.fields["price"]; ok {
		f.Price, err = model.NewPrice(v)
		fatalIf(b.t, err)
	}
	for _, raw := range b.tags {
		tag, err := model.NewTag(raw)
		fatalIf(b.t, err)
		f.Tags = append(f.Tags, tag)
	}
	for _, raw := range b.notes {
		comment, err := model.NewComment(raw)
		fatalIf(b.t, err)
		f.Comments = append(f.Comments, comment)
	}
	return model.NewAttraction(f)
}

// Alice and Benson mirror the two-attraction catalog used across command tests.
func Alice(t testing.TB) model.Attraction {
	return NewAttraction(t, "Alice").
		WithPriority("9").
		WithContact("alice@example.com").
		WithAddress("123 Jurong West Ave 6").
		WithActivities("Wonderland tour").
		WithHours("09:00-18:00").
		WithPrice("$25").
		WithTags("friends").
		Build()
}

func Benson(t testing.TB) model.Attraction {
	return NewAttraction(t, "Benson").
		WithPriority("8").
		WithContact("98765432").
		WithAddress("311 Clementi Ave 2").
		WithPrice("12 SGD").
		WithTags("owesMoney", "friends").
		Build()
}

func Carl(t testing.TB) model.Attraction {
	return NewAttraction(t, "Carl").
		WithPriority("8").
		WithContact("carl@example.com").
		WithAddress("Wall Street").
		WithPrice("40").
		Build()
}

// Name parses a name, failing the test on error.
func Name(t testing.TB, s string) model.Name {
	t.Helper()
	n, err := model.NewName(s)
	fatalIf(t, err)
	return n
}

// LocationName parses a location name, failing the test on error.
func LocationName(t testing.TB, s string) model.LocationName {
	t.Helper()
	n, err := model.NewLocationName(s)
	fatalIf(t, err)
	return n
}

// Location builds a location referencing the named attractions.
func Location(t testing.TB, name string, attractions ...string) model.Location {
	t.Helper()
	names := make([]model.Name, len(attractions))
	for i, a := range attractions {
		names[i] = Name(t, a)
	}
	loc, err := model.NewLocation(LocationName(t, name), names)
	fatalIf(t, err)
	return loc
}

// Created is the timestamp given to fixture itineraries.
var Created = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

// Itinerary builds an itinerary created at Created.
func Itinerary(t testing.TB, name string, attractions ...model.Attraction) model.Itinerary {
	t.Helper()
	itName, err := model.NewItineraryName(name)
	fatalIf(t, err)
	it, err := model.NewItinerary(itName, Created, attractions)
	fatalIf(t, err)
	return it
}

func fatalIf(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
}
