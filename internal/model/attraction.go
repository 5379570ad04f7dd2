package model

import (
	"slices"
	"strings"
)

// AttractionFields carries the values an Attraction is built from.
type AttractionFields struct {
	Name         Name
	Priority     Priority
	Contact      Contact
	Address      Address
	Activities   Activities
	OpeningHours OpeningHours
	Price        Price
	Tags         []Tag
	Comments     []Comment
}

// Attraction is a point of interest. Its identity is its Name; every other
// field only matters for full equality. Attractions are never changed in
// place: edits produce a new value.
type Attraction struct {
	name         Name
	priority     Priority
	contact      Contact
	address      Address
	activities   Activities
	openingHours OpeningHours
	price        Price
	tags         []Tag
	comments     []Comment
}

// NewAttraction builds an attraction, canonicalising the tag and comment sets.
func NewAttraction(f AttractionFields) Attraction {
	return Attraction{
		name:         f.Name,
		priority:     f.Priority,
		contact:      f.Contact,
		address:      f.Address,
		activities:   f.Activities,
		openingHours: f.OpeningHours,
		price:        f.Price,
		tags:         TagSet(f.Tags...),
		comments:     CommentSet(f.Comments...),
	}
}

func (a Attraction) Name() Name                 { return a.name }
func (a Attraction) Priority() Priority         { return a.priority }
func (a Attraction) Contact() Contact           { return a.contact }
func (a Attraction) Address() Address           { return a.address }
func (a Attraction) Activities() Activities     { return a.activities }
func (a Attraction) OpeningHours() OpeningHours { return a.openingHours }
func (a Attraction) Price() Price               { return a.price }

// Tags returns a copy of the tag set.
func (a Attraction) Tags() []Tag { return slices.Clone(a.tags) }

// Comments returns a copy of the comment set.
func (a Attraction) Comments() []Comment { return slices.Clone(a.comments) }

// Fields returns the attraction's values, suitable for building a modified copy.
func (a Attraction) Fields() AttractionFields {
	return AttractionFields{
		Name:         a.name,
		Priority:     a.priority,
		Contact:      a.contact,
		Address:      a.address,
		Activities:   a.activities,
		OpeningHours: a.openingHours,
		Price:        a.price,
		Tags:         a.Tags(),
		Comments:     a.Comments(),
	}
}

// WithComments returns a copy with comments merged into the comment set.
func (a Attraction) WithComments(comments ...Comment) Attraction {
	f := a.Fields()
	f.Comments = append(f.Comments, comments...)
	return NewAttraction(f)
}

// SameAttraction reports whether a and b share an identity.
func SameAttraction(a, b Attraction) bool { return a.name == b.name }

// EqualAttractions reports whether every field of a and b matches.
func EqualAttractions(a, b Attraction) bool {
	return a.name == b.name &&
		a.priority == b.priority &&
		a.contact == b.contact &&
		a.address == b.address &&
		a.activities == b.activities &&
		a.openingHours == b.openingHours &&
		a.price == b.price &&
		slices.Equal(a.tags, b.tags) &&
		slices.Equal(a.comments, b.comments)
}

func (a Attraction) String() string {
	var sb strings.Builder
	sb.WriteString(a.name.String())
	sb.WriteString("; Priority: " + a.priority.String())
	sb.WriteString("; Contact: " + a.contact.String())
	sb.WriteString("; Address: " + a.address.String())
	if a.activities.IsSet() {
		sb.WriteString("; Activities: " + a.activities.String())
	}
	if a.openingHours.IsSet() {
		sb.WriteString("; Opening Hours: " + a.openingHours.String())
	}
	if a.price.IsSet() {
		sb.WriteString("; Price: " + a.price.String())
	}
	if len(a.tags) > 0 {
		sb.WriteString("; Tags: ")
		for _, t := range a.tags {
			sb.WriteString("[" + t.String() + "]")
		}
	}
	if len(a.comments) > 0 {
		sb.WriteString("; Comments: " + joinStrings(a.comments, ", "))
	}
	return sb.String()
}

// AttractionEdit lists the fields an edit changes. Nil means unchanged; a
// non-nil empty Tags slice clears the tag set.
type AttractionEdit struct {
	Name         *Name
	Priority     *Priority
	Contact      *Contact
	Address      *Address
	Activities   *Activities
	OpeningHours *OpeningHours
	Price        *Price
	Tags         *[]Tag
}

// IsAnyFieldEdited reports whether the edit changes anything.
func (e AttractionEdit) IsAnyFieldEdited() bool {
	return e.Name != nil || e.Priority != nil || e.Contact != nil || e.Address != nil ||
		e.Activities != nil || e.OpeningHours != nil || e.Price != nil || e.Tags != nil
}

// ApplyEdits returns a new attraction with e applied to original. Comments are
// carried over unchanged.
func ApplyEdits(original Attraction, e AttractionEdit) Attraction {
	f := original.Fields()
	if e.Name != nil {
		f.Name = *e.Name
	}
	if e.Priority != nil {
		f.Priority = *e.Priority
	}
	if e.Contact != nil {
		f.Contact = *e.Contact
	}
	if e.Address != nil {
		f.Address = *e.Address
	}
	if e.Activities != nil {
		f.Activities = *e.Activities
	}
	if e.OpeningHours != nil {
		f.OpeningHours = *e.OpeningHours
	}
	if e.Price != nil {
		f.Price = *e.Price
	}
	if e.Tags != nil {
		f.Tags = slices.Clone(*e.Tags)
	}
	return NewAttraction(f)
}
