// Package model holds the catalog's value types, entities and collections.
//
// Value types validate on construction and are immutable; the zero value of an
// optional value type means "not set". Entities are replaced wholesale on edit.
package model

import (
	"regexp"
	"strconv"
	"strings"
)

// Constraint messages shown when a value fails validation.
const (
	NameConstraints          = "Names should only contain alphanumeric characters and spaces, and it should not be blank"
	PriorityConstraints      = "Priority should be an integer from 1 to 10 inclusive"
	ContactConstraints       = "Contact should be a valid email address (e.g. name@example.com) or a phone number with at least 3 digits"
	AddressConstraints       = "Addresses can take any values, and it should not be blank"
	ActivitiesConstraints    = "Activities can take any values, and it should not be blank"
	CommentConstraints       = "Comments can take any values, and it should not be blank"
	TagConstraints           = "Tags names should be alphanumeric"
	LocationNameConstraints  = "Location names should only contain alphanumeric characters and spaces, and it should not be blank"
	ItineraryNameConstraints = "Itinerary names should only contain alphanumeric characters and spaces, and it should not be blank"
)

var (
	namePattern     = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 ]*$`)
	priorityPattern = regexp.MustCompile(`^(10|[1-9])$`)
	emailPattern    = regexp.MustCompile(`^[A-Za-z0-9]+(?:[+_.-][A-Za-z0-9]+)*@(?:[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?\.)*[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{3,}$`)
	freeTextPattern = regexp.MustCompile(`^\S.*$`)
	tagPattern      = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Name identifies an attraction. Comparison is case-sensitive.
type Name struct{ value string }

// NewName validates s as an attraction name.
func NewName(s string) (Name, error) {
	if !namePattern.MatchString(s) {
		return Name{}, invalid("name", s, NameConstraints)
	}
	return Name{value: s}, nil
}

func (n Name) String() string { return n.value }

// Priority is an integer from 1 to 10, kept in its validated textual form.
type Priority struct{ value string }

// NewPriority validates s as a priority.
func NewPriority(s string) (Priority, error) {
	if !priorityPattern.MatchString(s) {
		return Priority{}, invalid("priority", s, PriorityConstraints)
	}
	return Priority{value: s}, nil
}

func (p Priority) String() string { return p.value }

// Value returns the numeric priority, or 0 when unset.
func (p Priority) Value() int {
	v, err := strconv.Atoi(p.value)
	if err != nil {
		return 0
	}
	return v
}

// Contact is either an email address or a phone number.
type Contact struct{ value string }

// NewContact validates s as an email address or phone number.
func NewContact(s string) (Contact, error) {
	if !emailPattern.MatchString(s) && !phonePattern.MatchString(s) {
		return Contact{}, invalid("contact", s, ContactConstraints)
	}
	return Contact{value: s}, nil
}

func (c Contact) String() string { return c.value }

// IsEmail reports whether the contact is an email address.
func (c Contact) IsEmail() bool { return emailPattern.MatchString(c.value) }

// IsPhone reports whether the contact is a phone number.
func (c Contact) IsPhone() bool { return phonePattern.MatchString(c.value) }

// Address is a free-text street address.
type Address struct{ value string }

// NewAddress validates s as an address: any text not starting with whitespace.
func NewAddress(s string) (Address, error) {
	if !freeTextPattern.MatchString(s) {
		return Address{}, invalid("address", s, AddressConstraints)
	}
	return Address{value: s}, nil
}

func (a Address) String() string { return a.value }

// Activities describes what can be done at an attraction.
type Activities struct{ value string }

// NewActivities validates s as an activities description.
func NewActivities(s string) (Activities, error) {
	if !freeTextPattern.MatchString(s) {
		return Activities{}, invalid("activities", s, ActivitiesConstraints)
	}
	return Activities{value: s}, nil
}

func (a Activities) String() string { return a.value }

// IsSet reports whether activities were provided.
func (a Activities) IsSet() bool { return a.value != "" }

// Comment is a free-text note attached to an attraction.
type Comment struct{ value string }

// NewComment validates s as a comment.
func NewComment(s string) (Comment, error) {
	if !freeTextPattern.MatchString(s) {
		return Comment{}, invalid("comment", s, CommentConstraints)
	}
	return Comment{value: s}, nil
}

func (c Comment) String() string { return c.value }

// Tag is a single alphanumeric label.
type Tag struct{ value string }

// NewTag validates s as a tag.
func NewTag(s string) (Tag, error) {
	if !tagPattern.MatchString(s) {
		return Tag{}, invalid("tag", s, TagConstraints)
	}
	return Tag{value: s}, nil
}

func (t Tag) String() string { return t.value }

// LocationName identifies a location. Identity comparison ignores case.
type LocationName struct{ value string }

// NewLocationName validates s as a location name.
func NewLocationName(s string) (LocationName, error) {
	if !namePattern.MatchString(s) {
		return LocationName{}, invalid("location name", s, LocationNameConstraints)
	}
	return LocationName{value: s}, nil
}

func (n LocationName) String() string { return n.value }

// SameAs compares two location names ignoring case.
func (n LocationName) SameAs(other LocationName) bool {
	return strings.EqualFold(n.value, other.value)
}

// ItineraryName identifies an itinerary.
type ItineraryName struct{ value string }

// NewItineraryName validates s as an itinerary name.
func NewItineraryName(s string) (ItineraryName, error) {
	if !namePattern.MatchString(s) {
		return ItineraryName{}, invalid("itinerary name", s, ItineraryNameConstraints)
	}
	return ItineraryName{value: s}, nil
}

func (n ItineraryName) String() string { return n.value }
