package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/model"
)

var indexPattern = regexp.MustCompile(`^[1-9]\d*$`)

// ParseIndex converts a 1-based index token into a zero-based Index.
func ParseIndex(s string) (commands.Index, error) {
	s = strings.TrimSpace(s)
	if !indexPattern.MatchString(s) {
		return 0, ErrInvalidIndex
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Only reachable on overflow.
		return 0, ErrInvalidIndex
	}
	return commands.FromOneBased(n), nil
}

// ParseIndexes converts every token, failing on the first bad one.
func ParseIndexes(values []string) ([]commands.Index, error) {
	out := make([]commands.Index, 0, len(values))
	for _, v := range values {
		i, err := ParseIndex(v)
		if err != nil {
			return nil, err
		}
		out = append(out, i)
	}
	return out, nil
}

func trimmed[T any](ctor func(string) (T, error)) func(string) (T, error) {
	return func(s string) (T, error) { return ctor(strings.TrimSpace(s)) }
}

// Field parsers trim their input before validating it.
var (
	ParseName          = trimmed(model.NewName)
	ParsePriority      = trimmed(model.NewPriority)
	ParseContact       = trimmed(model.NewContact)
	ParseAddress       = trimmed(model.NewAddress)
	ParseActivities    = trimmed(model.NewActivities)
	ParseOpeningHours  = trimmed(model.NewOpeningHours)
	ParsePrice         = trimmed(model.NewPrice)
	ParseComment       = trimmed(model.NewComment)
	ParseTag           = trimmed(model.NewTag)
	ParseLocationName  = trimmed(model.NewLocationName)
	ParseItineraryName = trimmed(model.NewItineraryName)
)

// ParseTags validates every tag value.
func ParseTags(values []string) ([]model.Tag, error) {
	return parseAll(values, ParseTag)
}

// ParseComments validates every comment value.
func ParseComments(values []string) ([]model.Comment, error) {
	return parseAll(values, ParseComment)
}

// parseTagsForEdit distinguishes an absent t/ (nil) from a lone empty t/,
// which clears the tag set.
func parseTagsForEdit(values []string) (*[]model.Tag, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) == 1 && strings.TrimSpace(values[0]) == "" {
		return &[]model.Tag{}, nil
	}
	tags, err := ParseTags(values)
	if err != nil {
		return nil, err
	}
	return &tags, nil
}

func parseAll[T any](values []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(values))
	for _, v := range values {
		x, err := parse(v)
		if err != nil {
			return nil, err
		}
		out = append(out, x)
	}
	return out, nil
}
