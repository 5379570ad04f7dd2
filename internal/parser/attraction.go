package parser

import (
	"strings"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/model"
	"github.com/aidanlsb/tripbook/internal/syntax"
)

var singleValuedAttractionPrefixes = []syntax.Prefix{
	syntax.PrefixName,
	syntax.PrefixPriority,
	syntax.PrefixContact,
	syntax.PrefixAddress,
	syntax.PrefixActivities,
	syntax.PrefixOpeningHours,
	syntax.PrefixPrice,
}

func parseAdd(args string) (commands.Command, error) {
	const verb = "add"
	m := syntax.Tokenize(args, syntax.AttractionPrefixes...)
	if m.Preamble() != "" || !hasAll(m, syntax.PrefixName, syntax.PrefixPriority, syntax.PrefixContact, syntax.PrefixAddress) {
		return nil, formatError(verb)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValuedAttractionPrefixes...); err != nil {
		return nil, duplicateError(verb, err)
	}

	var f model.AttractionFields
	var err error
	value := func(p syntax.Prefix) string { v, _ := m.Value(p); return v }

	if f.Name, err = ParseName(value(syntax.PrefixName)); err != nil {
		return nil, fieldError(verb, err)
	}
	if f.Priority, err = ParsePriority(value(syntax.PrefixPriority)); err != nil {
		return nil, fieldError(verb, err)
	}
	if f.Contact, err = ParseContact(value(syntax.PrefixContact)); err != nil {
		return nil, fieldError(verb, err)
	}
	if f.Address, err = ParseAddress(value(syntax.PrefixAddress)); err != nil {
		return nil, fieldError(verb, err)
	}
	if m.Has(syntax.PrefixActivities) {
		if f.Activities, err = ParseActivities(value(syntax.PrefixActivities)); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if m.Has(syntax.PrefixOpeningHours) {
		if f.OpeningHours, err = ParseOpeningHours(value(syntax.PrefixOpeningHours)); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if m.Has(syntax.PrefixPrice) {
		if f.Price, err = ParsePrice(value(syntax.PrefixPrice)); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	tags, err := parseTagsForEdit(m.AllValues(syntax.PrefixTag))
	if err != nil {
		return nil, fieldError(verb, err)
	}
	if tags != nil {
		f.Tags = *tags
	}

	return commands.AddCommand{ToAdd: model.NewAttraction(f)}, nil
}

func parseEdit(args string) (commands.Command, error) {
	const verb = "edit"
	m := syntax.Tokenize(args, syntax.AttractionPrefixes...)
	if m.Preamble() == "" {
		return nil, formatError(verb)
	}
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, indexError(verb)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(singleValuedAttractionPrefixes...); err != nil {
		return nil, duplicateError(verb, err)
	}

	var e model.AttractionEdit
	if v, ok := m.Value(syntax.PrefixName); ok {
		if e.Name, err = editValue(v, ParseName, false); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if v, ok := m.Value(syntax.PrefixPriority); ok {
		if e.Priority, err = editValue(v, ParsePriority, false); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if v, ok := m.Value(syntax.PrefixContact); ok {
		if e.Contact, err = editValue(v, ParseContact, false); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if v, ok := m.Value(syntax.PrefixAddress); ok {
		if e.Address, err = editValue(v, ParseAddress, false); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if v, ok := m.Value(syntax.PrefixActivities); ok {
		if e.Activities, err = editValue(v, ParseActivities, true); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if v, ok := m.Value(syntax.PrefixOpeningHours); ok {
		if e.OpeningHours, err = editValue(v, ParseOpeningHours, true); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if v, ok := m.Value(syntax.PrefixPrice); ok {
		if e.Price, err = editValue(v, ParsePrice, true); err != nil {
			return nil, fieldError(verb, err)
		}
	}
	if e.Tags, err = parseTagsForEdit(m.AllValues(syntax.PrefixTag)); err != nil {
		return nil, fieldError(verb, err)
	}

	if !e.IsAnyFieldEdited() {
		return nil, &ParseError{Verb: verb, Message: MessageNotEdited}
	}
	return commands.EditCommand{Index: index, Edit: e}, nil
}

// editValue parses an edited field. Optional fields given an empty value are
// cleared back to their zero value.
func editValue[T any](v string, parse func(string) (T, error), optional bool) (*T, error) {
	if optional && strings.TrimSpace(v) == "" {
		var zero T
		return &zero, nil
	}
	x, err := parse(v)
	if err != nil {
		return nil, err
	}
	return &x, nil
}

func parseComment(args string) (commands.Command, error) {
	const verb = "comment"
	m := syntax.Tokenize(args, syntax.PrefixComment)
	if m.Preamble() == "" || !m.Has(syntax.PrefixComment) {
		return nil, formatError(verb)
	}
	index, err := ParseIndex(m.Preamble())
	if err != nil {
		return nil, indexError(verb)
	}
	comments, err := ParseComments(m.AllValues(syntax.PrefixComment))
	if err != nil {
		return nil, fieldError(verb, err)
	}
	return commands.CommentCommand{Index: index, Comments: comments}, nil
}

func parseFind(args string) (commands.Command, error) {
	keywords := strings.Fields(args)
	if len(keywords) == 0 {
		return nil, formatError("find")
	}
	return commands.FindCommand{Keywords: keywords}, nil
}

func parseSort(args string) (commands.Command, error) {
	key := catalog.SortKey(strings.ToLower(strings.TrimSpace(args)))
	if _, err := catalog.ComparatorFor(key); err != nil {
		return nil, formatError("sort")
	}
	return commands.SortCommand{Key: key}, nil
}

// indexOnly builds a parser for verbs whose whole argument is one index.
func indexOnly(verb string, build func(commands.Index) commands.Command) func(string) (commands.Command, error) {
	return func(args string) (commands.Command, error) {
		if strings.TrimSpace(args) == "" {
			return nil, formatError(verb)
		}
		index, err := ParseIndex(args)
		if err != nil {
			return nil, indexError(verb)
		}
		return build(index), nil
	}
}

func hasAll(m *syntax.ArgumentMultimap, prefixes ...syntax.Prefix) bool {
	for _, p := range prefixes {
		if !m.Has(p) {
			return false
		}
	}
	return true
}
