package parser

import (
	"strings"

	"github.com/aidanlsb/tripbook/internal/commands"
	"github.com/aidanlsb/tripbook/internal/syntax"
)

func parseAddItinerary(args string) (commands.Command, error) {
	const verb = "additinerary"
	m := syntax.Tokenize(args, syntax.PrefixName, syntax.PrefixItineraryAttraction)
	if m.Preamble() != "" || !m.Has(syntax.PrefixName) {
		return nil, formatError(verb)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(syntax.PrefixName); err != nil {
		return nil, duplicateError(verb, err)
	}
	v, _ := m.Value(syntax.PrefixName)
	name, err := ParseItineraryName(v)
	if err != nil {
		return nil, fieldError(verb, err)
	}
	indexes, err := ParseIndexes(m.AllValues(syntax.PrefixItineraryAttraction))
	if err != nil {
		return nil, indexError(verb)
	}
	return commands.AddItineraryCommand{Name: name, Attractions: indexes}, nil
}

func parseAddLocation(args string) (commands.Command, error) {
	const verb = "addlocation"
	m := syntax.Tokenize(args, syntax.PrefixLocationName, syntax.PrefixLocationAttraction)
	if m.Preamble() != "" || !hasAll(m, syntax.PrefixLocationName, syntax.PrefixLocationAttraction) {
		return nil, formatError(verb)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(syntax.PrefixLocationName); err != nil {
		return nil, duplicateError(verb, err)
	}
	v, _ := m.Value(syntax.PrefixLocationName)
	name, err := ParseLocationName(v)
	if err != nil {
		return nil, fieldError(verb, err)
	}
	indexes, err := ParseIndexes(m.AllValues(syntax.PrefixLocationAttraction))
	if err != nil {
		return nil, indexError(verb)
	}
	return commands.AddLocationCommand{Name: name, Attractions: indexes}, nil
}

func parseDeleteLocation(args string) (commands.Command, error) {
	const verb = "deletelocation"
	m := syntax.Tokenize(args, syntax.PrefixLocationName)
	if m.Preamble() != "" || !m.Has(syntax.PrefixLocationName) {
		return nil, formatError(verb)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(syntax.PrefixLocationName); err != nil {
		return nil, duplicateError(verb, err)
	}
	v, _ := m.Value(syntax.PrefixLocationName)
	name, err := ParseLocationName(v)
	if err != nil {
		return nil, fieldError(verb, err)
	}
	return commands.DeleteLocationCommand{Name: name}, nil
}

func parseEditLocation(args string) (commands.Command, error) {
	const verb = "editlocation"
	m := syntax.Tokenize(args, syntax.PrefixLocationName, syntax.PrefixAction, syntax.PrefixLocationAttraction)
	if m.Preamble() != "" || !hasAll(m, syntax.PrefixLocationName, syntax.PrefixAction, syntax.PrefixLocationAttraction) {
		return nil, formatError(verb)
	}
	if err := m.VerifyNoDuplicatePrefixesFor(syntax.PrefixLocationName, syntax.PrefixAction, syntax.PrefixLocationAttraction); err != nil {
		return nil, duplicateError(verb, err)
	}

	v, _ := m.Value(syntax.PrefixLocationName)
	name, err := ParseLocationName(v)
	if err != nil {
		return nil, fieldError(verb, err)
	}

	v, _ = m.Value(syntax.PrefixAction)
	action := commands.LocationAction(strings.ToUpper(strings.TrimSpace(v)))
	if action != commands.LocationAdd && action != commands.LocationRemove {
		return nil, &ParseError{Verb: verb, Message: MessageInvalidLocationEdit, Usage: commands.Usage(verb)}
	}

	v, _ = m.Value(syntax.PrefixLocationAttraction)
	index, err := ParseIndex(v)
	if err != nil {
		return nil, indexError(verb)
	}
	return commands.EditLocationCommand{Name: name, Action: action, Attraction: index}, nil
}
