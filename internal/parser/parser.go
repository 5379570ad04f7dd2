// Package parser turns command lines into executable commands.
//
// Parse splits off the verb and hands the rest of the line to that verb's
// parser. Verb parsers tokenize on their prefixes, check which prefixes are
// present, reject repeated single-valued prefixes, and then validate fields
// in a fixed order so the first invalid field decides the error.
package parser

import (
	"strings"

	"github.com/aidanlsb/tripbook/internal/commands"
)

type verbParser func(args string) (commands.Command, error)

func noArgs(verb string, cmd commands.Command) verbParser {
	return func(args string) (commands.Command, error) {
		if strings.TrimSpace(args) != "" {
			return nil, formatError(verb)
		}
		return cmd, nil
	}
}

var verbs = map[string]verbParser{
	"add":     parseAdd,
	"edit":    parseEdit,
	"comment": parseComment,
	"find":    parseFind,
	"sort":    parseSort,
	"delete": indexOnly("delete", func(i commands.Index) commands.Command {
		return commands.DeleteCommand{Index: i}
	}),
	"view": indexOnly("view", func(i commands.Index) commands.Command {
		return commands.ViewCommand{Index: i}
	}),
	"list":         noArgs("list", commands.ListCommand{}),
	"additinerary": parseAddItinerary,
	"deleteitinerary": indexOnly("deleteitinerary", func(i commands.Index) commands.Command {
		return commands.DeleteItineraryCommand{Index: i}
	}),
	"export": indexOnly("export", func(i commands.Index) commands.Command {
		return commands.ExportCommand{Index: i}
	}),
	"listitineraries": noArgs("listitineraries", commands.ListItinerariesCommand{}),
	"addlocation":     parseAddLocation,
	"deletelocation":  parseDeleteLocation,
	"editlocation":    parseEditLocation,
	"listlocations":   noArgs("listlocations", commands.ListLocationsCommand{}),
	"clear":           noArgs("clear", commands.ClearCommand{}),
	"history":         noArgs("history", commands.HistoryCommand{}),
	"help":            noArgs("help", commands.HelpCommand{}),
	"exit":            noArgs("exit", commands.ExitCommand{}),
}

// Parse parses one command line. The verb is the first whitespace-delimited
// word and is matched case-sensitively.
func Parse(line string) (commands.Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, &ParseError{Message: MessageInvalidCommandFormat, Usage: "Type help to see every command."}
	}
	verb, args := trimmed, ""
	if i := strings.IndexFunc(trimmed, isSpace); i >= 0 {
		verb, args = trimmed[:i], trimmed[i:]
	}

	parse, ok := verbs[verb]
	if !ok {
		return nil, &UnknownCommandError{Verb: verb}
	}
	// Leading whitespace is kept so a prefix right after the verb still
	// counts as whitespace-preceded.
	return parse(" " + strings.TrimLeft(args, " \t"))
}

// Verb returns the verb of line, or "" for a blank line.
func Verb(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func isSpace(r rune) bool { return r == ' ' || r == '\t' }
