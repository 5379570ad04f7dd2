// Package commands provides the registry of tripbook command verbs and the
// executable commands the parser produces from them.
// The registry is the single source of truth for verb metadata, used by
// the parser for usage hints, by help, and by the Cobra subcommands.
package commands

import (
	"sort"
	"strings"

	"github.com/aidanlsb/tripbook/internal/catalog"
	"github.com/aidanlsb/tripbook/internal/syntax"
)

// Meta defines metadata for a command verb.
type Meta struct {
	Name        string       // Verb (e.g., "add", "editlocation")
	Description string       // Short description
	LongDesc    string       // Long description (for help)
	Args        []ArgMeta    // Preamble arguments
	Prefixes    []PrefixMeta // Prefixed fields
	Examples    []string     // Usage examples, without the binary name
}

// ArgMeta defines a preamble argument.
type ArgMeta struct {
	Name        string   // Argument name
	Description string   // Description
	Required    bool     // Is this argument required?
	Completions []string // Static completions (if any)
}

// PrefixMeta defines a prefixed field such as n/NAME.
type PrefixMeta struct {
	Prefix      syntax.Prefix
	Placeholder string // e.g. NAME
	Description string
	Required    bool
	Repeatable  bool
}

func sortKeyCompletions() []string {
	out := make([]string, len(catalog.SortKeys))
	for i, k := range catalog.SortKeys {
		out[i] = string(k)
	}
	return out
}

var attractionFieldPrefixes = []PrefixMeta{
	{Prefix: syntax.PrefixName, Placeholder: "NAME", Description: "Attraction name", Required: true},
	{Prefix: syntax.PrefixPriority, Placeholder: "PRIORITY", Description: "Priority from 1 to 10", Required: true},
	{Prefix: syntax.PrefixContact, Placeholder: "CONTACT", Description: "Email address or phone number", Required: true},
	{Prefix: syntax.PrefixAddress, Placeholder: "ADDRESS", Description: "Street address", Required: true},
	{Prefix: syntax.PrefixActivities, Placeholder: "ACTIVITIES", Description: "Things to do there"},
	{Prefix: syntax.PrefixOpeningHours, Placeholder: "HH:MM-HH:MM", Description: "Daily opening hours"},
	{Prefix: syntax.PrefixPrice, Placeholder: "PRICE", Description: "Admission price, e.g. $25 or 12 SGD"},
	{Prefix: syntax.PrefixTag, Placeholder: "TAG", Description: "Tag (repeatable)", Repeatable: true},
}

func optional(ps []PrefixMeta) []PrefixMeta {
	out := make([]PrefixMeta, len(ps))
	for i, p := range ps {
		p.Required = false
		out[i] = p
	}
	return out
}

var indexArg = ArgMeta{Name: "INDEX", Description: "Index in the displayed attraction list, starting at 1", Required: true}

// Registry holds all registered verbs.
var Registry = map[string]Meta{
	"add": {
		Name:        "add",
		Description: "Add an attraction",
		LongDesc: `Adds an attraction to the catalog.

Name, priority, contact and address are required. Attraction names are
case-sensitive and must be unique.`,
		Prefixes: attractionFieldPrefixes,
		Examples: []string{
			"add n/Singapore Zoo p/8 c/zoo@wrs.sg a/80 Mandai Lake Rd h/08:30-18:00 pr/$48 t/family",
			"add n/Hawker Centre p/5 c/61234567 a/1 Kadayanallur St act/Chicken rice",
		},
	},
	"edit": {
		Name:        "edit",
		Description: "Edit an attraction",
		LongDesc: `Edits the attraction at INDEX in the displayed list.

At least one field must be given. Tags replace the existing tags; an empty
t/ clears them. Comments are kept. A referenced attraction cannot be renamed.`,
		Args:     []ArgMeta{indexArg},
		Prefixes: optional(attractionFieldPrefixes),
		Examples: []string{
			"edit 1 p/9 c/info@zoo.sg",
			"edit 2 t/",
		},
	},
	"delete": {
		Name:        "delete",
		Description: "Delete an attraction",
		LongDesc:    "Deletes the attraction at INDEX. Attractions referenced by a location or itinerary cannot be deleted.",
		Args:        []ArgMeta{indexArg},
		Examples:    []string{"delete 3"},
	},
	"comment": {
		Name:        "comment",
		Description: "Comment on an attraction",
		Args:        []ArgMeta{indexArg},
		Prefixes: []PrefixMeta{
			{Prefix: syntax.PrefixComment, Placeholder: "COMMENT", Description: "Comment text (repeatable)", Required: true, Repeatable: true},
		},
		Examples: []string{"comment 1 com/Go early to avoid queues com/Bring water"},
	},
	"list": {
		Name:        "list",
		Description: "List all attractions",
		LongDesc:    "Clears any find filter and shows every attraction. The active sort order is kept.",
		Examples:    []string{"list"},
	},
	"find": {
		Name:        "find",
		Description: "Find attractions by name",
		LongDesc:    "Shows attractions whose name contains any of the keywords, ignoring case.",
		Args:        []ArgMeta{{Name: "KEYWORD...", Description: "Keywords to match", Required: true}},
		Examples:    []string{"find zoo garden"},
	},
	"sort": {
		Name:        "sort",
		Description: "Sort the attraction list",
		LongDesc: `Sorts the displayed attractions. Priority and price sort from highest to
lowest; name sorts alphabetically. "none" restores insertion order.`,
		Args:     []ArgMeta{{Name: "KEY", Description: "name, priority, price or none", Required: true, Completions: sortKeyCompletions()}},
		Examples: []string{"sort priority", "sort none"},
	},
	"view": {
		Name:        "view",
		Description: "View an attraction in detail",
		Args:        []ArgMeta{indexArg},
		Examples:    []string{"view 2"},
	},
	"additinerary": {
		Name:        "additinerary",
		Description: "Create an itinerary",
		LongDesc:    "Creates an itinerary visiting the attractions at the given indexes, in order.",
		Prefixes: []PrefixMeta{
			{Prefix: syntax.PrefixName, Placeholder: "NAME", Description: "Itinerary name", Required: true},
			{Prefix: syntax.PrefixItineraryAttraction, Placeholder: "INDEX", Description: "Attraction index (repeatable)", Repeatable: true},
		},
		Examples: []string{"additinerary n/Day One ai/1 ai/3"},
	},
	"deleteitinerary": {
		Name:        "deleteitinerary",
		Description: "Delete an itinerary",
		Args:        []ArgMeta{{Name: "INDEX", Description: "Index in the displayed itinerary list", Required: true}},
		Examples:    []string{"deleteitinerary 1"},
	},
	"listitineraries": {
		Name:        "listitineraries",
		Description: "List all itineraries",
		Examples:    []string{"listitineraries"},
	},
	"export": {
		Name:        "export",
		Description: "Export an itinerary to markdown",
		LongDesc:    "Writes the itinerary at INDEX to a markdown file in the export directory.",
		Args:        []ArgMeta{{Name: "INDEX", Description: "Index in the displayed itinerary list", Required: true}},
		Examples:    []string{"export 1"},
	},
	"addlocation": {
		Name:        "addlocation",
		Description: "Group attractions under a location",
		LongDesc:    "Creates a location holding the attractions at the given indexes. A location needs at least one attraction; names ignore case.",
		Prefixes: []PrefixMeta{
			{Prefix: syntax.PrefixLocationName, Placeholder: "LOCATION", Description: "Location name", Required: true},
			{Prefix: syntax.PrefixLocationAttraction, Placeholder: "INDEX", Description: "Attraction index (repeatable)", Required: true, Repeatable: true},
		},
		Examples: []string{"addlocation ln/Sentosa i/1 i/2"},
	},
	"deletelocation": {
		Name:        "deletelocation",
		Description: "Delete a location",
		Prefixes: []PrefixMeta{
			{Prefix: syntax.PrefixLocationName, Placeholder: "LOCATION", Description: "Location name", Required: true},
		},
		Examples: []string{"deletelocation ln/Sentosa"},
	},
	"editlocation": {
		Name:        "editlocation",
		Description: "Add or remove an attraction in a location",
		LongDesc:    "Adds or removes the attraction at INDEX. A location cannot lose its last attraction.",
		Prefixes: []PrefixMeta{
			{Prefix: syntax.PrefixLocationName, Placeholder: "LOCATION", Description: "Location name", Required: true},
			{Prefix: syntax.PrefixAction, Placeholder: "ADD|REMOVE", Description: "Edit action", Required: true},
			{Prefix: syntax.PrefixLocationAttraction, Placeholder: "INDEX", Description: "Attraction index", Required: true},
		},
		Examples: []string{"editlocation ln/Sentosa action/ADD i/3", "editlocation ln/Sentosa action/REMOVE i/1"},
	},
	"listlocations": {
		Name:        "listlocations",
		Description: "List all locations",
		Examples:    []string{"listlocations"},
	},
	"clear": {
		Name:        "clear",
		Description: "Remove everything from the catalog",
		Examples:    []string{"clear"},
	},
	"history": {
		Name:        "history",
		Description: "Show previously entered commands",
		Examples:    []string{"history"},
	},
	"help": {
		Name:        "help",
		Description: "Show command help",
		Examples:    []string{"help"},
	},
	"exit": {
		Name:        "exit",
		Description: "Exit the shell",
		Examples:    []string{"exit"},
	},
}

// GetCommandMeta returns the metadata for a command.
func GetCommandMeta(name string) (Meta, bool) {
	meta, ok := Registry[name]
	return meta, ok
}

// AllCommandNames returns all registered command names, sorted.
func AllCommandNames() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Synopsis renders the one-line form of a verb, e.g.
// "edit INDEX [n/NAME] ... [t/TAG]...".
func (m Meta) Synopsis() string {
	parts := []string{m.Name}
	for _, a := range m.Args {
		if a.Required {
			parts = append(parts, a.Name)
		} else {
			parts = append(parts, "["+a.Name+"]")
		}
	}
	for _, p := range m.Prefixes {
		s := string(p.Prefix) + p.Placeholder
		if !p.Required {
			s = "[" + s + "]"
		}
		if p.Repeatable {
			s += "..."
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}

// Usage renders the usage message shown when a verb is used incorrectly.
func Usage(name string) string {
	meta, ok := Registry[name]
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(meta.Name + ": " + meta.Description + ".\n")
	b.WriteString("Parameters: " + strings.TrimSpace(strings.TrimPrefix(meta.Synopsis(), meta.Name)))
	if len(meta.Examples) > 0 {
		b.WriteString("\nExample: " + meta.Examples[0])
	}
	return b.String()
}
