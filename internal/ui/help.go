package ui

import (
	"fmt"
	"strings"

	"github.com/aidanlsb/tripbook/internal/commands"
)

var helpSections = []struct {
	title string
	verbs []string
}{
	{"Attractions", []string{"add", "edit", "delete", "comment", "list", "find", "sort", "view"}},
	{"Itineraries", []string{"additinerary", "deleteitinerary", "listitineraries", "export"}},
	{"Locations", []string{"addlocation", "deletelocation", "editlocation", "listlocations"}},
	{"Session", []string{"clear", "history", "help", "exit"}},
}

// HelpMarkdown documents every verb in the registry as markdown.
func HelpMarkdown() string {
	var sb strings.Builder
	sb.WriteString("# tripbook\n\n")
	sb.WriteString("Indexes refer to the list as currently displayed, starting at 1.\n")

	for _, section := range helpSections {
		fmt.Fprintf(&sb, "\n## %s\n\n", section.title)
		for _, verb := range section.verbs {
			meta, ok := commands.GetCommandMeta(verb)
			if !ok {
				continue
			}
			fmt.Fprintf(&sb, "- `%s`  \n  %s\n", meta.Synopsis(), meta.Description)
		}
	}

	sb.WriteString("\n## Examples\n\n```\n")
	for _, section := range helpSections {
		for _, verb := range section.verbs {
			if meta, ok := commands.GetCommandMeta(verb); ok && len(meta.Examples) > 0 {
				sb.WriteString(meta.Examples[0] + "\n")
			}
		}
	}
	sb.WriteString("```\n")
	return sb.String()
}

// RenderHelp renders HelpMarkdown for the terminal.
func RenderHelp(width int) (string, error) {
	return RenderMarkdown(HelpMarkdown(), width)
}
