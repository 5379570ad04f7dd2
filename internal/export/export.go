// Package export writes itineraries as markdown documents.
package export

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aidanlsb/tripbook/internal/atomicfile"
	"github.com/aidanlsb/tripbook/internal/model"
	"github.com/aidanlsb/tripbook/internal/slugs"
)

// Exporter writes itineraries into Dir.
type Exporter struct {
	Dir string
}

// PathFor returns where it would be written.
func (e Exporter) PathFor(it model.Itinerary) string {
	return filepath.Join(e.Dir, slugs.File(it.Name().String(), ".md"))
}

// Write renders it and writes the file, replacing any earlier export.
func (e Exporter) Write(it model.Itinerary) (string, error) {
	path := e.PathFor(it)
	if err := atomicfile.WriteFile(path, []byte(Render(it)), 0o644); err != nil {
		return "", fmt.Errorf("export %s: %w", it.Name(), err)
	}
	return path, nil
}

// Render formats it as markdown: a title, a linked table of contents, and
// one section per attraction in visiting order.
func Render(it model.Itinerary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", it.Name())
	fmt.Fprintf(&b, "_Created %s_\n\n", it.CreatedAt().UTC().Format("2 Jan 2006 15:04 MST"))

	attractions := it.Attractions()
	if len(attractions) == 0 {
		b.WriteString("No attractions planned yet.\n")
		return b.String()
	}

	for i, a := range attractions {
		heading := sectionHeading(i, a)
		fmt.Fprintf(&b, "%d. [%s](#%s)\n", i+1, a.Name(), slugs.Anchor(heading))
	}

	for i, a := range attractions {
		fmt.Fprintf(&b, "\n## %s\n\n", sectionHeading(i, a))
		fmt.Fprintf(&b, "- **Priority:** %s/10\n", a.Priority())
		fmt.Fprintf(&b, "- **Address:** %s\n", a.Address())
		fmt.Fprintf(&b, "- **Contact:** %s\n", a.Contact())
		if a.OpeningHours().IsSet() {
			fmt.Fprintf(&b, "- **Opening hours:** %s", a.OpeningHours())
			if a.OpeningHours().SpansMidnight() {
				b.WriteString(" (past midnight)")
			}
			b.WriteString("\n")
		}
		if a.Price().IsSet() {
			fmt.Fprintf(&b, "- **Price:** %s\n", a.Price())
		}
		if a.Activities().IsSet() {
			fmt.Fprintf(&b, "- **Activities:** %s\n", a.Activities())
		}
		if tags := a.Tags(); len(tags) > 0 {
			names := make([]string, len(tags))
			for j, t := range tags {
				names[j] = "`" + t.String() + "`"
			}
			fmt.Fprintf(&b, "- **Tags:** %s\n", strings.Join(names, " "))
		}
		if comments := a.Comments(); len(comments) > 0 {
			b.WriteString("\n")
			for _, c := range comments {
				fmt.Fprintf(&b, "> %s\n", c)
			}
		}
	}
	return b.String()
}

func sectionHeading(i int, a model.Attraction) string {
	return fmt.Sprintf("%d. %s", i+1, a.Name())
}
